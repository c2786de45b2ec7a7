// Package geodesy provides immutable reference data for geodetic
// computation: reference ellipsoids, geodetic datums, and the 7-parameter
// Helmert sets that relate a datum to WGS 84.
//
// An Ellipsoid is defined by its semi-major axis and flattening; the
// semi-minor axis and the eccentricities are derived from those two on
// demand. A Datum ties an ellipsoid to a position and orientation relative
// to the Earth and optionally carries HelmertParameters toward WGS 84.
// Five ellipsoids and six datums are built in with their published EPSG
// values, available both as package variables and by EPSG code through
// LookupEllipsoid and LookupDatum.
//
// Every type here is a plain value with structural equality: two
// ellipsoids built from the same fields compare equal under == and behave
// identically as map keys. Nothing mutates after construction, so all
// values, the built-in catalog included, are safe for unrestricted
// concurrent use.
//
//	wgs84, err := geodesy.LookupDatum(6326)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(wgs84.Ellipsoid().B()) // 6.356752314245179e+06
//	fmt.Println(wgs84.URN())           // urn:ogc:def:datum:EPSG::6326
package geodesy
