package geodesy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrNotFinite is returned by NewHelmertParameters when any parameter is
// NaN or infinite.
var ErrNotFinite = errors.New("helmert parameter must be finite")

// HelmertParameters is a 7-parameter Helmert transformation toward WGS 84
// in the position vector convention: translations tx, ty, tz in meters,
// rotations rx, ry, rz in arc-seconds, and scale difference s in parts per
// million. The parameters are carried as reference data; this package does
// not apply them to coordinates.
//
// HelmertParameters is immutable and comparable. The zero value is the
// identity transformation.
type HelmertParameters struct {
	tx, ty, tz float64 // meters
	rx, ry, rz float64 // arc-seconds
	s          float64 // ppm
}

// NewHelmertParameters returns the parameter set with translations
// (tx, ty, tz) in meters, rotations (rx, ry, rz) in arc-seconds, and scale
// difference s in parts per million. Every parameter must be finite.
func NewHelmertParameters(tx, ty, tz, rx, ry, rz, s float64) (HelmertParameters, error) {
	for _, v := range [...]float64{tx, ty, tz, rx, ry, rz, s} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return HelmertParameters{}, fmt.Errorf("helmert parameter %v: %w", v, ErrNotFinite)
		}
	}
	return HelmertParameters{tx: tx, ty: ty, tz: tz, rx: rx, ry: ry, rz: rz, s: s}, nil
}

// Tx returns the X-axis translation in meters.
func (p HelmertParameters) Tx() float64 { return p.tx }

// Ty returns the Y-axis translation in meters.
func (p HelmertParameters) Ty() float64 { return p.ty }

// Tz returns the Z-axis translation in meters.
func (p HelmertParameters) Tz() float64 { return p.tz }

// Rx returns the X-axis rotation in arc-seconds.
func (p HelmertParameters) Rx() float64 { return p.rx }

// Ry returns the Y-axis rotation in arc-seconds.
func (p HelmertParameters) Ry() float64 { return p.ry }

// Rz returns the Z-axis rotation in arc-seconds.
func (p HelmertParameters) Rz() float64 { return p.rz }

// S returns the scale difference in parts per million.
func (p HelmertParameters) S() float64 { return p.s }

// IsIdentity reports whether all seven parameters are zero.
func (p HelmertParameters) IsIdentity() bool {
	return p == HelmertParameters{}
}

// String returns the parameters in towgs84 order.
func (p HelmertParameters) String() string {
	return fmt.Sprintf("tx=%v ty=%v tz=%v rx=%v ry=%v rz=%v s=%v",
		p.tx, p.ty, p.tz, p.rx, p.ry, p.rz, p.s)
}

// Datum is a geodetic datum: a reference ellipsoid together with its
// position and orientation relative to the Earth. A datum may carry Helmert
// parameters toward WGS 84; their absence means no transformation is
// published for it, which is not the same as an identity transformation.
//
// Datum is immutable and comparable; the embedded ellipsoid and parameters
// take part in equality. Construct one with NewDatum or use a built-in
// definition such as WGS84.
type Datum struct {
	name      string
	code      int
	ellipsoid Ellipsoid
	toWGS84   HelmertParameters
	hasWGS84  bool
	remarks   string
}

// NewDatum returns the datum with the given reference ellipsoid. toWGS84 is
// optional: nil records that no transformation toward WGS 84 is published.
// A non-nil parameter set is copied, so the caller's pointer cannot change
// the datum afterwards. code is the EPSG identifier reported in the URN and
// is not checked against any registry. remarks may be empty.
func NewDatum(name string, code int, ellipsoid Ellipsoid, toWGS84 *HelmertParameters, remarks string) Datum {
	d := Datum{name: name, code: code, ellipsoid: ellipsoid, remarks: remarks}
	if toWGS84 != nil {
		d.toWGS84 = *toWGS84
		d.hasWGS84 = true
	}
	return d
}

// Name returns the human-readable name, for example
// "World Geodetic System 1984 ensemble".
func (d Datum) Name() string { return d.name }

// Code returns the EPSG code.
func (d Datum) Code() int { return d.code }

// Ellipsoid returns the reference ellipsoid.
func (d Datum) Ellipsoid() Ellipsoid { return d.ellipsoid }

// ToWGS84 returns the Helmert parameters toward WGS 84 and whether the
// datum carries any. An explicit identity parameter set, as published for
// WGS 84 itself, reports true.
func (d Datum) ToWGS84() (HelmertParameters, bool) {
	return d.toWGS84, d.hasWGS84
}

// Remarks returns the EPSG registry remarks, or "" if there are none.
func (d Datum) Remarks() string { return d.remarks }

// URN returns the OGC URN identifying the datum by its EPSG code, for
// example "urn:ogc:def:datum:EPSG::6326".
func (d Datum) URN() string {
	return "urn:ogc:def:datum:EPSG::" + strconv.Itoa(d.code)
}

// String returns the name and EPSG code.
func (d Datum) String() string {
	return fmt.Sprintf("%s (EPSG:%d)", d.name, d.code)
}

// Built-in geodetic datums, carrying the values published in the EPSG
// registry. The Helmert parameters are the registry's transformations
// toward WGS 84; ED50 carries no remarks in its registry entry.
var (
	// ED50 is the European Datum 1950 (EPSG:6230).
	ED50 = Datum{
		name:      "European Datum 1950",
		code:      6230,
		ellipsoid: International1924,
		toWGS84:   HelmertParameters{tx: -87.0, ty: -98.0, tz: -121.0},
		hasWGS84:  true,
	}

	// ETRS89 is the European Terrestrial Reference System 1989 (EPSG:6258).
	ETRS89 = Datum{
		name:      "European Terrestrial Reference System 1989 ensemble",
		code:      6258,
		ellipsoid: GRS1980,
		toWGS84:   HelmertParameters{},
		hasWGS84:  true,
		remarks: "Has been realized through ETRF89, ETRF90, ETRF91, ETRF92, ETRF93, ETRF94, " +
			"ETRF96, ETRF97, ETRF2000, ETRF2005, ETRF2014 and ETRF2020. This 'ensemble' " +
			"covers any or all of these realizations without distinction.",
	}

	// NAD27 is the North American Datum 1927 (EPSG:6267).
	NAD27 = Datum{
		name:      "North American Datum 1927",
		code:      6267,
		ellipsoid: Clarke1866,
		toWGS84:   HelmertParameters{tx: -8.0, ty: 160.0, tz: 176.0},
		hasWGS84:  true,
		remarks: "In United States (USA) and Canada, replaced by North American Datum 1983 " +
			"(NAD83) (code 6269) ; in Mexico, replaced by Mexican Datum of 1993 (code 1042).",
	}

	// NAD83 is the North American Datum 1983 (EPSG:6269).
	NAD83 = Datum{
		name:      "North American Datum 1983",
		code:      6269,
		ellipsoid: GRS1980,
		toWGS84:   HelmertParameters{},
		hasWGS84:  true,
		remarks: "Although the 1986 adjustment included connections to Greenland and Mexico, " +
			"it has not been adopted there. In Canada and US, replaced NAD27.",
	}

	// OSGB36 is the Ordnance Survey of Great Britain 1936 datum (EPSG:6277).
	OSGB36 = Datum{
		name:      "Ordnance Survey of Great Britain 1936",
		code:      6277,
		ellipsoid: Airy1830,
		toWGS84: HelmertParameters{
			tx: 446.448, ty: -125.157, tz: 542.060,
			rx: 0.1502, ry: 0.2470, rz: 0.8421,
			s: -20.4894,
		},
		hasWGS84: true,
		remarks: "The average accuracy of OSTN compared to the old triangulation network " +
			"(down to 3rd order) is 0.1m. With the introduction of OSTN15, the area for " +
			"OGSB36 has effectively been extended from Britain to cover the adjacent UK " +
			"Continental Shelf.",
	}

	// WGS84 is the World Geodetic System 1984 (EPSG:6326).
	WGS84 = Datum{
		name:      "World Geodetic System 1984 ensemble",
		code:      6326,
		ellipsoid: WGS84Ellipsoid,
		toWGS84:   HelmertParameters{},
		hasWGS84:  true,
		remarks: "EPSG::6326 has been the then current realization. No distinction is made " +
			"between the original and subsequent (G730, G873, G1150, G1674, G1762, G2139 " +
			"and G2296) WGS 84 frames. Since 1997, WGS 84 has been maintained within 10cm " +
			"of the then current ITRF.",
	}
)
