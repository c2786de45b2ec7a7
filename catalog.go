package geodesy

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by LookupEllipsoid and LookupDatum for EPSG codes
// that have no built-in entry.
var ErrNotFound = errors.New("no built-in entry for EPSG code")

// builtinEllipsoids and builtinDatums are kept in ascending EPSG code
// order; Ellipsoids and Datums rely on it.
var builtinEllipsoids = []Ellipsoid{
	Airy1830,
	Clarke1866,
	GRS1980,
	International1924,
	WGS84Ellipsoid,
}

var builtinDatums = []Datum{
	ED50,
	ETRS89,
	NAD27,
	NAD83,
	OSGB36,
	WGS84,
}

var (
	ellipsoidsByCode = make(map[int]Ellipsoid, len(builtinEllipsoids))
	datumsByCode     = make(map[int]Datum, len(builtinDatums))
)

func init() {
	for _, e := range builtinEllipsoids {
		ellipsoidsByCode[e.code] = e
	}
	for _, d := range builtinDatums {
		datumsByCode[d.code] = d
	}
}

// LookupEllipsoid returns the built-in ellipsoid registered under the given
// EPSG code. Unknown codes return an error satisfying
// errors.Is(err, ErrNotFound).
func LookupEllipsoid(code int) (Ellipsoid, error) {
	e, ok := ellipsoidsByCode[code]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("ellipsoid EPSG:%d: %w", code, ErrNotFound)
	}
	return e, nil
}

// LookupDatum returns the built-in datum registered under the given EPSG
// code. Unknown codes return an error satisfying
// errors.Is(err, ErrNotFound).
func LookupDatum(code int) (Datum, error) {
	d, ok := datumsByCode[code]
	if !ok {
		return Datum{}, fmt.Errorf("datum EPSG:%d: %w", code, ErrNotFound)
	}
	return d, nil
}

// Ellipsoids returns the built-in ellipsoids in ascending EPSG code order.
// The slice is a fresh copy on every call; callers may modify it freely.
func Ellipsoids() []Ellipsoid {
	out := make([]Ellipsoid, len(builtinEllipsoids))
	copy(out, builtinEllipsoids)
	return out
}

// Datums returns the built-in datums in ascending EPSG code order. The
// slice is a fresh copy on every call; callers may modify it freely.
func Datums() []Datum {
	out := make([]Datum, len(builtinDatums))
	copy(out, builtinDatums)
	return out
}
