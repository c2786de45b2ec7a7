package geodesy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidSemiMajorAxis is returned by NewEllipsoid when the semi-major
// axis is zero, negative, or not finite.
var ErrInvalidSemiMajorAxis = errors.New("semi-major axis must be positive and finite")

// ErrInvalidFlattening is returned by NewEllipsoid when the flattening is
// NaN or outside [0, 1).
var ErrInvalidFlattening = errors.New("flattening must be in [0, 1)")

// Ellipsoid is a reference ellipsoid: an oblate spheroid approximating the
// figure of the Earth, defined by its semi-major axis and flattening. All
// other shape parameters are derived from those two.
//
// An Ellipsoid is immutable once constructed and safe for concurrent use.
// It is comparable: two ellipsoids built from the same fields are equal
// under == and interchangeable as map keys. Construct one with NewEllipsoid
// or use a built-in definition such as WGS84Ellipsoid.
type Ellipsoid struct {
	name    string
	code    int
	a       float64
	f       float64
	remarks string
}

// NewEllipsoid returns the ellipsoid with semi-major axis a in meters and
// flattening f. a must be positive and finite; f must satisfy 0 <= f < 1,
// where zero describes a perfect sphere. code is the EPSG identifier
// reported in the URN and is not checked against any registry, so private
// or experimental codes are fine. remarks may be empty.
func NewEllipsoid(name string, code int, a, f float64, remarks string) (Ellipsoid, error) {
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return Ellipsoid{}, fmt.Errorf("ellipsoid %q: a=%v: %w", name, a, ErrInvalidSemiMajorAxis)
	}
	if f < 0 || f >= 1 || math.IsNaN(f) {
		return Ellipsoid{}, fmt.Errorf("ellipsoid %q: f=%v: %w", name, f, ErrInvalidFlattening)
	}
	return Ellipsoid{name: name, code: code, a: a, f: f, remarks: remarks}, nil
}

// Name returns the human-readable name, for example "WGS 84".
func (e Ellipsoid) Name() string { return e.name }

// Code returns the EPSG code.
func (e Ellipsoid) Code() int { return e.code }

// A returns the semi-major axis in meters.
func (e Ellipsoid) A() float64 { return e.a }

// F returns the flattening.
func (e Ellipsoid) F() float64 { return e.f }

// Remarks returns the EPSG registry remarks, or "" if there are none.
func (e Ellipsoid) Remarks() string { return e.remarks }

// B returns the semi-minor axis in meters, a*(1-f).
func (e Ellipsoid) B() float64 { return e.a * (1 - e.f) }

// E2 returns the first eccentricity squared, f*(2-f).
func (e Ellipsoid) E2() float64 { return e.f * (2 - e.f) }

// E returns the first eccentricity.
func (e Ellipsoid) E() float64 { return math.Sqrt(e.E2()) }

// Ep2 returns the second eccentricity squared, e2/(1-e2).
func (e Ellipsoid) Ep2() float64 {
	e2 := e.E2()
	return e2 / (1 - e2)
}

// URN returns the OGC URN identifying the ellipsoid by its EPSG code, for
// example "urn:ogc:def:ellipsoid:EPSG::7030".
func (e Ellipsoid) URN() string {
	return "urn:ogc:def:ellipsoid:EPSG::" + strconv.Itoa(e.code)
}

// String returns the name and EPSG code.
func (e Ellipsoid) String() string {
	return fmt.Sprintf("%s (EPSG:%d)", e.name, e.code)
}

// Built-in reference ellipsoids, carrying the values published in the EPSG
// registry. The flattenings are written as inverse flattenings because that
// is the form the registry defines them in.
var (
	// Airy1830 is the Airy 1830 ellipsoid (EPSG:7001), used by the
	// Ordnance Survey of Great Britain 1936 datum.
	Airy1830 = Ellipsoid{
		name: "Airy 1830",
		code: 7001,
		a:    6377563.396,
		f:    1.0 / 299.3249646,
		remarks: "Original definition is a=20923713, b=20853810 feet of 1796. " +
			"1/f is given to 7 decimal places. For the 1936 retriangulation OSGB defines " +
			"the relationship of 10 feet of 1796 to the International metre through " +
			"([10^0.48401603]/10) exactly = 0.3048007491...",
	}

	// Clarke1866 is the Clarke 1866 ellipsoid (EPSG:7008), used by the
	// North American Datum 1927.
	Clarke1866 = Ellipsoid{
		name: "Clarke 1866",
		code: 7008,
		a:    6378206.4,
		f:    1.0 / 294.978698213898,
		remarks: "Original definition a=20926062 and b=20855121 (British) feet. " +
			"Uses Clarke's 1865 inch-metre ratio of 39.370432 to obtain metres. " +
			"(Metric value then converted to US survey feet for use in the US and " +
			"international feet for use in Cayman Islands).",
	}

	// GRS1980 is the GRS 1980 ellipsoid (EPSG:7019), used by the North
	// American Datum 1983 and the European Terrestrial Reference System 1989.
	GRS1980 = Ellipsoid{
		name: "GRS 1980",
		code: 7019,
		a:    6378137.0,
		f:    1.0 / 298.257222101,
		remarks: "Adopted by IUGG 1979 Canberra. Inverse flattening is derived from " +
			"geocentric gravitational constant GM = 3986005e8 m*m*m/s/s; dynamic form " +
			"factor J2 = 108263e-8 and Earth's angular velocity = 7292115e-11 rad/s.",
	}

	// International1924 is the International 1924 ellipsoid (EPSG:7022),
	// used by the European Datum 1950.
	International1924 = Ellipsoid{
		name:    "International 1924",
		code:    7022,
		a:       6378388.0,
		f:       1.0 / 297.0,
		remarks: "Adopted by IUGG 1924 in Madrid. Based on Hayford 1909/1910 figures.",
	}

	// WGS84Ellipsoid is the WGS 84 ellipsoid (EPSG:7030), used by the
	// World Geodetic System 1984.
	WGS84Ellipsoid = Ellipsoid{
		name: "WGS 84",
		code: 7030,
		a:    6378137.0,
		f:    1.0 / 298.257223563,
		remarks: "1/f derived from four defining parameters semi-major axis; " +
			"C20 = -484.16685*10e-6; earth's angular velocity ω = 7292115e-11 rad/sec; " +
			"gravitational constant GM = 3986005e8 m*m*m/s/s. In 1994 new GM = " +
			"3986004.418e8 m*m*m/s/s but a and 1/f retained.",
	}
)
