package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHelmertParameters(t *testing.T) {
	p, err := NewHelmertParameters(1.0, 2.0, 3.0, 0.1, 0.2, 0.3, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 1.0, p.Tx())
	assert.Equal(t, 2.0, p.Ty())
	assert.Equal(t, 3.0, p.Tz())
	assert.Equal(t, 0.1, p.Rx())
	assert.Equal(t, 0.2, p.Ry())
	assert.Equal(t, 0.3, p.Rz())
	assert.Equal(t, 0.5, p.S())
}

func TestNewHelmertParametersRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		params [7]float64
	}{
		{"NaN translation", [7]float64{math.NaN(), 0, 0, 0, 0, 0, 0}},
		{"infinite translation", [7]float64{0, 0, math.Inf(1), 0, 0, 0, 0}},
		{"NaN rotation", [7]float64{0, 0, 0, 0, math.NaN(), 0, 0}},
		{"infinite rotation", [7]float64{0, 0, 0, math.Inf(-1), 0, 0, 0}},
		{"NaN scale", [7]float64{0, 0, 0, 0, 0, 0, math.NaN()}},
		{"infinite scale", [7]float64{0, 0, 0, 0, 0, 0, math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHelmertParameters(
				tt.params[0], tt.params[1], tt.params[2],
				tt.params[3], tt.params[4], tt.params[5],
				tt.params[6],
			)
			require.ErrorIs(t, err, ErrNotFinite)
		})
	}
}

func TestHelmertParametersIsIdentity(t *testing.T) {
	identity, err := NewHelmertParameters(0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, identity.IsIdentity())

	shifted, err := NewHelmertParameters(-87.0, -98.0, -121.0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.False(t, shifted.IsIdentity())

	scaled, err := NewHelmertParameters(0, 0, 0, 0, 0, 0, -20.4894)
	require.NoError(t, err)
	assert.False(t, scaled.IsIdentity())
}

func TestHelmertParametersEquality(t *testing.T) {
	p1, err := NewHelmertParameters(1, 2, 3, 0.1, 0.2, 0.3, 0.5)
	require.NoError(t, err)
	p2, err := NewHelmertParameters(1, 2, 3, 0.1, 0.2, 0.3, 0.5)
	require.NoError(t, err)
	p3, err := NewHelmertParameters(1, 2, 3, 0.1, 0.2, 0.3, 0.6)
	require.NoError(t, err)

	assert.True(t, p1 == p2)
	assert.True(t, p1 != p3)

	set := map[HelmertParameters]struct{}{p1: {}, p2: {}}
	assert.Len(t, set, 1)
}

func TestNewDatum(t *testing.T) {
	d := NewDatum("Test Datum", 1234, WGS84Ellipsoid, nil, "Test remarks")

	assert.Equal(t, "Test Datum", d.Name())
	assert.Equal(t, 1234, d.Code())
	assert.Equal(t, WGS84Ellipsoid, d.Ellipsoid())
	assert.Equal(t, "Test remarks", d.Remarks())

	_, ok := d.ToWGS84()
	assert.False(t, ok)
}

func TestNewDatumWithTransform(t *testing.T) {
	p, err := NewHelmertParameters(446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894)
	require.NoError(t, err)

	d := NewDatum("Test", 1234, Airy1830, &p, "")
	got, ok := d.ToWGS84()
	require.True(t, ok)
	assert.Equal(t, p, got)
}

// TestNewDatumCopiesTransform verifies that the datum holds its own copy of
// the parameter set, detached from the caller's pointer.
func TestNewDatumCopiesTransform(t *testing.T) {
	p, err := NewHelmertParameters(1, 2, 3, 0, 0, 0, 0)
	require.NoError(t, err)
	d := NewDatum("Test", 1234, WGS84Ellipsoid, &p, "")

	p, err = NewHelmertParameters(9, 9, 9, 9, 9, 9, 9)
	require.NoError(t, err)

	got, ok := d.ToWGS84()
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Tx())
	assert.Equal(t, 3.0, got.Tz())
}

func TestDatumEquality(t *testing.T) {
	d1 := NewDatum("Test", 1234, WGS84Ellipsoid, nil, "")
	d2 := NewDatum("Test", 1234, WGS84Ellipsoid, nil, "")
	d3 := NewDatum("Other", 5678, WGS84Ellipsoid, nil, "")

	assert.True(t, d1 == d2)
	assert.True(t, d1 != d3)

	// An explicit identity transform is present, not absent.
	identity := HelmertParameters{}
	d4 := NewDatum("Test", 1234, WGS84Ellipsoid, &identity, "")
	assert.True(t, d1 != d4)

	// The ellipsoid takes part in datum identity.
	d5 := NewDatum("Test", 1234, GRS1980, nil, "")
	assert.True(t, d1 != d5)

	set := map[Datum]struct{}{d1: {}, d2: {}}
	assert.Len(t, set, 1)
}

func TestDatumURN(t *testing.T) {
	assert.Equal(t, "urn:ogc:def:datum:EPSG::6326", WGS84.URN())

	custom := NewDatum("Custom", 9999, WGS84Ellipsoid, nil, "")
	assert.Equal(t, "urn:ogc:def:datum:EPSG::9999", custom.URN())
}

func TestDatumString(t *testing.T) {
	assert.Equal(t, "World Geodetic System 1984 ensemble (EPSG:6326)", WGS84.String())
	assert.Equal(t, "North American Datum 1927 (EPSG:6267)", NAD27.String())
}

// TestBuiltinDatums pins every built-in datum to the published EPSG values:
// name, code, reference ellipsoid, and transformation toward WGS 84.
func TestBuiltinDatums(t *testing.T) {
	identity, err := NewHelmertParameters(0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	ed50Shift, err := NewHelmertParameters(-87.0, -98.0, -121.0, 0, 0, 0, 0)
	require.NoError(t, err)
	nad27Shift, err := NewHelmertParameters(-8.0, 160.0, 176.0, 0, 0, 0, 0)
	require.NoError(t, err)
	osgb36Shift, err := NewHelmertParameters(446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894)
	require.NoError(t, err)

	tests := []struct {
		datum       Datum
		name        string
		code        int
		ellipsoid   Ellipsoid
		toWGS84     HelmertParameters
		wantRemarks bool
	}{
		{ED50, "European Datum 1950", 6230, International1924, ed50Shift, false},
		{ETRS89, "European Terrestrial Reference System 1989 ensemble", 6258, GRS1980, identity, true},
		{NAD27, "North American Datum 1927", 6267, Clarke1866, nad27Shift, true},
		{NAD83, "North American Datum 1983", 6269, GRS1980, identity, true},
		{OSGB36, "Ordnance Survey of Great Britain 1936", 6277, Airy1830, osgb36Shift, true},
		{WGS84, "World Geodetic System 1984 ensemble", 6326, WGS84Ellipsoid, identity, true},
	}

	codes := make(map[int]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.datum.Name())
			assert.Equal(t, tt.code, tt.datum.Code())
			assert.Equal(t, tt.ellipsoid, tt.datum.Ellipsoid())

			p, ok := tt.datum.ToWGS84()
			require.True(t, ok)
			assert.Equal(t, tt.toWGS84, p)

			assert.Equal(t, tt.wantRemarks, tt.datum.Remarks() != "")
		})
		codes[tt.code] = true
	}
	assert.Len(t, codes, len(tests))
}

// TestSharedEllipsoid verifies that datums on the same reference ellipsoid
// see identical values.
func TestSharedEllipsoid(t *testing.T) {
	assert.Equal(t, GRS1980, ETRS89.Ellipsoid())
	assert.Equal(t, GRS1980, NAD83.Ellipsoid())
	assert.True(t, ETRS89.Ellipsoid() == NAD83.Ellipsoid())
}

func TestOSGB36Transform(t *testing.T) {
	p, ok := OSGB36.ToWGS84()
	require.True(t, ok)

	assert.Equal(t, 446.448, p.Tx())
	assert.Equal(t, -125.157, p.Ty())
	assert.Equal(t, 542.060, p.Tz())
	assert.Equal(t, 0.1502, p.Rx())
	assert.Equal(t, 0.2470, p.Ry())
	assert.Equal(t, 0.8421, p.Rz())
	assert.Equal(t, -20.4894, p.S())
	assert.False(t, p.IsIdentity())
}
