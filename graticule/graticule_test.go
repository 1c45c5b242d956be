package graticule

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func TestIdentity(t *testing.T) {
	is := is.New(t)

	r := Identity()
	is.True(r.IsIdentity())

	lon, lat := r.Forward(12.5, -33.25)
	is.Equal(lon, 12.5)
	is.Equal(lat, -33.25)

	lon, lat = r.Inverse(12.5, -33.25)
	is.Equal(lon, 12.5)
	is.Equal(lat, -33.25)
}

func TestNorthPoleShift(t *testing.T) {
	is := is.New(t)

	// Metapole at the north pole reduces to a meridian shift, and stays
	// exact for exact inputs.
	r := Rotation{PoleLatitude: 90, CentralMeridian: 30}
	lon, lat := r.Forward(50, 20)
	is.Equal(lon, 20.0)
	is.Equal(lat, 20.0)

	lon, lat = r.Inverse(20, 20)
	is.Equal(lon, 50.0)
	is.Equal(lat, 20.0)
}

func TestSouthPoleReflection(t *testing.T) {
	is := is.New(t)

	r := Rotation{PoleLatitude: -90}
	lon, lat := r.Forward(30, 40)
	is.Equal(lon, 150.0)
	is.Equal(lat, -40.0)
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)

	rotations := []Rotation{
		{PoleLongitude: 40, PoleLatitude: 50, CentralMeridian: 20},
		{PoleLongitude: -100, PoleLatitude: 10},
		{PoleLatitude: -90},
		{PoleLongitude: 170, PoleLatitude: -45, CentralMeridian: -60},
		{PoleLatitude: 90, CentralMeridian: 30},
	}
	for _, r := range rotations {
		for lon := -150.0; lon <= 150; lon += 30 {
			for lat := -80.0; lat <= 80; lat += 20 {
				flon, flat := r.Forward(lon, lat)
				blon, blat := r.Inverse(flon, flat)
				is.True(math.Abs(NormalizeLongitude(blon-lon)) < 1e-9)
				is.True(math.Abs(blat-lat) < 1e-9)
			}
		}
	}
}

func TestInverseIsSwappedForward(t *testing.T) {
	is := is.New(t)

	r := Rotation{PoleLongitude: 40, PoleLatitude: 50, CentralMeridian: 20}
	swapped := Rotation{PoleLongitude: 180 - r.CentralMeridian, PoleLatitude: r.PoleLatitude, CentralMeridian: 180 - r.PoleLongitude}

	lon, lat := r.Inverse(-37.5, 12.25)
	slon, slat := swapped.Forward(-37.5, 12.25)
	is.Equal(lon, slon)
	is.Equal(lat, slat)
}

func TestNormalizeLongitude(t *testing.T) {
	is := is.New(t)

	is.Equal(NormalizeLongitude(0), 0.0)
	is.Equal(NormalizeLongitude(180), 180.0)
	is.Equal(NormalizeLongitude(-180), 180.0)
	is.Equal(NormalizeLongitude(190), -170.0)
	is.Equal(NormalizeLongitude(-190), 170.0)
	is.Equal(NormalizeLongitude(720), 0.0)
	is.Equal(NormalizeLongitude(-540), 180.0)
}
