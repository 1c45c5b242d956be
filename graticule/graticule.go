// Package graticule rotates geographic coordinates between the standard
// graticule and the oblique metagraticule of an interrupted or oblique
// projection.
package graticule

import (
	"math"

	"github.com/golang/geo/s1"
)

// A Rotation describes an oblique aspect: the geographic position of the
// metapole and the meta-meridian that becomes the central meridian after
// rotation. A Rotation is immutable and safe to share.
type Rotation struct {
	PoleLongitude   float64
	PoleLatitude    float64
	CentralMeridian float64
}

// Identity returns the rotation that leaves the standard graticule in place.
func Identity() Rotation {
	return Rotation{PoleLatitude: 90}
}

// IsIdentity reports whether applying the rotation is a no-op.
func (r Rotation) IsIdentity() bool {
	return r.PoleLongitude == 0 && r.PoleLatitude == 90 && r.CentralMeridian == 0
}

// Forward rotates a geographic coordinate into the metagraticule.
func (r Rotation) Forward(lon, lat float64) (float64, float64) {
	return rotate(lon, lat, r.PoleLongitude, r.PoleLatitude, r.CentralMeridian)
}

// Inverse rotates a metagraticule coordinate back into the standard
// graticule. The inverse of the oblique transform is the transform itself
// with reflected, swapped meridians: (180-lm, f0, 180-l0).
func (r Rotation) Inverse(lon, lat float64) (float64, float64) {
	return rotate(lon, lat, 180-r.CentralMeridian, r.PoleLatitude, 180-r.PoleLongitude)
}

func rotate(lon, lat, poleLon, poleLat, meridian float64) (float64, float64) {
	if poleLon == 0 && poleLat == 90 && meridian == 0 {
		return lon, lat
	}

	l := lon - poleLon
	var x, y float64
	if poleLat == 90 {
		// Metapole already at the north pole: a pure meridian shift. Going
		// through the trig path here would round exact inputs.
		x = l
		y = lat
	} else if poleLat == -90 {
		// Metapole at the south pole: a half turn, no trigonometry needed.
		x = 180 - l
		y = -lat
	} else {
		lr := radians(l)
		fr := radians(lat)
		f0 := radians(poleLat)
		x = degrees(math.Atan2(math.Cos(fr)*math.Sin(lr),
			-math.Cos(f0)*math.Sin(fr)+math.Sin(f0)*math.Cos(fr)*math.Cos(lr)))
		y = degrees(math.Asin(math.Sin(f0)*math.Sin(fr) + math.Cos(f0)*math.Cos(fr)*math.Cos(lr)))
	}

	return NormalizeLongitude(x - meridian), y
}

// NormalizeLongitude reduces a longitude in degrees into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	for lon <= -180 {
		lon += 360
	}
	for lon > 180 {
		lon -= 360
	}
	return lon
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}
