package simplifier

import "math"

const (
	two31 = 2147483648.0
	two32 = 4294967296.0
)

// ToInt32 converts a number to a signed 32-bit integer: NaN, infinities
// and zero become 0, everything else is truncated and wrapped modulo 2^32.
func ToInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	f = math.Mod(f, two32)
	if f >= 0 {
		f = math.Floor(f)
	} else {
		f = math.Ceil(f) + two32
	}
	if f >= two31 {
		f -= two32
	}
	return int32(f)
}

// ToUint32 is ToInt32 reinterpreted as unsigned.
func ToUint32(f float64) uint32 {
	return uint32(ToInt32(f))
}
