package utils

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// InverseLerp returns where v sits between from and to, unclamped.
func InverseLerp(from, to float32, v float32) float32 {
	return (v - from) / (to - from)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
