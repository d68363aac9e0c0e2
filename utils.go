package wiresphere

import "math"

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in wiresphere use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value > max {
		return max
	} else if value < min {
		return min
	}
	return value
}
