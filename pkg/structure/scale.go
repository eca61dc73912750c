package structure

// Scales lists the supported display scale factors in percent. The first
// entry is the baseline; generated rescale code skips it.
var Scales = []int{100, 125, 150, 200}

// ScaleNames gives the generated runtime's constant name for each entry
// of Scales, index-aligned.
var ScaleNames = []string{
	"style::Scale100",
	"style::Scale125",
	"style::Scale150",
	"style::Scale200",
}

// PxAdjust converts a base pixel quantity to the given scale factor in
// percent, rounding half away from zero. The sign is preserved; it is
// used identically at generation time and by the generated runtime
// rescale procedure.
func PxAdjust(value, scale int) int {
	if value < 0 {
		return -PxAdjust(-value, scale)
	}

	return (value*scale + 50) / 100
}
