package common

const (
	BaseWidth  = 960
	BaseHeight = 600
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
