// Package series provides the integer products used as Taylor-series
// coefficients by the trig engine.
package series

// Factorial returns 1·2·…·n, or 1 for n <= 1. The result is a float64 so
// callers can go past the uint64 range (n > 20) up to n = 170, beyond which
// it is +Inf.
func Factorial(n int) float64 {
	res := 1.0
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return res
}

// DoubleFactorial returns n·(n−2)·(n−4)·… down to 1 or 2, or 1 for n <= 0.
func DoubleFactorial(n int) float64 {
	res := 1.0
	for ; n > 0; n -= 2 {
		res *= float64(n)
	}
	return res
}
