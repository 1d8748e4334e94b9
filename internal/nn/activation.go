package nn

import "math"

// Sigmoid applies the logistic function.
//
// Applies the element-wise function: σ(z) = 1 / (1 + exp(-z))
//
// Sigmoid squashes values to the range (0, 1), which makes it the output
// activation for a single binary target.
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// SigmoidDerivative returns the logistic derivative in terms of its output.
//
// The argument must be the activated value a = σ(z), not z itself:
//
//	σ'(z) = a * (1 - a)
func SigmoidDerivative(a float64) float64 {
	return a * (1 - a)
}

// TanhActivation is the hyperbolic tangent activation.
//
// Applies the element-wise function: (exp(z) - exp(-z)) / (exp(z) + exp(-z))
//
// The result is mathematically identical to math.Tanh. Overflow for very
// large |z| is not guarded and yields NaN.
func TanhActivation(z float64) float64 {
	pos, neg := math.Exp(z), math.Exp(-z)
	return (pos - neg) / (pos + neg)
}

// TanhDerivative returns the tanh derivative in terms of its output.
//
// The argument must be the activated value a = tanh(z):
//
//	tanh'(z) = 1 - a²
func TanhDerivative(a float64) float64 {
	return 1 - a*a
}
