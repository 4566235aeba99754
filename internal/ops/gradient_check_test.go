package ops_test

import (
	"math"
	"testing"

	"github.com/deeptape-ml/deeptape/internal/ops"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// numericalGradient computes the gradient using central finite
// differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// analyticGradient builds the graph over a probe at x, runs forward
// and backward, and returns the routed gradient.
func analyticGradient(t *testing.T, build func(ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64], x float64) float64 {
	t.Helper()
	p := &probe{value: x}
	l := build(p)

	in := tape.Constant[float64, float64](0)
	defer in.Close()

	out, err := l.Forward(in)
	if err != nil {
		t.Fatalf("Forward() error: %v", err)
	}
	defer out.Close()

	if err := tape.Backward(out, func() float64 { return 1 }); err != nil {
		t.Fatalf("Backward() error: %v", err)
	}
	return p.grad()
}

// TestGradientCheck_Composite tests analytic against numerical
// gradients for composite expressions with shared subterms.
func TestGradientCheck_Composite(t *testing.T) {
	cases := []struct {
		name  string
		build func(p ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64]
		f     func(x float64) float64
		x     float64
	}{
		{
			name: "x*sin(x)",
			build: func(p ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64] {
				return ops.Mul[float64, float64]{Left: p, Right: ops.Sin[float64, float64]{X: p}}
			},
			f: func(x float64) float64 { return x * math.Sin(x) },
			x: 1.3,
		},
		{
			name: "exp(x*x)",
			build: func(p ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64] {
				return ops.Exp[float64, float64]{X: ops.Mul[float64, float64]{Left: p, Right: p}}
			},
			f: func(x float64) float64 { return math.Exp(x * x) },
			x: 0.7,
		},
		{
			name: "tanh(x)/x",
			build: func(p ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64] {
				return ops.Div[float64, float64]{Left: ops.Tanh[float64, float64]{X: p}, Right: p}
			},
			f: func(x float64) float64 { return math.Tanh(x) / x },
			x: 0.9,
		},
		{
			name: "log(x) - cos(x)",
			build: func(p ops.ScalarLayer[float64, float64]) ops.ScalarLayer[float64, float64] {
				return ops.Sub[float64, float64]{Left: ops.Log[float64, float64]{X: p}, Right: ops.Cos[float64, float64]{X: p}}
			},
			f: func(x float64) float64 { return math.Log(x) - math.Cos(x) },
			x: 2.1,
		},
	}

	const epsilon = 1e-6
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analytic := analyticGradient(t, tc.build, tc.x)
			numerical := numericalGradient(tc.f, tc.x, epsilon)
			if math.Abs(analytic-numerical) > 1e-6 {
				t.Errorf("analytic gradient %v differs from numerical %v", analytic, numerical)
			}
		})
	}
}
