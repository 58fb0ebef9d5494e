package gaussquad_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/gaussquad"
)

// ExampleIntegratorFactory_LegendreOn integrates x² over [0, 1] with a
// 5-point Gauss-Legendre rule.
func ExampleIntegratorFactory_LegendreOn() {
	factory := gaussquad.NewIntegratorFactory()
	gl, err := factory.LegendreOn(5, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v := gl.Integrate(func(x float64) float64 { return x * x })
	fmt.Printf("%.10f\n", v)
	// Output:
	// 0.3333333333
}

// ExampleIntegratorFactory_Hermite computes the Gaussian second moment
// ∫ x²·e^(−x²) dx = √π/2.
func ExampleIntegratorFactory_Hermite() {
	factory := gaussquad.NewIntegratorFactory()
	gh, err := factory.Hermite(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v := gh.Integrate(func(x float64) float64 { return x * x })
	fmt.Printf("%.10f\n", v) // √π/2
	// Output:
	// 0.8862269255
}

// ExampleRuleFactory_Rule shows the raw nodes and weights of the
// 3-point Legendre rule.
func ExampleRuleFactory_Rule() {
	factory := gaussquad.NewLegendreRuleFactory()
	points, weights, err := factory.Rule(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := range points {
		fmt.Printf("x=%+.6f w=%.6f\n", points[i], weights[i])
	}
	// Output:
	// x=-0.774597 w=0.555556
	// x=+0.000000 w=0.888889
	// x=+0.774597 w=0.555556
}
