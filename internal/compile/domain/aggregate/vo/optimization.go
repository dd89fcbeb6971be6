package vo

// Optimization is reported back to the caller; it never changes output.
type Optimization string

const (
	OptimizationNone       Optimization = "none"
	OptimizationBasic      Optimization = "basic"
	OptimizationAggressive Optimization = "aggressive"
)

// ParseOptimization maps empty and unknown values to none.
func ParseOptimization(s string) Optimization {
	switch o := Optimization(s); o {
	case OptimizationBasic, OptimizationAggressive:
		return o
	default:
		return OptimizationNone
	}
}
