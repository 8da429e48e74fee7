package tensor

// DataType represents the element type of a Raw array.
type DataType int

// Supported element types.
//
// Float64 covers analytic measurement values (expectations, variances,
// probabilities) and all derivative results. Int64 covers shot-based
// outputs such as computational-basis samples.
const (
	Float64 DataType = iota
	Int64
)

// String returns a human-readable type name.
func (d DataType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// Size returns the element size in bytes.
func (d DataType) Size() int {
	switch d {
	case Float64, Int64:
		return 8
	default:
		return 0
	}
}
