package optimize

import (
	"math"

	"github.com/wavelang/wavelang/ir"
)

// floorIndex floors v to an int array index, reporting false for NaN or
// infinite values (spec §4.4.3: "falling back to the primitive's zero value
// on out-of-range/NaN/Inf").
func floorIndex(v float32) (int, bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Floor(f)), true
}

// zeroConstant creates a new scalar constant node holding p's zero value.
func zeroConstant(graph *ir.ExecutionGraph, p ir.Primitive) ir.NodeIndex {
	switch p {
	case ir.PrimitiveReal:
		return graph.CreateRealConstant(0)
	case ir.PrimitiveBool:
		return graph.CreateBoolConstant(false)
	default:
		return graph.CreateStringConstant("")
	}
}
