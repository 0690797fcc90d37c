package taskgraph

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/taskfunction"
)

// inputShape classifies the value feeding inputPort, per spec §4.6.1 point
// 1: constants shape as Constant; a non-constant producer shapes as
// BranchlessVariable when its sole consumer is this port, else Variable.
func inputShape(graph *ir.ExecutionGraph, inputPort ir.NodeIndex) (taskfunction.Shape, ir.NodeIndex, error) {
	producer, err := graph.IncomingEdge(inputPort, 0)
	if err != nil {
		return 0, ir.InvalidNodeIndex, ErrMalformedGraph
	}

	kind, err := graph.NodeKind(producer)
	if err != nil {
		return 0, ir.InvalidNodeIndex, ErrMalformedGraph
	}
	if kind == ir.KindConstant {
		return taskfunction.ShapeConstant, producer, nil
	}

	if graph.OutgoingEdgeCount(producer) == 1 {
		return taskfunction.ShapeBranchlessVariable, producer, nil
	}
	return taskfunction.ShapeVariable, producer, nil
}
