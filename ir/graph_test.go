package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavelang/wavelang/ir"
)

// TestExecutionGraph_ConstantAndCall builds negation(negation(x)) by hand and
// checks the port/edge bookkeeping invariants from spec §3/§4.1.
func TestExecutionGraph_ConstantAndCall(t *testing.T) {
	g := ir.NewExecutionGraph()

	x := g.CreateRealConstant(2.0)
	negUID := ir.NativeModuleId{LibraryID: 1, ModuleID: 1}

	inner := g.CreateNativeModuleCall(negUID, 1, 1)
	innerIn, err := g.InputPort(inner, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(x, innerIn))

	innerOut, err := g.OutputPort(inner, 0)
	require.NoError(t, err)

	outer := g.CreateNativeModuleCall(negUID, 1, 1)
	outerIn, err := g.InputPort(outer, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(innerOut, outerIn))

	outerOut, err := g.OutputPort(outer, 0)
	require.NoError(t, err)

	out := g.CreateOutput(0)
	require.NoError(t, g.AddEdge(outerOut, out))

	require.Equal(t, 1, g.IncomingEdgeCount(innerIn))
	require.Equal(t, 1, g.OutgoingEdgeCount(innerIn))
	require.Equal(t, 1, g.IncomingEdgeCount(out))

	// A second edge into a full input port is rejected.
	require.ErrorIs(t, g.AddEdge(x, innerIn), ir.ErrPortFull)

	kind, err := g.NodeKind(inner)
	require.NoError(t, err)
	require.Equal(t, ir.KindNativeModuleCall, kind)
}

func TestExecutionGraph_ArrayConstant(t *testing.T) {
	g := ir.NewExecutionGraph()
	a := g.CreateRealConstant(1)
	b := g.CreateRealConstant(2)
	c := g.CreateRealConstant(3)

	arr, err := g.CreateArrayConstant(ir.PrimitiveReal, []ir.NodeIndex{a, b, c})
	require.NoError(t, err)

	require.True(t, g.DoesNodeUseIndexedInputs(arr))
	elems, err := g.ArrayConstantElements(arr)
	require.NoError(t, err)
	require.Equal(t, []ir.NodeIndex{a, b, c}, elems)

	dt, err := g.ConstantDataType(arr)
	require.NoError(t, err)
	require.True(t, dt.IsArray)
	require.Equal(t, ir.PrimitiveReal, dt.Primitive)

	// Scalar constants reject incoming edges outright.
	require.ErrorIs(t, g.AddEdge(a, b), ir.ErrConstantHasNoInputs)
}

func TestExecutionGraph_RemoveNodeCascadesPorts(t *testing.T) {
	g := ir.NewExecutionGraph()
	uid := ir.NativeModuleId{LibraryID: 1, ModuleID: 2}
	call := g.CreateNativeModuleCall(uid, 2, 1)
	in0, _ := g.InputPort(call, 0)
	in1, _ := g.InputPort(call, 1)
	out0, _ := g.OutputPort(call, 0)

	before := g.LiveNodeCount()
	require.NoError(t, g.RemoveNode(call))

	require.False(t, g.IsLive(call))
	require.False(t, g.IsLive(in0))
	require.False(t, g.IsLive(in1))
	require.False(t, g.IsLive(out0))
	require.Equal(t, before-4, g.LiveNodeCount())
}

func TestExecutionGraph_Compact(t *testing.T) {
	g := ir.NewExecutionGraph()
	a := g.CreateRealConstant(1)
	b := g.CreateRealConstant(2)
	require.NoError(t, g.RemoveNode(a))

	out := g.CreateOutput(0)
	require.NoError(t, g.AddEdge(b, out))

	g.Compact()

	require.Equal(t, g.LiveNodeCount(), g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		require.True(t, g.IsLive(ir.NodeIndex(i)))
	}
}

func TestExecutionGraph_RerouteOutgoingEdges(t *testing.T) {
	g := ir.NewExecutionGraph()
	a := g.CreateRealConstant(1)
	b := g.CreateRealConstant(2)
	out1 := g.CreateOutput(0)
	out2 := g.CreateOutput(1)
	require.NoError(t, g.AddEdge(a, out1))

	require.NoError(t, g.RerouteOutgoingEdges(a, b))
	require.Equal(t, 0, g.OutgoingEdgeCount(a))
	require.Equal(t, 1, g.OutgoingEdgeCount(b))

	dst, err := g.OutgoingEdge(b, 0)
	require.NoError(t, err)
	require.Equal(t, out1, dst)
	_ = out2
}
