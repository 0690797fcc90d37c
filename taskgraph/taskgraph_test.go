package taskgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
	"github.com/wavelang/wavelang/taskfunction"
	"github.com/wavelang/wavelang/taskgraph"
)

var mulUID = ir.NativeModuleId{LibraryID: 1, ModuleID: 1}
var mulTaskUID = taskfunction.TaskFunctionId{LibraryID: 1, FunctionID: 1}

func multiplicationModule() nativemodule.NativeModule {
	return nativemodule.NativeModule{
		UID: mulUID,
		Args: []nativemodule.Argument{
			{Qualifier: ir.QualifierIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Qualifier: ir.QualifierIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Qualifier: ir.QualifierOut, Type: ir.Scalar(ir.PrimitiveReal), IsReturn: true},
		},
	}
}

func newModuleRegistry(t *testing.T, modules ...nativemodule.NativeModule) *nativemodule.Registry {
	t.Helper()
	r := nativemodule.NewRegistry()
	require.NoError(t, r.Initialize())
	require.NoError(t, r.BeginRegistration())
	require.NoError(t, r.RegisterLibrary(1, "dsp", 1, 0))
	for _, m := range modules {
		require.NoError(t, r.RegisterNativeModule(m))
	}
	ok, err := r.EndRegistration()
	require.NoError(t, err)
	require.True(t, ok)
	return r
}

// inoutMultiplicationRegistry wires the "bc." scenario from spec §8
// scenario 5: the buffer input and the multiplication's own output bind to
// one inout task argument, and the constant input binds the second argument.
var ccTaskUID = taskfunction.TaskFunctionId{LibraryID: 1, FunctionID: 2}

func inoutMultiplicationRegistry(t *testing.T) *taskfunction.Registry {
	t.Helper()
	r := taskfunction.NewRegistry()
	require.NoError(t, r.RegisterLibrary(1, "dsp", 1, 0))
	require.NoError(t, r.RegisterTaskFunction(taskfunction.TaskFunction{
		UID: mulTaskUID,
		Args: []taskfunction.TaskArgument{
			{Direction: taskfunction.DirInOut, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
		},
	}))
	require.NoError(t, r.RegisterMapping(multiplicationModule(), taskfunction.Mapping{
		TaskFuncUID: mulTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 1, 0},
	}))

	// A second, non-inout mapping for calls whose inputs are both literal
	// constants (e.g. this fixture's producer task) — registered after the
	// inout mapping so PickMapping's in-order scan still prefers "bc." when
	// it applies.
	require.NoError(t, r.RegisterTaskFunction(taskfunction.TaskFunction{
		UID: ccTaskUID,
		Args: []taskfunction.TaskArgument{
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirOut, Type: ir.Scalar(ir.PrimitiveReal)},
		},
	}))
	require.NoError(t, r.RegisterMapping(multiplicationModule(), taskfunction.Mapping{
		TaskFuncUID: ccTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeConstant, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 1, 2},
	}))
	return r
}

func TestBuild_SelectsTaskAndAllocatesBuffers(t *testing.T) {
	nativeModules := newModuleRegistry(t, multiplicationModule())
	taskFunctions := inoutMultiplicationRegistry(t)

	g := ir.NewExecutionGraph()

	// "a" is produced by another call so its shape classifies as a
	// non-constant buffer value, matching spec §8 scenario 5's premise.
	producer := g.CreateNativeModuleCall(mulUID, 2, 1)
	pLhs, _ := g.InputPort(producer, 0)
	pRhs, _ := g.InputPort(producer, 1)
	require.NoError(t, g.AddEdge(g.CreateRealConstant(7), pLhs))
	require.NoError(t, g.AddEdge(g.CreateRealConstant(1), pRhs))
	producerOut, _ := g.OutputPort(producer, 0)

	mul := g.CreateNativeModuleCall(mulUID, 2, 1)
	lhs, _ := g.InputPort(mul, 0)
	rhs, _ := g.InputPort(mul, 1)
	require.NoError(t, g.AddEdge(producerOut, lhs)) // "a": BranchlessVariable (sole consumer)
	require.NoError(t, g.AddEdge(g.CreateRealConstant(2), rhs))
	mulOut, _ := g.OutputPort(mul, 0)

	out := g.CreateOutput(0)
	require.NoError(t, g.AddEdge(mulOut, out))

	tg, err := taskgraph.Build(g, nativeModules, taskFunctions)
	require.NoError(t, err)
	require.Len(t, tg.Tasks, 2)

	mulTask := tg.Tasks[1]
	require.Equal(t, mulTaskUID, mulTask.TaskFuncUID)
	require.Equal(t, taskgraph.ArgBuffer, mulTask.Args[0].Kind)
	require.Equal(t, taskgraph.ArgImmediateReal, mulTask.Args[1].Kind)
	require.Equal(t, float32(2), mulTask.Args[1].ImmediateReal)

	// The inout buffer is shared between producer's own output and mul's
	// output: exactly one buffer serves both.
	producerTask := tg.Tasks[0]
	require.Equal(t, ccTaskUID, producerTask.TaskFuncUID)
	require.Equal(t, producerTask.Args[2].BufferIndex, mulTask.Args[0].BufferIndex)

	require.Len(t, tg.Outputs, 1)
	require.False(t, tg.Outputs[0].IsConstant)
	require.Equal(t, mulTask.Args[0].BufferIndex, tg.Outputs[0].BufferIndex)

	require.Equal(t, 1, mulTask.PredecessorCount)
	require.Equal(t, []int{1}, producerTask.Successors)
	require.Equal(t, []int{0}, tg.InitialTasks)
}

func TestBuild_NoTaskMappingError(t *testing.T) {
	nativeModules := newModuleRegistry(t, multiplicationModule())
	taskFunctions := taskfunction.NewRegistry() // no mappings registered at all

	g := ir.NewExecutionGraph()
	mul := g.CreateNativeModuleCall(mulUID, 2, 1)
	lhs, _ := g.InputPort(mul, 0)
	rhs, _ := g.InputPort(mul, 1)
	require.NoError(t, g.AddEdge(g.CreateRealConstant(1), lhs))
	require.NoError(t, g.AddEdge(g.CreateRealConstant(2), rhs))
	mulOut, _ := g.OutputPort(mul, 0)
	out := g.CreateOutput(0)
	require.NoError(t, g.AddEdge(mulOut, out))

	tg, err := taskgraph.Build(g, nativeModules, taskFunctions)
	require.Nil(t, tg)
	require.ErrorIs(t, err, taskgraph.ErrNoTaskMapping)
}

func TestBuild_ConstantOutputIsImmediate(t *testing.T) {
	nativeModules := newModuleRegistry(t, multiplicationModule())
	taskFunctions := inoutMultiplicationRegistry(t)

	g := ir.NewExecutionGraph()
	c := g.CreateRealConstant(42)
	out := g.CreateOutput(0)
	require.NoError(t, g.AddEdge(c, out))

	tg, err := taskgraph.Build(g, nativeModules, taskFunctions)
	require.NoError(t, err)
	require.Len(t, tg.Tasks, 0)
	require.Len(t, tg.Outputs, 1)
	require.True(t, tg.Outputs[0].IsConstant)
	require.Equal(t, float32(42), tg.Outputs[0].Constant.Real)
}
