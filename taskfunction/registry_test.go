package taskfunction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
	"github.com/wavelang/wavelang/taskfunction"
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

// multiplicationInPlaceTask models the "bc." inout scenario from spec §8
// scenario 5: buffer-in, constant-in, inout-out sharing task arg 0.
func multiplicationInPlaceTask() taskfunction.TaskFunction {
	return taskfunction.TaskFunction{
		UID: mulTaskUID,
		Args: []taskfunction.TaskArgument{
			{Direction: taskfunction.DirInOut, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
		},
	}
}

func newRegistry(t *testing.T) *taskfunction.Registry {
	t.Helper()
	r := taskfunction.NewRegistry()
	require.NoError(t, r.RegisterLibrary(1, "dsp", 1, 0))
	require.NoError(t, r.RegisterTaskFunction(multiplicationInPlaceTask()))
	return r
}

func TestRegistry_RegisterMapping_InOutPairing(t *testing.T) {
	r := newRegistry(t)
	mod := multiplicationModule()

	mapping := taskfunction.Mapping{
		TaskFuncUID: mulTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 1, 0}, // arg0 (in) and arg2 (out) both bind task arg 0 (inout)
	}
	require.NoError(t, r.RegisterMapping(mod, mapping))

	picked, ok := r.PickMapping(mulUID, []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone})
	require.True(t, ok)
	require.Equal(t, mulTaskUID, picked.TaskFuncUID)
}

func TestRegistry_RegisterMapping_ShapeLengthMismatch(t *testing.T) {
	r := newRegistry(t)
	mod := multiplicationModule()

	mapping := taskfunction.Mapping{
		TaskFuncUID: mulTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeVariable},
		ArgIndex:    []int{0},
	}
	require.ErrorIs(t, r.RegisterMapping(mod, mapping), taskfunction.ErrShapeLengthMismatch)
}

func TestRegistry_RegisterMapping_BadInOutPairing(t *testing.T) {
	r := newRegistry(t)
	mod := multiplicationModule()

	// Both module inputs bind to the same inout task arg — invalid, no
	// output participates.
	mapping := taskfunction.Mapping{
		TaskFuncUID: mulTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 0, -1},
	}
	require.ErrorIs(t, r.RegisterMapping(mod, mapping), taskfunction.ErrInvalidInOutPairing)
}

func TestRegistry_PickMapping_ScansInOrder(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.RegisterTaskFunction(taskfunction.TaskFunction{
		UID: taskfunction.TaskFunctionId{LibraryID: 1, FunctionID: 2},
		Args: []taskfunction.TaskArgument{
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirIn, Type: ir.Scalar(ir.PrimitiveReal)},
			{Direction: taskfunction.DirOut, Type: ir.Scalar(ir.PrimitiveReal)},
		},
	}))
	mod := multiplicationModule()

	broadMapping := taskfunction.Mapping{
		TaskFuncUID: taskfunction.TaskFunctionId{LibraryID: 1, FunctionID: 2},
		Shape:       []taskfunction.Shape{taskfunction.ShapeVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 1, 2},
	}
	require.NoError(t, r.RegisterMapping(mod, broadMapping))

	inoutMapping := taskfunction.Mapping{
		TaskFuncUID: mulTaskUID,
		Shape:       []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone},
		ArgIndex:    []int{0, 1, 0},
	}
	require.NoError(t, r.RegisterMapping(mod, inoutMapping))

	// A branchless-variable + constant input matches the first-registered
	// broad mapping too (Variable accepts BranchlessVariable), so
	// registration order determines which one wins.
	picked, ok := r.PickMapping(mulUID, []taskfunction.Shape{taskfunction.ShapeBranchlessVariable, taskfunction.ShapeConstant, taskfunction.ShapeNone})
	require.True(t, ok)
	require.Equal(t, taskfunction.TaskFunctionId{LibraryID: 1, FunctionID: 2}, picked.TaskFuncUID)
}
