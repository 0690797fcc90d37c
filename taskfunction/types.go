package taskfunction

import "github.com/wavelang/wavelang/ir"

// TaskFunctionId fingerprints a task function across libraries, mirroring
// ir.NativeModuleId.
type TaskFunctionId struct {
	LibraryID  uint32
	FunctionID uint32
}

// Direction is a task-function argument's runtime data flow. Unlike
// nativemodule.Qualifier it has no Constant case — a task function only
// ever sees buffers and immediates, never a compile-time-only slot — but
// gains InOut, where one buffer is read and then overwritten in place.
type Direction int

const (
	DirIn Direction = iota
	DirOut
	DirInOut
)

// TaskArgument is one declared parameter of a TaskFunction.
type TaskArgument struct {
	Direction Direction
	Type      ir.DataType
}

// TaskFunction is a runtime kernel the task graph can schedule: a stable
// uid, a display name, and its argument signature.
type TaskFunction struct {
	UID         TaskFunctionId
	DisplayName string
	Args        []TaskArgument
}

// TaskFunctionLibrary groups TaskFunctions the way nativemodule.Library
// groups native modules.
type TaskFunctionLibrary struct {
	ID           uint32
	Name         string
	VersionMajor uint16
	VersionMinor uint16
}

// Shape classifies one native-module argument's actual or required runtime
// presentation (spec §4.5).
type Shape int

const (
	// ShapeConstant: the argument resolved to a literal constant node.
	ShapeConstant Shape = iota
	// ShapeVariable: the argument is a non-constant buffer value, possibly
	// with more than one consumer.
	ShapeVariable
	// ShapeBranchlessVariable: a non-constant buffer value with exactly one
	// consumer, eligible for in-place (inout) reuse.
	ShapeBranchlessVariable
	// ShapeNone: not applicable — used for output arguments, which have no
	// producing node to classify.
	ShapeNone
)

// Mapping binds one native module's argument shape to a TaskFunction and an
// arg-for-arg layout (spec §4.5). Shape and ArgIndex are parallel to the
// module's Args: Shape[i] is the required shape for module argument i;
// ArgIndex[i] is the TaskFunction argument it binds to, or -1 if
// unbound.
type Mapping struct {
	TaskFuncUID TaskFunctionId
	Shape       []Shape
	ArgIndex    []int
}

// shapeMatches reports whether an actual runtime shape satisfies a
// mapping's required shape, per spec §4.5's compatibility table.
func shapeMatches(required, actual Shape) bool {
	switch required {
	case ShapeConstant:
		return actual == ShapeConstant
	case ShapeVariable:
		return actual == ShapeVariable || actual == ShapeBranchlessVariable
	case ShapeBranchlessVariable:
		return actual == ShapeBranchlessVariable
	case ShapeNone:
		return actual == ShapeNone
	default:
		return false
	}
}
