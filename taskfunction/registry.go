package taskfunction

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// Registry is the catalog of task-function libraries, task functions, and
// per-native-module mapping lists (spec §4.5). Construct one with
// NewRegistry; it is single-threaded like nativemodule.Registry (spec §5).
type Registry struct {
	libraries map[uint32]TaskFunctionLibrary
	functions map[TaskFunctionId]TaskFunction
	mappings  map[ir.NativeModuleId][]Mapping
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		libraries: make(map[uint32]TaskFunctionLibrary),
		functions: make(map[TaskFunctionId]TaskFunction),
		mappings:  make(map[ir.NativeModuleId][]Mapping),
	}
}

// RegisterLibrary registers a task-function library. Fails with
// ErrDuplicateLibrary on id collision.
func (r *Registry) RegisterLibrary(id uint32, name string, versionMajor, versionMinor uint16) error {
	if _, exists := r.libraries[id]; exists {
		return ErrDuplicateLibrary
	}
	r.libraries[id] = TaskFunctionLibrary{ID: id, Name: name, VersionMajor: versionMajor, VersionMinor: versionMinor}
	return nil
}

// RegisterTaskFunction registers tf, requiring its library to already be
// registered and its uid to be unused.
func (r *Registry) RegisterTaskFunction(tf TaskFunction) error {
	if _, ok := r.libraries[tf.UID.LibraryID]; !ok {
		return ErrUnknownLibrary
	}
	if _, exists := r.functions[tf.UID]; exists {
		return ErrDuplicateUID
	}
	r.functions[tf.UID] = tf
	return nil
}

// TaskFunctionByUID returns the registered task function for uid, if any.
func (r *Registry) TaskFunctionByUID(uid TaskFunctionId) (TaskFunction, bool) {
	tf, ok := r.functions[uid]
	return tf, ok
}

// RegisterMapping appends mapping to moduleUID's ordered mapping list,
// after validating it against mod's declared argument signature (spec §4.5:
// "checks that every native-module arg maps to a unique task-function arg
// (or none), that primitive types match, that array-ness matches, and that
// qualifier mapping is sane").
func (r *Registry) RegisterMapping(mod nativemodule.NativeModule, mapping Mapping) error {
	tf, ok := r.functions[mapping.TaskFuncUID]
	if !ok {
		return ErrUnknownFunction
	}
	if len(mapping.Shape) != len(mod.Args) || len(mapping.ArgIndex) != len(mod.Args) {
		return ErrShapeLengthMismatch
	}

	bindings := make(map[int][]int) // task arg index -> module arg indices bound to it

	for i, arg := range mod.Args {
		isOutput := arg.Qualifier == ir.QualifierOut
		if (mapping.Shape[i] == ShapeNone) != isOutput {
			return ErrInvalidShapeForArg
		}

		taskArgIdx := mapping.ArgIndex[i]
		if taskArgIdx < 0 {
			continue
		}
		if taskArgIdx >= len(tf.Args) {
			return ErrArgIndexOutOfRange
		}
		taskArg := tf.Args[taskArgIdx]
		if taskArg.Type != arg.Type {
			return ErrArgTypeMismatch
		}
		if !directionCompatible(arg.Qualifier, taskArg.Direction) {
			return ErrArgDirectionMismatch
		}
		bindings[taskArgIdx] = append(bindings[taskArgIdx], i)
	}

	for taskArgIdx, moduleArgIdxs := range bindings {
		if tf.Args[taskArgIdx].Direction == DirInOut {
			if err := validateInOutPairing(mod, moduleArgIdxs); err != nil {
				return err
			}
			continue
		}
		if len(moduleArgIdxs) > 1 {
			return ErrDuplicateArgBinding
		}
	}

	r.mappings[mod.UID] = append(r.mappings[mod.UID], mapping)
	return nil
}

func directionCompatible(q ir.Qualifier, d Direction) bool {
	switch q {
	case ir.QualifierIn, ir.QualifierConstant:
		return d == DirIn || d == DirInOut
	case ir.QualifierOut:
		return d == DirOut || d == DirInOut
	default:
		return false
	}
}

func validateInOutPairing(mod nativemodule.NativeModule, moduleArgIdxs []int) error {
	if len(moduleArgIdxs) != 2 {
		return ErrInvalidInOutPairing
	}
	hasIn, hasOut := false, false
	for _, i := range moduleArgIdxs {
		switch mod.Args[i].Qualifier {
		case ir.QualifierIn, ir.QualifierConstant:
			hasIn = true
		case ir.QualifierOut:
			hasOut = true
		}
	}
	if !hasIn || !hasOut {
		return ErrInvalidInOutPairing
	}
	return nil
}

// PickMapping scans moduleUID's mappings in registration order and returns
// the first whose shape vector is compatible with actual (spec §4.5:
// "scans mappings in order and returns the first whose shape vector is
// compatible").
func (r *Registry) PickMapping(moduleUID ir.NativeModuleId, actual []Shape) (Mapping, bool) {
	for _, m := range r.mappings[moduleUID] {
		if len(m.Shape) != len(actual) {
			continue
		}
		compatible := true
		for i := range actual {
			if !shapeMatches(m.Shape[i], actual[i]) {
				compatible = false
				break
			}
		}
		if compatible {
			return m, true
		}
	}
	return Mapping{}, false
}
