package nativemodule

import "github.com/wavelang/wavelang/ir"

// MaxArguments bounds how many arguments a single NativeModule may declare.
// The task-graph builder and pattern matcher size fixed scratch arrays off
// of this constant (spec §3: "Max arguments per module is a small fixed
// constant (≥ 10)").
const MaxArguments = 10

// Argument is one declared parameter of a NativeModule: its flow direction,
// its DataType, and a human-readable role used only in diagnostics (e.g.
// "frequency", "gain") — it has no effect on matching or evaluation.
type Argument struct {
	Qualifier ir.Qualifier
	Type      ir.DataType
	Role      string

	// IsReturn marks this as the native module's single "return" output
	// argument referenced by rule-pattern target builders (spec §3). Only
	// meaningful when Qualifier == QualifierOut; exactly one Argument with
	// Qualifier == QualifierOut must set it.
	IsReturn bool
}

// CompileTimeArg is one slot of a compile-time call's argument list: its
// declared Type plus whichever scalar/array payload applies. Array elements
// are tracked as execution-graph node references rather than recursively
// evaluated values, keeping scalar evaluation allocation-free (spec §9).
type CompileTimeArg struct {
	Type   ir.DataType
	Real   float32
	Bool   bool
	String string
	Array  []ir.NodeIndex
}

// EvalContext carries diagnostic context into an Evaluator call.
type EvalContext struct {
	ModuleID ir.NativeModuleId
}

// Evaluator performs a native module's compile-time computation: it reads
// the input slots of args and fills in the output slots in place, returning
// an error if the call cannot be folded (e.g. a domain error WaveLang
// chooses to defer to runtime). Keeping the signature allocation-free for
// scalars mirrors the original engine's function-pointer-plus-argument-
// vector model (spec §9).
type Evaluator func(ctx EvalContext, args []CompileTimeArg) error

// NativeModule is a single entry in a Registry: a pure function WaveLang's
// compiler knows about, with an optional compile-time Evaluator and zero or
// more runtime overload mappings (resolved separately by package
// taskfunction).
type NativeModule struct {
	UID                   ir.NativeModuleId
	DisplayName           string
	IsCompileTimeCallable bool
	Args                  []Argument
	Eval                  Evaluator
}

// InputCount returns the number of in/constant-qualified arguments.
func (m NativeModule) InputCount() int {
	n := 0
	for _, a := range m.Args {
		if a.Qualifier.IsInput() {
			n++
		}
	}
	return n
}

// OutputCount returns the number of out-qualified arguments.
func (m NativeModule) OutputCount() int {
	n := 0
	for _, a := range m.Args {
		if a.Qualifier == ir.QualifierOut {
			n++
		}
	}
	return n
}

// ReturnArgIndex returns the index into Args of the single output argument
// marked IsReturn, or -1 if none is marked.
func (m NativeModule) ReturnArgIndex() int {
	for i, a := range m.Args {
		if a.Qualifier == ir.QualifierOut && a.IsReturn {
			return i
		}
	}
	return -1
}

// Library is a named, versioned group that native modules are registered
// under (spec §4.2: register_library(id, name, version)).
type Library struct {
	ID           uint32
	Name         string
	VersionMajor uint16
	VersionMinor uint16
}
