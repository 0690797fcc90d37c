package constfold

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// Result is the outcome of evaluating a node at compile time: a scalar
// Real/Bool/String, or — when Type.IsArray — the element node indices of an
// array, tracked by reference rather than recursively evaluated (spec §9).
type Result struct {
	Type   ir.DataType
	Real   float32
	Bool   bool
	String string
	Array  []ir.NodeIndex
}

// Evaluator walks an ExecutionGraph on demand, evaluating nodes bottom-up
// via the native modules' registered compile-time evaluators, and memoizes
// results by node index (spec §4.3). It never mutates the graph.
type Evaluator struct {
	graph   *ir.ExecutionGraph
	modules *nativemodule.Registry
	memo    map[ir.NodeIndex]Result
}

// New returns an Evaluator over graph, resolving compile-time evaluators
// through modules.
func New(graph *ir.ExecutionGraph, modules *nativemodule.Registry) *Evaluator {
	return &Evaluator{graph: graph, modules: modules, memo: make(map[ir.NodeIndex]Result)}
}

// Evaluate returns (result, true) iff node is a constant, or an
// IndexedOutput of a native-module-call whose module has a compile-time
// evaluator, and every transitive input reachable through input ports is
// similarly evaluable. Results are memoized across calls on the same
// Evaluator.
func (e *Evaluator) Evaluate(node ir.NodeIndex) (Result, bool) {
	if r, ok := e.memo[node]; ok {
		return r, true
	}

	pending := []ir.NodeIndex{node}
	invalid := false

	for len(pending) > 0 && !invalid {
		top := pending[len(pending)-1]
		if _, ok := e.memo[top]; ok {
			// Already evaluated (possibly while resolving a sibling input);
			// nothing left to do for this frame.
			pending = pending[:len(pending)-1]
			continue
		}
		if !e.tryEvaluate(top, &pending) {
			invalid = true
		}
	}

	if invalid {
		return Result{}, false
	}
	r, ok := e.memo[node]
	return r, ok
}

// tryEvaluate attempts to evaluate node, memoizing it on success. It returns
// false when node cannot be evaluated: it is not a constant, and either not
// an IndexedOutput of a call, or that call's module lacks a compile-time
// evaluator, or the evaluator returns an error. When some inputs are not yet
// memoized, it pushes them onto pending and returns true so the caller
// revisits node later.
func (e *Evaluator) tryEvaluate(node ir.NodeIndex, pending *[]ir.NodeIndex) bool {
	kind, err := e.graph.NodeKind(node)
	if err != nil {
		return false
	}

	switch kind {
	case ir.KindConstant:
		result, err := e.readConstant(node)
		if err != nil {
			return false
		}
		e.memo[node] = result
		return true

	case ir.KindIndexedOutput:
		return e.tryEvaluateCallOutput(node, pending)

	default:
		// Unreachable by construction: the evaluator is only ever asked to
		// resolve constants or call outputs (spec §4.3).
		return false
	}
}

func (e *Evaluator) readConstant(node ir.NodeIndex) (Result, error) {
	dt, err := e.graph.ConstantDataType(node)
	if err != nil {
		return Result{}, err
	}
	if dt.IsArray {
		elems, err := e.graph.ArrayConstantElements(node)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: dt, Array: elems}, nil
	}

	switch dt.Primitive {
	case ir.PrimitiveReal:
		v, err := e.graph.ConstantRealValue(node)
		return Result{Type: dt, Real: v}, err
	case ir.PrimitiveBool:
		v, err := e.graph.ConstantBoolValue(node)
		return Result{Type: dt, Bool: v}, err
	default:
		v, err := e.graph.ConstantStringValue(node)
		return Result{Type: dt, String: v}, err
	}
}

func (e *Evaluator) tryEvaluateCallOutput(outputPort ir.NodeIndex, pending *[]ir.NodeIndex) bool {
	call, _, err := e.graph.PortOwner(outputPort)
	if err != nil {
		return false
	}
	uid, err := e.graph.NativeModuleCallID(call)
	if err != nil {
		return false
	}
	mod, ok := e.modules.Lookup(uid)
	if !ok || !mod.IsCompileTimeCallable || mod.Eval == nil {
		return false
	}

	args, unresolved, allResolved := e.buildArguments(mod, call)
	if !allResolved {
		for _, need := range unresolved {
			if _, memoized := e.memo[need]; !memoized {
				*pending = append(*pending, need)
			}
		}
		return true
	}

	if err := mod.Eval(nativemodule.EvalContext{ModuleID: uid}, args); err != nil {
		return false
	}

	e.storeCallResults(mod, call, args)
	return true
}

// buildArguments assembles the compile-time argument list for call: input
// slots are filled from already-memoized results, output slots are left
// zero-valued for the evaluator to fill. It returns the source nodes of any
// unresolved inputs and whether every input was resolved.
func (e *Evaluator) buildArguments(mod nativemodule.NativeModule, call ir.NodeIndex) ([]nativemodule.CompileTimeArg, []ir.NodeIndex, bool) {
	args := make([]nativemodule.CompileTimeArg, len(mod.Args))
	var unresolved []ir.NodeIndex
	allResolved := true
	nextInput := 0

	for i, spec := range mod.Args {
		args[i].Type = spec.Type
		if !spec.Qualifier.IsInput() {
			continue
		}

		inputPort, err := e.graph.InputPort(call, nextInput)
		nextInput++
		if err != nil {
			allResolved = false
			continue
		}
		source, err := e.graph.IncomingEdge(inputPort, 0)
		if err != nil {
			allResolved = false
			continue
		}

		if result, ok := e.memo[source]; ok {
			if allResolved {
				applyResult(&args[i], result)
			}
		} else {
			unresolved = append(unresolved, source)
			allResolved = false
		}
	}

	return args, unresolved, allResolved
}

func (e *Evaluator) storeCallResults(mod nativemodule.NativeModule, call ir.NodeIndex, args []nativemodule.CompileTimeArg) {
	nextOutput := 0
	for i, spec := range mod.Args {
		if spec.Qualifier != ir.QualifierOut {
			continue
		}
		outputPort, err := e.graph.OutputPort(call, nextOutput)
		nextOutput++
		if err != nil {
			continue
		}
		e.memo[outputPort] = resultFromArg(args[i])
	}
}

func applyResult(arg *nativemodule.CompileTimeArg, r Result) {
	arg.Type = r.Type
	arg.Real = r.Real
	arg.Bool = r.Bool
	arg.String = r.String
	arg.Array = r.Array
}

func resultFromArg(a nativemodule.CompileTimeArg) Result {
	return Result{Type: a.Type, Real: a.Real, Bool: a.Bool, String: a.String, Array: a.Array}
}
