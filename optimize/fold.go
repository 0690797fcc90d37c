package optimize

import (
	"github.com/wavelang/wavelang/constfold"
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// foldConstant attempts constant folding on call (spec §4.4.2): if every
// input is compile-time evaluable and the call's module has an evaluator,
// it replaces the call with fresh constant nodes holding the computed
// outputs and removes the call. It reports whether the node was consumed.
func foldConstant(graph *ir.ExecutionGraph, regs *nativemodule.Registry, call ir.NodeIndex) bool {
	uid, err := graph.NativeModuleCallID(call)
	if err != nil {
		return false
	}
	mod, ok := regs.Lookup(uid)
	if !ok || !mod.IsCompileTimeCallable || mod.Eval == nil {
		return false
	}

	evaluator := constfold.New(graph, regs)
	args := make([]nativemodule.CompileTimeArg, len(mod.Args))
	nextInput := 0
	for i, spec := range mod.Args {
		args[i].Type = spec.Type
		if !spec.Qualifier.IsInput() {
			continue
		}
		port, err := graph.InputPort(call, nextInput)
		nextInput++
		if err != nil {
			return false
		}
		source, err := graph.IncomingEdge(port, 0)
		if err != nil {
			return false
		}
		result, evaluable := evaluator.Evaluate(source)
		if !evaluable {
			return false
		}
		args[i].Real = result.Real
		args[i].Bool = result.Bool
		args[i].String = result.String
		args[i].Array = result.Array
	}

	if err := mod.Eval(nativemodule.EvalContext{ModuleID: uid}, args); err != nil {
		return false
	}

	nextOutput := 0
	for i, spec := range mod.Args {
		if spec.Qualifier != ir.QualifierOut {
			continue
		}
		outputPort, err := graph.OutputPort(call, nextOutput)
		nextOutput++
		if err != nil {
			return false
		}
		constNode, err := createConstant(graph, args[i])
		if err != nil {
			return false
		}
		if err := graph.RerouteOutgoingEdges(outputPort, constNode); err != nil {
			return false
		}
	}

	graph.RemoveNode(call)
	return true
}

// createConstant materializes a CompileTimeArg's payload as a new constant
// node: scalars directly, arrays by wiring the already-existing element
// nodes referenced in arg.Array (spec §4.4.2: "arrays get their element
// edges wired to the computed element node indices").
func createConstant(graph *ir.ExecutionGraph, arg nativemodule.CompileTimeArg) (ir.NodeIndex, error) {
	if arg.Type.IsArray {
		return graph.CreateArrayConstant(arg.Type.Primitive, arg.Array)
	}
	switch arg.Type.Primitive {
	case ir.PrimitiveReal:
		return graph.CreateRealConstant(arg.Real), nil
	case ir.PrimitiveBool:
		return graph.CreateBoolConstant(arg.Bool), nil
	default:
		return graph.CreateStringConstant(arg.String), nil
	}
}
