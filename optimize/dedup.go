package optimize

import "github.com/wavelang/wavelang/ir"

// deduplicate runs the two-stage deduplication pass (spec §4.4.5): merging
// equal-valued scalar constants, then repeatedly merging structurally
// identical calls and array constants until no pair changes.
func deduplicate(graph *ir.ExecutionGraph) {
	dedupConstants(graph)
	dedupStructural(graph)
}

type constKey struct {
	primitive ir.Primitive
	real      float32
	boolean   bool
	str       string
}

// dedupConstants merges all pairs of scalar constant nodes sharing the same
// type and value; array constants are left to dedupStructural (spec §4.4.5
// stage 1).
func dedupConstants(graph *ir.ExecutionGraph) {
	seen := make(map[constKey]ir.NodeIndex)
	for i := 0; i < graph.NodeCount(); i++ {
		idx := ir.NodeIndex(i)
		if !graph.IsLive(idx) {
			continue
		}
		kind, _ := graph.NodeKind(idx)
		if kind != ir.KindConstant {
			continue
		}
		dt, err := graph.ConstantDataType(idx)
		if err != nil || dt.IsArray {
			continue
		}

		key, err := scalarKey(graph, idx, dt)
		if err != nil {
			continue
		}
		if existing, ok := seen[key]; ok {
			graph.RerouteOutgoingEdges(idx, existing)
			graph.RemoveNode(idx)
			continue
		}
		seen[key] = idx
	}
}

func scalarKey(graph *ir.ExecutionGraph, idx ir.NodeIndex, dt ir.DataType) (constKey, error) {
	switch dt.Primitive {
	case ir.PrimitiveReal:
		v, err := graph.ConstantRealValue(idx)
		return constKey{primitive: dt.Primitive, real: v}, err
	case ir.PrimitiveBool:
		v, err := graph.ConstantBoolValue(idx)
		return constKey{primitive: dt.Primitive, boolean: v}, err
	default:
		v, err := graph.ConstantStringValue(idx)
		return constKey{primitive: dt.Primitive, str: v}, err
	}
}

// dedupStructural repeatedly merges live nodes of identical shape — calls
// with the same module uid, or array constants with the same element type
// and arity — whose input sources match pointwise, until a full pass finds
// nothing left to merge (spec §4.4.5 stage 2).
func dedupStructural(graph *ir.ExecutionGraph) {
	for {
		if !dedupStructuralPass(graph) {
			return
		}
	}
}

func dedupStructuralPass(graph *ir.ExecutionGraph) bool {
	changed := false
	count := graph.NodeCount()
	for i := 0; i < count; i++ {
		a := ir.NodeIndex(i)
		if !graph.IsLive(a) {
			continue
		}
		for j := i + 1; j < count; j++ {
			b := ir.NodeIndex(j)
			if !graph.IsLive(b) {
				continue
			}
			if !structurallyEqual(graph, a, b) {
				continue
			}
			mergeDuplicate(graph, a, b)
			changed = true
		}
	}
	return changed
}

func structurallyEqual(graph *ir.ExecutionGraph, a, b ir.NodeIndex) bool {
	kindA, err := graph.NodeKind(a)
	if err != nil {
		return false
	}
	kindB, err := graph.NodeKind(b)
	if err != nil || kindA != kindB {
		return false
	}

	switch kindA {
	case ir.KindNativeModuleCall:
		uidA, _ := graph.NativeModuleCallID(a)
		uidB, _ := graph.NativeModuleCallID(b)
		if uidA != uidB {
			return false
		}
		n := graph.IncomingEdgeCount(a)
		if n != graph.IncomingEdgeCount(b) {
			return false
		}
		for k := 0; k < n; k++ {
			if !inputSourcesMatch(graph, a, b, k) {
				return false
			}
		}
		return true

	case ir.KindConstant:
		dtA, errA := graph.ConstantDataType(a)
		dtB, errB := graph.ConstantDataType(b)
		if errA != nil || errB != nil || !dtA.IsArray || !dtB.IsArray || dtA.Primitive != dtB.Primitive {
			return false
		}
		elemsA, _ := graph.ArrayConstantElements(a)
		elemsB, _ := graph.ArrayConstantElements(b)
		if len(elemsA) != len(elemsB) {
			return false
		}
		for k := range elemsA {
			if elemsA[k] != elemsB[k] {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func inputSourcesMatch(graph *ir.ExecutionGraph, a, b ir.NodeIndex, argIndex int) bool {
	portA, err := graph.InputPort(a, argIndex)
	if err != nil {
		return false
	}
	portB, err := graph.InputPort(b, argIndex)
	if err != nil {
		return false
	}
	srcA, err := graph.IncomingEdge(portA, 0)
	if err != nil {
		return false
	}
	srcB, err := graph.IncomingEdge(portB, 0)
	if err != nil {
		return false
	}
	return srcA == srcB
}

// mergeDuplicate transfers dup's consumers onto keep and removes dup. For
// calls, each output port is rerouted independently by position; for array
// constants the node itself is the value.
func mergeDuplicate(graph *ir.ExecutionGraph, keep, dup ir.NodeIndex) {
	kind, err := graph.NodeKind(keep)
	if err != nil {
		return
	}
	if kind == ir.KindNativeModuleCall {
		n := graph.OutgoingEdgeCount(keep)
		for k := 0; k < n; k++ {
			keepPort, err := graph.OutputPort(keep, k)
			if err != nil {
				continue
			}
			dupPort, err := graph.OutputPort(dup, k)
			if err != nil {
				continue
			}
			graph.RerouteOutgoingEdges(dupPort, keepPort)
		}
		graph.RemoveNode(dup)
		return
	}

	graph.RerouteOutgoingEdges(dup, keep)
	graph.RemoveNode(dup)
}
