package optimize

import "github.com/wavelang/wavelang/ir"

// sweepDeadNodes removes every live node not transitively reachable,
// through incoming edges, from a graph-Output node (spec §4.4.4). Because
// port↔call relationships are themselves graph edges (a call's incoming
// edges are its input ports; an output port's incoming edge is its owning
// call), a plain backward reachability walk naturally keeps a call and all
// of its ports marked together; ports are never swept on their own —
// RemoveNode cascades them when their owning call goes.
func sweepDeadNodes(graph *ir.ExecutionGraph) {
	count := graph.NodeCount()
	marked := make([]bool, count)

	var pending []ir.NodeIndex
	for i := 0; i < count; i++ {
		idx := ir.NodeIndex(i)
		if !graph.IsLive(idx) {
			continue
		}
		if kind, _ := graph.NodeKind(idx); kind == ir.KindOutput {
			pending = append(pending, idx)
		}
	}

	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if marked[n] {
			continue
		}
		marked[n] = true
		for _, pred := range graph.IncomingEdges(n) {
			if !marked[pred] {
				pending = append(pending, pred)
			}
		}
	}

	for i := 0; i < count; i++ {
		idx := ir.NodeIndex(i)
		if !graph.IsLive(idx) || marked[idx] {
			continue
		}
		kind, _ := graph.NodeKind(idx)
		if kind == ir.KindIndexedInput || kind == ir.KindIndexedOutput {
			continue
		}
		graph.RemoveNode(idx)
	}
}
