package optimize

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// Optimize normalizes graph in place: it repeats constant folding, rule
// rewriting and a dead-node sweep to fixpoint, then compacts, deduplicates,
// compacts again, and validates constant-qualified arguments (spec §4.4.1).
// On success the graph is normalized and compacted. Errors returned are the
// joined set of ConstantQualifierViolation values; the graph is left in its
// optimized (not rolled back) state regardless, matching the library's
// "graph in, normalized graph or errors out" contract — callers that want
// all-or-nothing semantics should optimize a clone.
func Optimize(graph *ir.ExecutionGraph, regs *nativemodule.Registry) error {
	for {
		changed := false
		count := graph.NodeCount()
		for i := 0; i < count; i++ {
			idx := ir.NodeIndex(i)
			if !graph.IsLive(idx) {
				continue
			}
			kind, err := graph.NodeKind(idx)
			if err != nil || kind != ir.KindNativeModuleCall {
				continue
			}
			if optimizeNode(graph, regs, idx) {
				changed = true
			}
		}
		sweepDeadNodes(graph)
		if !changed {
			break
		}
	}

	graph.Compact()
	deduplicate(graph)
	graph.Compact()

	return validateConstantQualifiers(graph, regs)
}

// optimizeNode is a no-op unless n is still a live native-module-call after
// folding: constant folding is tried first, then each registered rule in
// order (spec §4.4.1).
func optimizeNode(graph *ir.ExecutionGraph, regs *nativemodule.Registry, n ir.NodeIndex) bool {
	if foldConstant(graph, regs, n) {
		return true
	}
	return tryApplyRules(graph, regs, n)
}
