package optimize

import (
	"errors"

	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// validateConstantQualifiers checks that every live call's Constant-
// qualified input argument resolves to a Constant node, after optimization
// has run to fixpoint (spec §4.4.6). Violations are collected and joined —
// the graph is never mutated by validation.
func validateConstantQualifiers(graph *ir.ExecutionGraph, regs *nativemodule.Registry) error {
	var violations []error

	for i := 0; i < graph.NodeCount(); i++ {
		idx := ir.NodeIndex(i)
		if !graph.IsLive(idx) {
			continue
		}
		kind, err := graph.NodeKind(idx)
		if err != nil || kind != ir.KindNativeModuleCall {
			continue
		}
		uid, err := graph.NativeModuleCallID(idx)
		if err != nil {
			continue
		}
		mod, ok := regs.Lookup(uid)
		if !ok {
			continue
		}

		nextInput := 0
		for argIdx, spec := range mod.Args {
			if !spec.Qualifier.IsInput() {
				continue
			}
			inputSlot := nextInput
			nextInput++
			if spec.Qualifier != ir.QualifierConstant {
				continue
			}

			port, err := graph.InputPort(idx, inputSlot)
			if err != nil {
				continue
			}
			source, err := graph.IncomingEdge(port, 0)
			if err != nil {
				continue
			}
			if srcKind, err := graph.NodeKind(source); err != nil || srcKind != ir.KindConstant {
				violations = append(violations, ConstantQualifierViolation{Module: uid, ArgIndex: argIdx})
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return errors.Join(violations...)
}
