package optimize

import (
	"errors"
	"fmt"

	"github.com/wavelang/wavelang/ir"
)

// Sentinel errors raised while building an optimization rule's target
// pattern. These indicate a malformed rule (one that failed to pair its
// slots correctly, or names an unregistered module) rather than anything
// wrong with the graph being optimized; a rule this broken simply never
// matches rather than corrupting the graph.
var (
	ErrUnboundCapture        = errors.New("optimize: target references a capture slot the source pattern never bound")
	ErrUnknownModuleInTarget = errors.New("optimize: target references a module uid with no registered definition")
)

// ConstantQualifierViolation reports a Constant-qualified native-module
// argument that did not resolve to a constant node after optimization (spec
// §4.4.6).
type ConstantQualifierViolation struct {
	Module   ir.NativeModuleId
	ArgIndex int
}

func (v ConstantQualifierViolation) Error() string {
	return fmt.Sprintf("optimize: module %s argument %d must resolve to a constant", v.Module, v.ArgIndex)
}
