package taskgraph

import (
	"errors"
	"fmt"

	"github.com/wavelang/wavelang/ir"
)

// ErrNoTaskMapping is the sentinel wrapped by NoTaskMappingError; branch on
// it with errors.Is when the offending node/module identity is not needed.
var ErrNoTaskMapping = errors.New("taskgraph: no task-function mapping matches this call's input shape")

// NoTaskMappingError reports a native-module-call node for which
// PickMapping found no compatible task-function mapping (spec §7
// "NoTaskMapping"). It carries the offending module and node identity so
// the message can name them, per §7's "human-readable message identifying
// the offending module or node by name".
type NoTaskMappingError struct {
	Module ir.NativeModuleId
	Node   ir.NodeIndex
}

func (e *NoTaskMappingError) Error() string {
	return fmt.Sprintf("taskgraph: no task mapping for module %s at node %d", e.Module, e.Node)
}

func (e *NoTaskMappingError) Unwrap() error { return ErrNoTaskMapping }

// ErrUnregisteredModule indicates a call node's ModuleID has no entry in
// the native-module registry passed to Build. This should never happen
// against a registry that produced the graph's own calls; it guards
// against a caller mismatching graph and registries.
var ErrUnregisteredModule = errors.New("taskgraph: call node references an unregistered native module")

// ErrMalformedGraph indicates Build encountered a graph shape the spec
// treats as impossible after optimization — e.g. a scalar-typed argument
// whose producing node is an array constant. It is a programmer/optimizer
// bug, not a user-facing build failure.
var ErrMalformedGraph = errors.New("taskgraph: execution graph violates a post-optimization shape invariant")
