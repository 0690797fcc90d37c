package wavelang

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
	"github.com/wavelang/wavelang/optimize"
	"github.com/wavelang/wavelang/taskfunction"
	"github.com/wavelang/wavelang/taskgraph"
)

// Registries bundles the two registries a Compile call needs. Both must
// already be finalized (past their Registering phase) before Compile runs.
type Registries struct {
	NativeModules *nativemodule.Registry
	TaskFunctions *taskfunction.Registry
}

// Compile runs the full offline pipeline: it optimizes graph in place, then
// builds the task graph from the result. It returns the first error
// encountered — optimize's multi-error accumulation still applies within
// the optimize phase itself (spec §7), but Compile as a whole stops at
// the first phase that fails rather than attempting both.
func Compile(graph *ir.ExecutionGraph, regs Registries) (*taskgraph.TaskGraph, error) {
	if err := optimize.Optimize(graph, regs.NativeModules); err != nil {
		return nil, err
	}
	return taskgraph.Build(graph, regs.NativeModules, regs.TaskFunctions)
}
