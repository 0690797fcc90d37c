package taskgraph

import (
	"github.com/wavelang/wavelang/bitmatrix"
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
	"github.com/wavelang/wavelang/taskfunction"
)

// builder accumulates state across Build's phases: task selection, buffer
// allocation, successor wiring, and concurrency estimation. It is
// single-use and discarded after Build returns (spec §5: the builder has
// no persistent state of its own).
type builder struct {
	graph         *ir.ExecutionGraph
	nativeModules *nativemodule.Registry
	taskFunctions *taskfunction.Registry

	tasks       []Task
	taskByCall  map[ir.NodeIndex]int
	callForTask []ir.NodeIndex

	strings   []string
	stringIdx map[string]int

	arrays   [][]ArrayElement
	arrayIdx map[string]int

	uf                *bufferUnionFind
	pendingArgs       []argRef
	pendingArrayElems []arrayElemRef
	nodeToBuffer      map[ir.NodeIndex]int

	outputs []pendingOutput
}

// pendingOutput defers a graph-Output's buffer resolution the same way
// argRef does for task arguments.
type pendingOutput struct {
	isConstant bool
	constant   ir.ConstantValue
	node       ir.NodeIndex // valid when !isConstant
}

// Build runs the full task-graph construction pipeline over graph (spec
// §4.6): per-call task selection (§4.6.1), buffer allocation (§4.6.2),
// successor edges and the initial-task frontier (§4.6.3), and concurrency
// estimates (§4.6.4/§4.6.5). graph should already be optimized and
// compacted; Build does not mutate it.
//
// On any error the returned TaskGraph is nil — there is no partially built
// result to inspect (spec §7: "the task-graph builder ... clears its
// output" on failure).
func Build(graph *ir.ExecutionGraph, nativeModules *nativemodule.Registry, taskFunctions *taskfunction.Registry) (*TaskGraph, error) {
	b := &builder{
		graph:         graph,
		nativeModules: nativeModules,
		taskFunctions: taskFunctions,
		taskByCall:    make(map[ir.NodeIndex]int),
		stringIdx:     make(map[string]int),
		arrayIdx:      make(map[string]int),
		uf:            newBufferUnionFind(),
	}

	if err := b.selectTasks(); err != nil {
		return nil, err
	}
	if err := b.collectOutputs(); err != nil {
		return nil, err
	}

	buffers := b.resolveBuffers()
	b.wireSuccessorsAndInitialTasks()

	taskConcurrent := b.taskConcurrencyPredicate()
	maxConcurrentTasks := bitmatrix.EstimateMaxConcurrency(len(b.tasks), taskConcurrent)
	maxConcurrentBuffers := b.estimateBufferConcurrency(len(buffers), taskConcurrent)
	b.countBufferUses(buffers)

	return &TaskGraph{
		Tasks:                b.tasks,
		Buffers:              buffers,
		Outputs:              b.finalizeOutputs(),
		Strings:              b.strings,
		Arrays:               b.arrays,
		InitialTasks:         b.initialTasks(),
		MaxConcurrentTasks:   maxConcurrentTasks,
		MaxConcurrentBuffers: maxConcurrentBuffers,
	}, nil
}
