package taskgraph

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/taskfunction"
)

// wireSuccessorsAndInitialTasks fills each task's Successors and the
// downstream tasks' PredecessorCount (spec §4.6.3). Must run after
// selectTasks has populated b.callForTask.
func (b *builder) wireSuccessorsAndInitialTasks() {
	for taskIdx, call := range b.callForTask {
		successors := b.successorTasksOf(call)
		b.tasks[taskIdx].Successors = successors
		for _, succ := range successors {
			b.tasks[succ].PredecessorCount++
		}
	}
}

// successorTasksOf walks call's output ports to find every distinct
// downstream task (spec §4.6.3: "hop call → output-port → input-port of a
// consumer call (skip array-constant hops)").
func (b *builder) successorTasksOf(call ir.NodeIndex) []int {
	seen := make(map[int]bool)
	var result []int
	for _, port := range b.graph.OutgoingEdges(call) {
		b.collectSuccessors(port, seen, &result)
	}
	return result
}

func (b *builder) collectSuccessors(node ir.NodeIndex, seen map[int]bool, result *[]int) {
	for _, next := range b.graph.OutgoingEdges(node) {
		kind, err := b.graph.NodeKind(next)
		if err != nil {
			continue
		}
		switch kind {
		case ir.KindIndexedInput:
			owner, _, err := b.graph.PortOwner(next)
			if err != nil {
				continue
			}
			taskIdx, ok := b.taskByCall[owner]
			if ok && !seen[taskIdx] {
				seen[taskIdx] = true
				*result = append(*result, taskIdx)
			}
		case ir.KindConstant:
			// An array-constant element hop: keep walking to the array's
			// own consumers instead of treating the array node as a task.
			b.collectSuccessors(next, seen, result)
		}
	}
}

// initialTasks returns the tasks with no buffer-valued input argument
// (constants and empty arrays don't count) — the runtime's starting
// frontier (spec §4.6.3).
func (b *builder) initialTasks() []int {
	var initial []int
	for i, task := range b.tasks {
		tf, ok := b.taskFunctions.TaskFunctionByUID(task.TaskFuncUID)
		if !ok {
			continue
		}
		if !b.hasBufferInput(task, tf.Args) {
			initial = append(initial, i)
		}
	}
	return initial
}

func (b *builder) hasBufferInput(task Task, tfArgs []taskfunction.TaskArgument) bool {
	for argIdx, arg := range task.Args {
		if tfArgs[argIdx].Direction == taskfunction.DirOut {
			continue
		}
		switch arg.Kind {
		case ArgBuffer:
			return true
		case ArgArray:
			for _, elem := range b.arrays[arg.ArrayIndex] {
				if !elem.IsConstant {
					return true
				}
			}
		}
	}
	return false
}
