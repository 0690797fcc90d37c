package taskgraph

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
	"github.com/wavelang/wavelang/taskfunction"
)

// argRef defers a TaskArg's BufferIndex until buffer allocation resolves
// node to a concrete index (spec §4.6.1 point 3 / §4.6.2).
type argRef struct {
	taskIdx int
	argIdx  int
	node    ir.NodeIndex
}

// arrayElemRef defers one array-arena element's BufferIndex the same way.
type arrayElemRef struct {
	arrayIdx int
	elemIdx  int
	node     ir.NodeIndex
}

// selectTasks walks every live native-module-call node in index order,
// picks its task-function mapping, and builds its Task (spec §4.6.1). It
// populates b.pendingArgs/b.pendingArrayElems with buffer resolutions to
// finish after resolveBuffers runs.
func (b *builder) selectTasks() error {
	for i := 0; i < b.graph.NodeCount(); i++ {
		node := ir.NodeIndex(i)
		kind, err := b.graph.NodeKind(node)
		if err != nil {
			continue // tombstoned slot; Build operates on a compacted graph but tolerates stragglers
		}
		if kind != ir.KindNativeModuleCall {
			continue
		}
		if err := b.buildTask(node); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) buildTask(call ir.NodeIndex) error {
	moduleID, err := b.graph.NativeModuleCallID(call)
	if err != nil {
		return err
	}
	mod, ok := b.nativeModules.Lookup(moduleID)
	if !ok {
		return ErrUnregisteredModule
	}

	shapes := make([]taskfunction.Shape, len(mod.Args))
	producers := make([]ir.NodeIndex, len(mod.Args))

	nextInput := 0
	for i, arg := range mod.Args {
		if !arg.Qualifier.IsInput() {
			shapes[i] = taskfunction.ShapeNone
			continue
		}
		port, err := b.graph.InputPort(call, nextInput)
		nextInput++
		if err != nil {
			return ErrMalformedGraph
		}
		shape, producer, err := inputShape(b.graph, port)
		if err != nil {
			return err
		}
		shapes[i] = shape
		producers[i] = producer
	}

	mapping, ok := b.taskFunctions.PickMapping(moduleID, shapes)
	if !ok {
		return &NoTaskMappingError{Module: moduleID, Node: call}
	}
	tf, ok := b.taskFunctions.TaskFunctionByUID(mapping.TaskFuncUID)
	if !ok {
		return ErrUnregisteredModule
	}

	taskIdx := len(b.tasks)
	b.tasks = append(b.tasks, Task{
		ModuleID:    moduleID,
		TaskFuncUID: mapping.TaskFuncUID,
		Args:        make([]TaskArg, len(tf.Args)),
	})
	b.taskByCall[call] = taskIdx
	b.callForTask = append(b.callForTask, call)

	inoutPairs := make(map[int][2]int) // task-func arg index -> [inModIdx, outModIdx], -1 if unset
	nextOutput := 0

	for i, arg := range mod.Args {
		taskArgIdx := mapping.ArgIndex[i]

		if arg.Qualifier == ir.QualifierOut {
			port, err := b.graph.OutputPort(call, nextOutput)
			nextOutput++
			if err != nil {
				return ErrMalformedGraph
			}
			if taskArgIdx < 0 {
				continue
			}
			pair := inoutPairs[taskArgIdx]
			pair[1] = i
			inoutPairs[taskArgIdx] = pair
			b.registerBufferArg(taskIdx, taskArgIdx, port)
			continue
		}

		if taskArgIdx < 0 {
			continue
		}
		pair := inoutPairs[taskArgIdx]
		pair[0] = i
		inoutPairs[taskArgIdx] = pair

		if err := b.fillInputArg(taskIdx, taskArgIdx, arg, producers[i]); err != nil {
			return err
		}
	}

	for taskArgIdx := range inoutPairs {
		if tf.Args[taskArgIdx].Direction != taskfunction.DirInOut {
			continue
		}
		pair := inoutPairs[taskArgIdx]
		inPort, err := b.graph.InputPort(call, inputPortIndex(mod, pair[0]))
		if err != nil {
			return ErrMalformedGraph
		}
		inProducer, err := b.graph.IncomingEdge(inPort, 0)
		if err != nil {
			return ErrMalformedGraph
		}
		outPort, err := b.graph.OutputPort(call, outputPortIndex(mod, pair[1]))
		if err != nil {
			return ErrMalformedGraph
		}
		b.uf.union(inProducer, outPort)
	}

	return nil
}

// inputPortIndex returns the input-port position of mod.Args[i] among only
// its input/constant-qualified siblings.
func inputPortIndex(mod nativemodule.NativeModule, i int) int {
	count := 0
	for j := 0; j < i; j++ {
		if mod.Args[j].Qualifier.IsInput() {
			count++
		}
	}
	return count
}

// outputPortIndex returns the output-port position of mod.Args[i] among
// only its out-qualified siblings.
func outputPortIndex(mod nativemodule.NativeModule, i int) int {
	count := 0
	for j := 0; j < i; j++ {
		if mod.Args[j].Qualifier == ir.QualifierOut {
			count++
		}
	}
	return count
}

// fillInputArg resolves one non-output module argument into its TaskArg
// slot (spec §4.6.1 point 3): a constant scalar inlines immediately, a
// constant array interns its elements, and a non-constant value (scalar or
// array-element) defers to buffer allocation.
func (b *builder) fillInputArg(taskIdx, taskArgIdx int, arg nativemodule.Argument, producer ir.NodeIndex) error {
	if arg.Type.IsArray {
		idx, err := b.internArray(producer)
		if err != nil {
			return err
		}
		b.tasks[taskIdx].Args[taskArgIdx] = TaskArg{Kind: ArgArray, ArrayIndex: idx}
		return nil
	}

	kind, err := b.graph.NodeKind(producer)
	if err != nil {
		return ErrMalformedGraph
	}
	if kind != ir.KindConstant {
		b.registerBufferArg(taskIdx, taskArgIdx, producer)
		return nil
	}

	value, err := readScalarConstant(b.graph, producer)
	if err != nil {
		return err
	}
	switch value.Kind {
	case ir.ValueReal:
		b.tasks[taskIdx].Args[taskArgIdx] = TaskArg{Kind: ArgImmediateReal, ImmediateReal: value.Real}
	case ir.ValueBool:
		b.tasks[taskIdx].Args[taskArgIdx] = TaskArg{Kind: ArgImmediateBool, ImmediateBool: value.Bool}
	case ir.ValueString:
		b.tasks[taskIdx].Args[taskArgIdx] = TaskArg{Kind: ArgImmediateString, StringIndex: b.internString(value.String)}
	default:
		return ErrMalformedGraph
	}
	return nil
}

// registerBufferArg records a deferred buffer-index resolution for one
// task argument slot and marks node as buffer-allocatable.
func (b *builder) registerBufferArg(taskIdx, argIdx int, node ir.NodeIndex) {
	b.tasks[taskIdx].Args[argIdx] = TaskArg{Kind: ArgBuffer}
	b.uf.register(node)
	b.pendingArgs = append(b.pendingArgs, argRef{taskIdx: taskIdx, argIdx: argIdx, node: node})
}

func readScalarConstant(graph *ir.ExecutionGraph, node ir.NodeIndex) (ir.ConstantValue, error) {
	dt, err := graph.ConstantDataType(node)
	if err != nil {
		return ir.ConstantValue{}, ErrMalformedGraph
	}
	switch dt.Primitive {
	case ir.PrimitiveReal:
		v, err := graph.ConstantRealValue(node)
		if err != nil {
			return ir.ConstantValue{}, ErrMalformedGraph
		}
		return ir.RealValue(v), nil
	case ir.PrimitiveBool:
		v, err := graph.ConstantBoolValue(node)
		if err != nil {
			return ir.ConstantValue{}, ErrMalformedGraph
		}
		return ir.BoolValue(v), nil
	default:
		v, err := graph.ConstantStringValue(node)
		if err != nil {
			return ir.ConstantValue{}, ErrMalformedGraph
		}
		return ir.StringValue(v), nil
	}
}
