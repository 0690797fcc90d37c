package ir

// ExecutionGraph is the compiler's intermediate representation: a directed
// acyclic multigraph of Constant, NativeModuleCall, IndexedInput,
// IndexedOutput and Output nodes (spec §3). Nodes live in a dense arena;
// removal tombstones a slot until Compact renumbers everything.
type ExecutionGraph struct {
	slots     []Node
	tombstone []bool
	liveCount int
}

// NewExecutionGraph returns an empty graph ready for node creation.
func NewExecutionGraph() *ExecutionGraph {
	return &ExecutionGraph{}
}

// NodeCount returns the arena length, including tombstoned slots. Callers
// iterating the raw arena must check IsLive.
func (g *ExecutionGraph) NodeCount() int { return len(g.slots) }

// LiveNodeCount returns the number of non-tombstoned nodes.
func (g *ExecutionGraph) LiveNodeCount() int { return g.liveCount }

// IsLive reports whether index is in range and not tombstoned.
func (g *ExecutionGraph) IsLive(index NodeIndex) bool {
	i := int(index)
	return i >= 0 && i < len(g.slots) && !g.tombstone[i]
}

func (g *ExecutionGraph) push(n Node) NodeIndex {
	idx := NodeIndex(len(g.slots))
	g.slots = append(g.slots, n)
	g.tombstone = append(g.tombstone, false)
	g.liveCount++
	return idx
}

// node returns a pointer to the live slot at index, or nil.
func (g *ExecutionGraph) node(index NodeIndex) *Node {
	if !g.IsLive(index) {
		return nil
	}
	return &g.slots[index]
}

// NodeKind returns the Kind of a live node.
func (g *ExecutionGraph) NodeKind(index NodeIndex) (Kind, error) {
	n := g.node(index)
	if n == nil {
		return 0, ErrInvalidNode
	}
	return n.Kind, nil
}

// DoesNodeUseIndexedInputs reports whether index's incoming edges are
// addressed by position: true for native-module calls and for array
// constants (spec §4.1).
func (g *ExecutionGraph) DoesNodeUseIndexedInputs(index NodeIndex) bool {
	n := g.node(index)
	if n == nil {
		return false
	}
	return n.Kind == KindNativeModuleCall || n.IsArrayConstant()
}

// DoesNodeUseIndexedOutputs reports whether index's outgoing edges are
// addressed by position: true only for native-module calls, whose outgoing
// edges are IndexedOutput ports in argument order.
func (g *ExecutionGraph) DoesNodeUseIndexedOutputs(index NodeIndex) bool {
	n := g.node(index)
	return n != nil && n.Kind == KindNativeModuleCall
}

// --- Constant node creation --------------------------------------------

// CreateRealConstant creates a scalar real constant node.
func (g *ExecutionGraph) CreateRealConstant(value float32) NodeIndex {
	return g.push(Node{Kind: KindConstant, ConstantType: Scalar(PrimitiveReal), Constant: RealValue(value)})
}

// CreateBoolConstant creates a scalar bool constant node.
func (g *ExecutionGraph) CreateBoolConstant(value bool) NodeIndex {
	return g.push(Node{Kind: KindConstant, ConstantType: Scalar(PrimitiveBool), Constant: BoolValue(value)})
}

// CreateStringConstant creates a scalar string constant node.
func (g *ExecutionGraph) CreateStringConstant(value string) NodeIndex {
	return g.push(Node{Kind: KindConstant, ConstantType: Scalar(PrimitiveString), Constant: StringValue(value)})
}

// CreateArrayConstant creates an array constant node of the given element
// primitive and wires elements (in order) as its incoming edges. elements
// must already exist in the graph; each is added via AddEdge.
func (g *ExecutionGraph) CreateArrayConstant(elementPrimitive Primitive, elements []NodeIndex) (NodeIndex, error) {
	idx := g.push(Node{Kind: KindConstant, ConstantType: Array(elementPrimitive), Constant: ArrayValue()})
	for _, e := range elements {
		if err := g.AddEdge(e, idx); err != nil {
			return InvalidNodeIndex, err
		}
	}
	return idx, nil
}

// --- Native module call + port creation ---------------------------------

// CreateNativeModuleCall creates a call node for uid along with inputCount
// IndexedInput ports and outputCount IndexedOutput ports, wiring the
// port↔call edges automatically (spec §4.1: "auto-creates input/output
// ports from the module signature"). Callers then wire real values into the
// returned input ports and consumers out of the output ports via AddEdge.
func (g *ExecutionGraph) CreateNativeModuleCall(uid NativeModuleId, inputCount, outputCount int) NodeIndex {
	call := g.push(Node{Kind: KindNativeModuleCall, ModuleID: uid})

	for i := 0; i < inputCount; i++ {
		port := g.push(Node{Kind: KindIndexedInput, Owner: call, ArgIndex: i})
		// port -> call: the port is the value source the call consumes.
		g.rawConnect(port, call)
	}
	for i := 0; i < outputCount; i++ {
		port := g.push(Node{Kind: KindIndexedOutput, Owner: call, ArgIndex: i})
		// call -> port: the call produces, the port is consumed downstream.
		g.rawConnect(call, port)
	}
	return call
}

// CreateOutput creates a graph-output sink with the given output index. The
// caller must still wire its single incoming edge via AddEdge.
func (g *ExecutionGraph) CreateOutput(outputIndex int) NodeIndex {
	return g.push(Node{Kind: KindOutput, OutputIndex: outputIndex})
}

// InputPort returns the IndexedInput node for call's argIndex-th argument.
func (g *ExecutionGraph) InputPort(call NodeIndex, argIndex int) (NodeIndex, error) {
	n := g.node(call)
	if n == nil || n.Kind != KindNativeModuleCall {
		return InvalidNodeIndex, ErrWrongNodeKind
	}
	if argIndex < 0 || argIndex >= len(n.incoming) {
		return InvalidNodeIndex, ErrArgIndexOutOfRange
	}
	return n.incoming[argIndex], nil
}

// OutputPort returns the IndexedOutput node for call's argIndex-th output.
func (g *ExecutionGraph) OutputPort(call NodeIndex, argIndex int) (NodeIndex, error) {
	n := g.node(call)
	if n == nil || n.Kind != KindNativeModuleCall {
		return InvalidNodeIndex, ErrWrongNodeKind
	}
	if argIndex < 0 || argIndex >= len(n.outgoing) {
		return InvalidNodeIndex, ErrArgIndexOutOfRange
	}
	return n.outgoing[argIndex], nil
}
