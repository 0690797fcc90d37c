package ir

// NodeIndex addresses a node slot in an ExecutionGraph's arena. It is only
// meaningful relative to the graph that produced it and is invalidated by
// that graph's Compact.
type NodeIndex uint32

// InvalidNodeIndex marks an unset/absent node reference.
const InvalidNodeIndex NodeIndex = 1<<32 - 1

// Kind tags which of the five node variants a Node is. The optimizer and
// task-graph builder dispatch on Kind uniformly — see design notes in
// SPEC_FULL.md §9 ("do not hang behavior off each node kind").
type Kind int

const (
	// KindConstant holds an immediate value, or (when its DataType.IsArray)
	// enumerates its elements as incoming edges in order.
	KindConstant Kind = iota

	// KindNativeModuleCall invokes a registered NativeModuleId. Its incoming
	// edges are its IndexedInput ports in argument order; its outgoing edges
	// are its IndexedOutput ports in argument order.
	KindNativeModuleCall

	// KindIndexedInput is argument ArgIndex of call Owner. Exactly one
	// incoming edge (the producing value); its sole outgoing edge returns to
	// Owner.
	KindIndexedInput

	// KindIndexedOutput is argument ArgIndex of call Owner. One incoming
	// edge from Owner; any number of outgoing edges to consumers.
	KindIndexedOutput

	// KindOutput is a graph sink identified by OutputIndex, with exactly one
	// incoming edge.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindNativeModuleCall:
		return "native_module_call"
	case KindIndexedInput:
		return "indexed_input"
	case KindIndexedOutput:
		return "indexed_output"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// UsesIndexedEdges reports whether this node kind addresses its edges by
// position rather than treating them as an unordered producer/consumer set.
// It is true only for KindNativeModuleCall: a Kind alone cannot tell an
// array constant from a scalar one, so array constants report false here
// (ExecutionGraph.DoesNodeUseIndexedInputs covers them).
func (k Kind) UsesIndexedEdges() bool {
	return k == KindNativeModuleCall
}

// Node is a single ExecutionGraph slot. Only the fields relevant to Kind are
// meaningful; this is the tagged sum type called for in SPEC_FULL.md §9,
// flattened for arena storage instead of boxed as an interface.
type Node struct {
	Kind Kind

	// KindConstant
	ConstantType DataType
	Constant     ConstantValue

	// KindNativeModuleCall
	ModuleID NativeModuleId

	// KindIndexedInput, KindIndexedOutput
	Owner    NodeIndex
	ArgIndex int

	// KindOutput
	OutputIndex int

	tombstone bool
	incoming  []NodeIndex
	outgoing  []NodeIndex
}

// IsArrayConstant reports whether this node is a constant whose DataType is
// an array (and therefore whose incoming edges enumerate its elements).
func (n *Node) IsArrayConstant() bool {
	return n.Kind == KindConstant && n.ConstantType.IsArray
}
