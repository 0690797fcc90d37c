package ir

// RemoveNode tombstones index. A native-module-call's ports are cascaded:
// each IndexedInput/IndexedOutput port is disconnected and tombstoned along
// with the call itself (spec §4.1: "remove_node (tombstones + cascades port
// removal)"). The tombstoned slot retains no edges and is skipped by
// Compact until renumbering.
func (g *ExecutionGraph) RemoveNode(index NodeIndex) error {
	if g.node(index) == nil {
		return ErrInvalidNode
	}
	g.removeNodeAndPorts(index)
	return nil
}

func (g *ExecutionGraph) removeNodeAndPorts(index NodeIndex) {
	n := g.node(index)
	if n == nil {
		return
	}

	if n.Kind == KindNativeModuleCall {
		ports := make([]NodeIndex, 0, len(n.incoming)+len(n.outgoing))
		ports = append(ports, n.incoming...)
		ports = append(ports, n.outgoing...)
		for _, p := range ports {
			g.removeNodeAndPorts(p)
		}
	}

	g.disconnect(index)
	g.tombstone[index] = true
	g.liveCount--
}

// disconnect removes every edge touching index from its neighbors' adjacency
// lists, tolerating neighbors that are already tombstoned (they may have
// been removed earlier in the same cascade).
func (g *ExecutionGraph) disconnect(index NodeIndex) {
	n := &g.slots[index]
	for _, pred := range n.incoming {
		if predNode := g.node(pred); predNode != nil {
			removeFirst(&predNode.outgoing, index)
		}
	}
	for _, succ := range n.outgoing {
		if succNode := g.node(succ); succNode != nil {
			removeFirst(&succNode.incoming, index)
		}
	}
	n.incoming = nil
	n.outgoing = nil
}

// ConstantDataType returns the DataType of a Constant node.
func (g *ExecutionGraph) ConstantDataType(index NodeIndex) (DataType, error) {
	n := g.node(index)
	if n == nil {
		return DataType{}, ErrInvalidNode
	}
	if n.Kind != KindConstant {
		return DataType{}, ErrWrongNodeKind
	}
	return n.ConstantType, nil
}

// ConstantRealValue returns the real value of a scalar real Constant node.
func (g *ExecutionGraph) ConstantRealValue(index NodeIndex) (float32, error) {
	n := g.node(index)
	if n == nil {
		return 0, ErrInvalidNode
	}
	if n.Kind != KindConstant || n.Constant.Kind != ValueReal {
		return 0, ErrWrongNodeKind
	}
	return n.Constant.Real, nil
}

// ConstantBoolValue returns the bool value of a scalar bool Constant node.
func (g *ExecutionGraph) ConstantBoolValue(index NodeIndex) (bool, error) {
	n := g.node(index)
	if n == nil {
		return false, ErrInvalidNode
	}
	if n.Kind != KindConstant || n.Constant.Kind != ValueBool {
		return false, ErrWrongNodeKind
	}
	return n.Constant.Bool, nil
}

// ConstantStringValue returns the string value of a scalar string Constant
// node.
func (g *ExecutionGraph) ConstantStringValue(index NodeIndex) (string, error) {
	n := g.node(index)
	if n == nil {
		return "", ErrInvalidNode
	}
	if n.Kind != KindConstant || n.Constant.Kind != ValueString {
		return "", ErrWrongNodeKind
	}
	return n.Constant.String, nil
}

// ArrayConstantElements returns the element node indices of an array
// Constant node, in order (its incoming edges, spec §3).
func (g *ExecutionGraph) ArrayConstantElements(index NodeIndex) ([]NodeIndex, error) {
	n := g.node(index)
	if n == nil {
		return nil, ErrInvalidNode
	}
	if !n.IsArrayConstant() {
		return nil, ErrWrongNodeKind
	}
	out := make([]NodeIndex, len(n.incoming))
	copy(out, n.incoming)
	return out, nil
}

// NativeModuleCallID returns the NativeModuleId of a call node.
func (g *ExecutionGraph) NativeModuleCallID(index NodeIndex) (NativeModuleId, error) {
	n := g.node(index)
	if n == nil {
		return NativeModuleId{}, ErrInvalidNode
	}
	if n.Kind != KindNativeModuleCall {
		return NativeModuleId{}, ErrWrongNodeKind
	}
	return n.ModuleID, nil
}

// PortOwner returns the owning call and argument index of an IndexedInput or
// IndexedOutput node.
func (g *ExecutionGraph) PortOwner(index NodeIndex) (call NodeIndex, argIndex int, err error) {
	n := g.node(index)
	if n == nil {
		return InvalidNodeIndex, 0, ErrInvalidNode
	}
	if n.Kind != KindIndexedInput && n.Kind != KindIndexedOutput {
		return InvalidNodeIndex, 0, ErrWrongNodeKind
	}
	return n.Owner, n.ArgIndex, nil
}

// OutputIndex returns the output-index of a KindOutput node.
func (g *ExecutionGraph) OutputIndex(index NodeIndex) (int, error) {
	n := g.node(index)
	if n == nil {
		return 0, ErrInvalidNode
	}
	if n.Kind != KindOutput {
		return 0, ErrWrongNodeKind
	}
	return n.OutputIndex, nil
}
