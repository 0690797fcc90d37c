package ir

// rawConnect appends the from→to edge without invariant checks. Used only by
// internal constructors (CreateNativeModuleCall) that build a topology known
// to be valid by construction.
func (g *ExecutionGraph) rawConnect(from, to NodeIndex) {
	g.slots[from].outgoing = append(g.slots[from].outgoing, to)
	g.slots[to].incoming = append(g.slots[to].incoming, from)
}

// AddEdge wires a directed value→consumer edge from from to to, enforcing
// the invariants from spec §3/§4.1:
//   - both endpoints must be live;
//   - IndexedInput and Output accept at most one incoming edge;
//   - scalar Constant nodes accept no incoming edges (only array constants
//     do, enumerating elements in order).
func (g *ExecutionGraph) AddEdge(from, to NodeIndex) error {
	fromNode := g.node(from)
	toNode := g.node(to)
	if fromNode == nil || toNode == nil {
		return ErrInvalidNode
	}

	switch toNode.Kind {
	case KindIndexedInput, KindOutput:
		if len(toNode.incoming) > 0 {
			return ErrPortFull
		}
	case KindConstant:
		if !toNode.IsArrayConstant() {
			return ErrConstantHasNoInputs
		}
	case KindIndexedOutput:
		if len(toNode.incoming) > 0 {
			return ErrPortFull
		}
	}

	g.rawConnect(from, to)
	return nil
}

// RemoveEdge deletes the first from→to edge found. Returns ErrEdgeNotFound
// if no such edge exists.
func (g *ExecutionGraph) RemoveEdge(from, to NodeIndex) error {
	fromNode := g.node(from)
	toNode := g.node(to)
	if fromNode == nil || toNode == nil {
		return ErrInvalidNode
	}

	if !removeFirst(&fromNode.outgoing, to) {
		return ErrEdgeNotFound
	}
	if !removeFirst(&toNode.incoming, from) {
		return ErrEdgeNotFound
	}
	return nil
}

func removeFirst(list *[]NodeIndex, value NodeIndex) bool {
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// IncomingEdgeCount returns the number of incoming edges on index.
func (g *ExecutionGraph) IncomingEdgeCount(index NodeIndex) int {
	n := g.node(index)
	if n == nil {
		return 0
	}
	return len(n.incoming)
}

// OutgoingEdgeCount returns the number of outgoing edges on index.
func (g *ExecutionGraph) OutgoingEdgeCount(index NodeIndex) int {
	n := g.node(index)
	if n == nil {
		return 0
	}
	return len(n.outgoing)
}

// IncomingEdge returns the i-th incoming edge source of index.
func (g *ExecutionGraph) IncomingEdge(index NodeIndex, i int) (NodeIndex, error) {
	n := g.node(index)
	if n == nil {
		return InvalidNodeIndex, ErrInvalidNode
	}
	if i < 0 || i >= len(n.incoming) {
		return InvalidNodeIndex, ErrArgIndexOutOfRange
	}
	return n.incoming[i], nil
}

// OutgoingEdge returns the i-th outgoing edge destination of index.
func (g *ExecutionGraph) OutgoingEdge(index NodeIndex, i int) (NodeIndex, error) {
	n := g.node(index)
	if n == nil {
		return InvalidNodeIndex, ErrInvalidNode
	}
	if i < 0 || i >= len(n.outgoing) {
		return InvalidNodeIndex, ErrArgIndexOutOfRange
	}
	return n.outgoing[i], nil
}

// IncomingEdges returns a copy of index's incoming edge list.
func (g *ExecutionGraph) IncomingEdges(index NodeIndex) []NodeIndex {
	n := g.node(index)
	if n == nil {
		return nil
	}
	out := make([]NodeIndex, len(n.incoming))
	copy(out, n.incoming)
	return out
}

// OutgoingEdges returns a copy of index's outgoing edge list.
func (g *ExecutionGraph) OutgoingEdges(index NodeIndex) []NodeIndex {
	n := g.node(index)
	if n == nil {
		return nil
	}
	out := make([]NodeIndex, len(n.outgoing))
	copy(out, n.outgoing)
	return out
}

// RerouteOutgoingEdges moves every outgoing edge of from onto to: for each
// consumer c of from, removes from→c and adds to→c. Used by constant folding
// and dedup to redirect all consumers of a replaced node in one step (spec
// §4.4.2, §4.4.5).
func (g *ExecutionGraph) RerouteOutgoingEdges(from, to NodeIndex) error {
	fromNode := g.node(from)
	if fromNode == nil {
		return ErrInvalidNode
	}
	consumers := append([]NodeIndex(nil), fromNode.outgoing...)
	for _, c := range consumers {
		if err := g.RemoveEdge(from, c); err != nil {
			return err
		}
		if err := g.AddEdge(to, c); err != nil {
			return err
		}
	}
	return nil
}
