package ir

// Compact renumbers live nodes densely starting at index 0, in their
// current relative order, and rewrites every stored index (edges and port
// ownership) to match. Tombstoned slots are discarded. Any NodeIndex held
// by a caller from before Compact is invalidated; the graph must be
// re-queried afterward (spec §4.1, §3 "Lifecycles").
func (g *ExecutionGraph) Compact() {
	mapping := make([]NodeIndex, len(g.slots))
	newSlots := make([]Node, 0, g.liveCount)
	newTombstone := make([]bool, 0, g.liveCount)

	for i := range g.slots {
		if g.tombstone[i] {
			mapping[i] = InvalidNodeIndex
			continue
		}
		mapping[i] = NodeIndex(len(newSlots))
		newSlots = append(newSlots, g.slots[i])
		newTombstone = append(newTombstone, false)
	}

	for i := range newSlots {
		n := &newSlots[i]
		for j, e := range n.incoming {
			n.incoming[j] = mapping[e]
		}
		for j, e := range n.outgoing {
			n.outgoing[j] = mapping[e]
		}
		if n.Kind == KindIndexedInput || n.Kind == KindIndexedOutput {
			n.Owner = mapping[n.Owner]
		}
	}

	g.slots = newSlots
	g.tombstone = newTombstone
}
