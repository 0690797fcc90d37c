package taskgraph

// resolveBuffers assigns a dense buffer index to every node the union-find
// tracked, backfills every deferred task-argument and array-element slot,
// and records the node→buffer map for finalizeOutputs/countBufferUses.
func (b *builder) resolveBuffers() []Buffer {
	nodeToBuffer, buffers := b.uf.assignBuffers()
	b.nodeToBuffer = nodeToBuffer

	for _, ref := range b.pendingArgs {
		b.tasks[ref.taskIdx].Args[ref.argIdx].BufferIndex = nodeToBuffer[ref.node]
	}
	for _, ref := range b.pendingArrayElems {
		b.arrays[ref.arrayIdx][ref.elemIdx].BufferIndex = nodeToBuffer[ref.node]
	}
	return buffers
}
