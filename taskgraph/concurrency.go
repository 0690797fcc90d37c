package taskgraph

import "github.com/wavelang/wavelang/bitmatrix"

// taskConcurrencyPredicate seeds a PredecessorResolver from the already-
// computed direct successor edges and resolves it to a transitive closure,
// returning its Concurrent predicate (spec §4.6.4 points 1–3).
func (b *builder) taskConcurrencyPredicate() func(a, c int) bool {
	resolver := bitmatrix.NewPredecessorResolver(len(b.tasks))
	for i, task := range b.tasks {
		for _, succ := range task.Successors {
			_ = resolver.AddEdge(i, succ) // indices are in range by construction
		}
	}
	resolver.Resolve()
	return resolver.Concurrent
}

// estimateBufferConcurrency builds the buffer-concurrency matrix (spec
// §4.6.4 point 4) and estimates its maximum clique: every task's own
// referenced buffers are mutually concurrent, every pair of buffers
// belonging to a concurrent task pair is marked concurrent, and every
// graph-output buffer is concurrent with every other.
func (b *builder) estimateBufferConcurrency(bufferCount int, taskConcurrent func(a, c int) bool) uint32 {
	if bufferCount == 0 {
		return 0
	}
	m := bitmatrix.NewMatrix(bufferCount)
	markAllPairs := func(buffers []int) {
		for _, x := range buffers {
			for _, y := range buffers {
				if x != y {
					m.Set(x, y)
				}
			}
		}
	}

	taskBuffers := make([][]int, len(b.tasks))
	for i, task := range b.tasks {
		taskBuffers[i] = b.referencedBuffers(task)
		markAllPairs(taskBuffers[i])
	}

	for i := range b.tasks {
		for j := i + 1; j < len(b.tasks); j++ {
			if !taskConcurrent(i, j) {
				continue
			}
			for _, x := range taskBuffers[i] {
				for _, y := range taskBuffers[j] {
					if x != y {
						m.Set(x, y)
						m.Set(y, x)
					}
				}
			}
		}
	}

	var outputBuffers []int
	for _, o := range b.outputs {
		if !o.isConstant {
			outputBuffers = append(outputBuffers, b.nodeToBuffer[o.node])
		}
	}
	markAllPairs(outputBuffers)

	concurrent := func(x, y int) bool {
		if x == y {
			return true
		}
		return m.Get(x, y)
	}
	return bitmatrix.EstimateMaxConcurrency(bufferCount, concurrent)
}

// referencedBuffers returns the distinct buffer indices task's arguments
// touch, across both scalar-buffer args and non-constant array elements.
func (b *builder) referencedBuffers(task Task) []int {
	set := make(map[int]bool)
	for _, arg := range task.Args {
		switch arg.Kind {
		case ArgBuffer:
			set[arg.BufferIndex] = true
		case ArgArray:
			for _, elem := range b.arrays[arg.ArrayIndex] {
				if !elem.IsConstant {
					set[elem.BufferIndex] = true
				}
			}
		}
	}
	buffers := make([]int, 0, len(set))
	for idx := range set {
		buffers = append(buffers, idx)
	}
	return buffers
}
