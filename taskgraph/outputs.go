package taskgraph

import (
	"sort"

	"github.com/wavelang/wavelang/ir"
)

// collectOutputs gathers every live graph-Output node in output-index order
// (spec §4.6.2: "Graph-Output nodes become entries in the task graph's
// output list, in output-index order"). A constant-fed output is recorded
// immediate; a buffer-fed one registers its producer for buffer allocation.
func (b *builder) collectOutputs() error {
	type found struct {
		index int
		node  ir.NodeIndex
	}
	var sinks []found

	for i := 0; i < b.graph.NodeCount(); i++ {
		node := ir.NodeIndex(i)
		kind, err := b.graph.NodeKind(node)
		if err != nil || kind != ir.KindOutput {
			continue
		}
		outIdx, err := b.graph.OutputIndex(node)
		if err != nil {
			return ErrMalformedGraph
		}
		sinks = append(sinks, found{index: outIdx, node: node})
	}
	sort.Slice(sinks, func(i, j int) bool { return sinks[i].index < sinks[j].index })

	for _, s := range sinks {
		producer, err := b.graph.IncomingEdge(s.node, 0)
		if err != nil {
			return ErrMalformedGraph
		}
		kind, err := b.graph.NodeKind(producer)
		if err != nil {
			return ErrMalformedGraph
		}
		if kind == ir.KindConstant {
			value, err := readScalarConstant(b.graph, producer)
			if err != nil {
				return err
			}
			b.outputs = append(b.outputs, pendingOutput{isConstant: true, constant: value})
			continue
		}
		b.uf.register(producer)
		b.outputs = append(b.outputs, pendingOutput{node: producer})
	}
	return nil
}

// finalizeOutputs resolves each pending output's buffer index, valid only
// after resolveBuffers has populated b.nodeToBuffer.
func (b *builder) finalizeOutputs() []OutputRef {
	refs := make([]OutputRef, len(b.outputs))
	for i, o := range b.outputs {
		if o.isConstant {
			refs[i] = OutputRef{IsConstant: true, Constant: o.constant}
			continue
		}
		refs[i] = OutputRef{BufferIndex: b.nodeToBuffer[o.node]}
	}
	return refs
}

// countBufferUses tallies task-argument and graph-output references to
// each buffer (spec §4.6.5), mutating buffers in place.
func (b *builder) countBufferUses(buffers []Buffer) {
	for _, task := range b.tasks {
		for _, arg := range task.Args {
			switch arg.Kind {
			case ArgBuffer:
				buffers[arg.BufferIndex].UseCount++
			case ArgArray:
				for _, elem := range b.arrays[arg.ArrayIndex] {
					if !elem.IsConstant {
						buffers[elem.BufferIndex].UseCount++
					}
				}
			}
		}
	}
	for _, o := range b.outputs {
		if !o.isConstant {
			buffers[b.nodeToBuffer[o.node]].UseCount++
		}
	}
}
