package taskgraph

import (
	"fmt"
	"strings"

	"github.com/wavelang/wavelang/ir"
)

// internString returns s's index in the shared string table, adding it if
// this is the first occurrence (spec §4.6.1: "intern the string into a
// string table; store the returned offset").
func (b *builder) internString(s string) int {
	if idx, ok := b.stringIdx[s]; ok {
		return idx
	}
	idx := len(b.strings)
	b.strings = append(b.strings, s)
	b.stringIdx[s] = idx
	return idx
}

// internArray interns arrayNode's element list into the shared array arena
// with structural deduplication (spec §4.6.1 point 3): constant elements
// inline their scalar value, non-constant elements defer to buffer
// allocation like any other scalar-buffer argument.
func (b *builder) internArray(arrayNode ir.NodeIndex) (int, error) {
	elements, err := b.graph.ArrayConstantElements(arrayNode)
	if err != nil {
		return 0, ErrMalformedGraph
	}

	entries := make([]ArrayElement, len(elements))
	var keyParts []string

	for i, elem := range elements {
		kind, err := b.graph.NodeKind(elem)
		if err != nil {
			return 0, ErrMalformedGraph
		}
		if kind == ir.KindConstant {
			value, err := readScalarConstant(b.graph, elem)
			if err != nil {
				return 0, err
			}
			entries[i] = ArrayElement{IsConstant: true, Constant: value}
			keyParts = append(keyParts, fmt.Sprintf("c:%d:%v", value.Kind, scalarKeyOf(value)))
			continue
		}
		entries[i] = ArrayElement{IsConstant: false}
		keyParts = append(keyParts, fmt.Sprintf("n:%d", elem))
	}

	key := strings.Join(keyParts, "|")
	if idx, ok := b.arrayIdx[key]; ok {
		return idx, nil
	}

	idx := len(b.arrays)
	b.arrays = append(b.arrays, entries)
	b.arrayIdx[key] = idx

	for i, elem := range elements {
		if !entries[i].IsConstant {
			b.uf.register(elem)
			b.pendingArrayElems = append(b.pendingArrayElems, arrayElemRef{arrayIdx: idx, elemIdx: i, node: elem})
		}
	}

	return idx, nil
}

func scalarKeyOf(v ir.ConstantValue) any {
	switch v.Kind {
	case ir.ValueReal:
		return v.Real
	case ir.ValueBool:
		return v.Bool
	default:
		return v.String
	}
}
