package optimize

import (
	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

// tryApplyRules tries every registered rule against call, in registration
// order, applying the first one whose source pattern matches (spec §4.4.3:
// "Rules are tried in registration order; the first match wins. This is the
// only source of non-confluence").
func tryApplyRules(graph *ir.ExecutionGraph, regs *nativemodule.Registry, call ir.NodeIndex) bool {
	for i := 0; i < regs.RuleCount(); i++ {
		if applyRule(graph, regs, regs.Rule(i), call) {
			return true
		}
	}
	return false
}

func applyRule(graph *ir.ExecutionGraph, regs *nativemodule.Registry, rule nativemodule.OptimizationRule, root ir.NodeIndex) bool {
	vars, consts, ok := matchPattern(graph, regs, rule.LHS, root)
	if !ok {
		return false
	}

	rootOutput, err := returnOutputPort(graph, regs, root)
	if err != nil {
		return false
	}

	build := &targetBuilder{graph: graph, regs: regs, pattern: rule.RHS, vars: vars, consts: consts}
	result, err := build.build()
	if err != nil {
		return false
	}

	if err := graph.RerouteOutgoingEdges(rootOutput, result); err != nil {
		return false
	}
	graph.RemoveNode(root)
	return true
}

// returnOutputPort resolves the IndexedOutput port of call's module that is
// marked as the return argument — the only port a rule's source-root may
// reroute (spec §4.4.3: rule roots are single-output).
func returnOutputPort(graph *ir.ExecutionGraph, regs *nativemodule.Registry, call ir.NodeIndex) (ir.NodeIndex, error) {
	uid, err := graph.NativeModuleCallID(call)
	if err != nil {
		return ir.InvalidNodeIndex, err
	}
	mod, ok := regs.Lookup(uid)
	if !ok {
		return ir.InvalidNodeIndex, nativemodule.ErrUnknownLibrary
	}
	return graph.OutputPort(call, outputPosition(mod, mod.ReturnArgIndex()))
}

// outputPosition converts an index into mod.Args (argIdx, which must name a
// Qualifier==Out argument) into its position among only the output
// arguments — the ordinal CreateNativeModuleCall used when allocating
// IndexedOutput ports.
func outputPosition(mod nativemodule.NativeModule, argIdx int) int {
	pos := 0
	for i, a := range mod.Args {
		if i == argIdx {
			break
		}
		if a.Qualifier == ir.QualifierOut {
			pos++
		}
	}
	return pos
}

// --- Source-side matching (spec §4.4.3) -------------------------------

// matchPattern attempts to match pattern's source shape rooted at root,
// returning the captured Variable and Constant slots on success.
func matchPattern(graph *ir.ExecutionGraph, regs *nativemodule.Registry, pattern nativemodule.Pattern, root ir.NodeIndex) (map[int]ir.NodeIndex, map[int]ir.NodeIndex, bool) {
	m := &matcher{
		graph:   graph,
		regs:    regs,
		pattern: pattern,
		vars:    make(map[int]ir.NodeIndex),
		consts:  make(map[int]ir.NodeIndex),
	}
	if !m.matchModuleSpan(root) {
		return nil, nil, false
	}
	return m.vars, m.consts, true
}

type matcher struct {
	graph   *ir.ExecutionGraph
	regs    *nativemodule.Registry
	pattern nativemodule.Pattern
	pos     int
	vars    map[int]ir.NodeIndex
	consts  map[int]ir.NodeIndex
}

func (m *matcher) next() nativemodule.Symbol {
	sym := m.pattern[m.pos]
	m.pos++
	return sym
}

// matchModuleSpan consumes a Module...ModuleEnd span, requiring call to be a
// native-module-call of the listed uid and matching each of its inputs
// in order (spec §4.4.3: "a Module symbol requires the current node to be a
// native-module-call of the listed uid ... ModuleEnd asserts all the
// module's inputs were consumed").
func (m *matcher) matchModuleSpan(call ir.NodeIndex) bool {
	sym := m.next()
	if sym.Kind != nativemodule.SymModule {
		return false
	}
	uid, err := m.graph.NativeModuleCallID(call)
	if err != nil || uid != sym.ModuleUID {
		return false
	}
	mod, ok := m.regs.Lookup(uid)
	if !ok {
		return false
	}

	nextInput := 0
	for {
		if m.pattern[m.pos].Kind == nativemodule.SymModuleEnd {
			m.pos++
			return nextInput == mod.InputCount()
		}
		if nextInput >= mod.InputCount() {
			return false
		}
		port, err := m.graph.InputPort(call, nextInput)
		nextInput++
		if err != nil {
			return false
		}
		// Hopping through an input edge advances twice: the port, then its
		// source (spec §4.4.3).
		source, err := m.graph.IncomingEdge(port, 0)
		if err != nil {
			return false
		}
		if !m.matchArgument(source) {
			return false
		}
	}
}

func (m *matcher) matchArgument(source ir.NodeIndex) bool {
	sym := m.next()
	switch sym.Kind {
	case nativemodule.SymModule:
		kind, err := m.graph.NodeKind(source)
		if err != nil || kind != ir.KindIndexedOutput {
			return false
		}
		producer, _, err := m.graph.PortOwner(source)
		if err != nil {
			return false
		}
		m.pos-- // put the Module symbol back for matchModuleSpan to consume
		return m.matchModuleSpan(producer)

	case nativemodule.SymVariable:
		kind, err := m.graph.NodeKind(source)
		if err != nil || kind == ir.KindConstant {
			return false
		}
		m.vars[sym.Slot] = source
		return true

	case nativemodule.SymConstant:
		kind, err := m.graph.NodeKind(source)
		if err != nil || kind != ir.KindConstant {
			return false
		}
		m.consts[sym.Slot] = source
		return true

	case nativemodule.SymRealValue:
		kind, err := m.graph.NodeKind(source)
		if err != nil || kind != ir.KindConstant {
			return false
		}
		v, err := m.graph.ConstantRealValue(source)
		return err == nil && v == sym.Real

	case nativemodule.SymBoolValue:
		kind, err := m.graph.NodeKind(source)
		if err != nil || kind != ir.KindConstant {
			return false
		}
		v, err := m.graph.ConstantBoolValue(source)
		return err == nil && v == sym.Bool

	default:
		return false
	}
}

// --- Target-side building (spec §4.4.3) --------------------------------

type targetBuilder struct {
	graph   *ir.ExecutionGraph
	regs    *nativemodule.Registry
	pattern nativemodule.Pattern
	pos     int
	vars    map[int]ir.NodeIndex
	consts  map[int]ir.NodeIndex
}

func (b *targetBuilder) next() nativemodule.Symbol {
	sym := b.pattern[b.pos]
	b.pos++
	return sym
}

func (b *targetBuilder) build() (ir.NodeIndex, error) {
	sym := b.next()
	switch sym.Kind {
	case nativemodule.SymModule:
		return b.buildModuleCall(sym.ModuleUID)

	case nativemodule.SymVariable:
		node, ok := b.vars[sym.Slot]
		if !ok {
			return ir.InvalidNodeIndex, ErrUnboundCapture
		}
		return node, nil

	case nativemodule.SymConstant:
		node, ok := b.consts[sym.Slot]
		if !ok {
			return ir.InvalidNodeIndex, ErrUnboundCapture
		}
		return node, nil

	case nativemodule.SymRealValue:
		return b.graph.CreateRealConstant(sym.Real), nil

	case nativemodule.SymBoolValue:
		return b.graph.CreateBoolConstant(sym.Bool), nil

	case nativemodule.SymArrayDereference:
		return b.buildArrayDereference()

	default:
		return ir.InvalidNodeIndex, ErrUnknownModuleInTarget
	}
}

func (b *targetBuilder) buildModuleCall(uid ir.NativeModuleId) (ir.NodeIndex, error) {
	mod, ok := b.regs.Lookup(uid)
	if !ok {
		return ir.InvalidNodeIndex, ErrUnknownModuleInTarget
	}

	call := b.graph.CreateNativeModuleCall(uid, mod.InputCount(), mod.OutputCount())
	nextInput := 0
	for b.pattern[b.pos].Kind != nativemodule.SymModuleEnd {
		arg, err := b.build()
		if err != nil {
			return ir.InvalidNodeIndex, err
		}
		port, err := b.graph.InputPort(call, nextInput)
		nextInput++
		if err != nil {
			return ir.InvalidNodeIndex, err
		}
		if err := b.graph.AddEdge(arg, port); err != nil {
			return ir.InvalidNodeIndex, err
		}
	}
	b.pos++ // consume ModuleEnd

	return b.graph.OutputPort(call, outputPosition(mod, mod.ReturnArgIndex()))
}

// buildArrayDereference resolves an ArrayDereference symbol: both operands
// must build to constant nodes; a valid index reuses the element node
// directly (no new nodes), an invalid one (NaN/Inf/out-of-range) falls back
// to the element primitive's zero value (spec §4.4.3).
func (b *targetBuilder) buildArrayDereference() (ir.NodeIndex, error) {
	arrayNode, err := b.build()
	if err != nil {
		return ir.InvalidNodeIndex, err
	}
	indexNode, err := b.build()
	if err != nil {
		return ir.InvalidNodeIndex, err
	}

	arrType, err := b.graph.ConstantDataType(arrayNode)
	if err != nil || !arrType.IsArray {
		return ir.InvalidNodeIndex, ErrUnboundCapture
	}
	elements, err := b.graph.ArrayConstantElements(arrayNode)
	if err != nil {
		return ir.InvalidNodeIndex, err
	}
	indexValue, err := b.graph.ConstantRealValue(indexNode)
	if err != nil {
		return ir.InvalidNodeIndex, ErrUnboundCapture
	}

	if idx, ok := floorIndex(indexValue); ok && idx >= 0 && idx < len(elements) {
		return elements[idx], nil
	}
	return zeroConstant(b.graph, arrType.Primitive), nil
}
