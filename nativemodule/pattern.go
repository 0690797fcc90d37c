package nativemodule

import "github.com/wavelang/wavelang/ir"

// SymbolKind discriminates the pattern language's token types (spec
// §4.2.1).
type SymbolKind int

const (
	// SymModule begins a native-module sub-expression; its arguments follow,
	// terminated by a matching SymModuleEnd.
	SymModule SymbolKind = iota
	// SymModuleEnd closes the most recently opened SymModule.
	SymModuleEnd
	// SymVariable captures any non-constant subgraph into Slot.
	SymVariable
	// SymConstant captures any constant (real/bool/array) subgraph into Slot.
	SymConstant
	// SymRealValue matches a literal real constant equal to Real.
	SymRealValue
	// SymBoolValue matches a literal bool constant equal to Bool.
	SymBoolValue
	// SymArrayDereference is target-only: followed by an array capture and
	// an index capture, it resolves at build time to the captured array's
	// element at the captured index.
	SymArrayDereference
)

// Symbol is one token of a Pattern. Only the fields relevant to Kind are
// meaningful.
type Symbol struct {
	Kind      SymbolKind
	ModuleUID ir.NativeModuleId // SymModule
	Slot      int               // SymVariable, SymConstant
	Real      float32           // SymRealValue
	Bool      bool              // SymBoolValue
}

// Pattern is a flat sequence of Symbols (spec §4.2.1). Slots are small
// integers (0..K) partitioned into independent Variable and Constant
// namespaces; both sides of a rule share the same captures.
type Pattern []Symbol

// OptimizationRule is a single (lhs, rhs) rewrite rule. Name is used only in
// diagnostics and debug-assertion messages.
type OptimizationRule struct {
	Name string
	LHS  Pattern
	RHS  Pattern
}

// --- Rule DSL builder (spec §9: "small const-constructable builder") ----

// Module begins a native-module sub-expression matching uid.
func Module(uid ir.NativeModuleId) Symbol { return Symbol{Kind: SymModule, ModuleUID: uid} }

// ModuleEnd closes the innermost open Module span.
func ModuleEnd() Symbol { return Symbol{Kind: SymModuleEnd} }

// Variable captures any non-constant subgraph into slot.
func Variable(slot int) Symbol { return Symbol{Kind: SymVariable, Slot: slot} }

// Constant captures any constant subgraph into slot.
func Constant(slot int) Symbol { return Symbol{Kind: SymConstant, Slot: slot} }

// RealLiteral matches a literal real constant equal to v.
func RealLiteral(v float32) Symbol { return Symbol{Kind: SymRealValue, Real: v} }

// BoolLiteral matches a literal bool constant equal to v.
func BoolLiteral(v bool) Symbol { return Symbol{Kind: SymBoolValue, Bool: v} }

// ArrayDereference resolves, at target-build time, to the element of a
// captured array at a captured index; valid only on the target side.
func ArrayDereference() Symbol { return Symbol{Kind: SymArrayDereference} }

// NewRule constructs a named OptimizationRule from flat lhs/rhs symbol
// sequences.
func NewRule(name string, lhs, rhs Pattern) OptimizationRule {
	return OptimizationRule{Name: name, LHS: lhs, RHS: rhs}
}

// validateRuleRoot enforces spec §4.4.3's "the rule engine only supports
// module-call roots with a single output port": lhs must begin with a
// SymModule symbol (not, say, a bare Variable or Constant at the root).
// Symbols after the root span are not inspected here. The output-count
// check happens in Registry since it needs the module table, and it applies
// only when the root module is already registered; a rule whose root module
// is not yet registered is accepted without it.
func validateRuleRoot(lhs Pattern) bool {
	return len(lhs) > 0 && lhs[0].Kind == SymModule
}
