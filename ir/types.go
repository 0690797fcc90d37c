package ir

import "fmt"

// Primitive is one of the three scalar types WaveLang's type system knows
// about. Arrays are not a separate Primitive; they are DataType's IsArray
// flag layered on top of one of these.
type Primitive int

const (
	PrimitiveReal Primitive = iota
	PrimitiveBool
	PrimitiveString
)

// String renders the primitive's display name, used in error messages that
// identify an offending argument's declared type (spec §7).
func (p Primitive) String() string {
	switch p {
	case PrimitiveReal:
		return "real"
	case PrimitiveBool:
		return "bool"
	case PrimitiveString:
		return "string"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// DataType is (Primitive, IsArray). Arrays may only appear in in/constant
// argument positions; graph outputs are always scalar (spec §3).
type DataType struct {
	Primitive Primitive
	IsArray   bool
}

// String renders e.g. "real", "real[]", "bool[]".
func (t DataType) String() string {
	if t.IsArray {
		return t.Primitive.String() + "[]"
	}
	return t.Primitive.String()
}

// Scalar returns the scalar DataType for p (IsArray == false). Convenience
// constructor used throughout native-module signatures and tests.
func Scalar(p Primitive) DataType { return DataType{Primitive: p} }

// Array returns the array DataType for p (IsArray == true).
func Array(p Primitive) DataType { return DataType{Primitive: p, IsArray: true} }

// Qualifier distinguishes argument flow direction. Constant-qualified
// arguments must resolve to compile-time constants after optimization; a
// non-constant survivor is a compile error (spec §3, §4.4.6).
type Qualifier int

const (
	QualifierIn Qualifier = iota
	QualifierOut
	QualifierConstant
)

func (q Qualifier) String() string {
	switch q {
	case QualifierIn:
		return "in"
	case QualifierOut:
		return "out"
	case QualifierConstant:
		return "constant"
	default:
		return fmt.Sprintf("Qualifier(%d)", int(q))
	}
}

// IsInput reports whether arguments of this qualifier are wired as incoming
// value edges on a native-module-call node (both "in" and "constant" are;
// "out" is not).
func (q Qualifier) IsInput() bool { return q == QualifierIn || q == QualifierConstant }

// NativeModuleId fingerprints a native module across libraries. Comparison
// is by both halves; it is the only stable cross-boundary identifier (spec
// §3, §6).
type NativeModuleId struct {
	LibraryID uint32
	ModuleID  uint32
}

// String renders "lib:module", used to name the offending module in
// compiler errors (spec §7).
func (id NativeModuleId) String() string {
	return fmt.Sprintf("%d:%d", id.LibraryID, id.ModuleID)
}

// ValueKind discriminates ConstantValue's active field.
type ValueKind int

const (
	ValueReal ValueKind = iota
	ValueBool
	ValueString
	ValueArray
)

// ConstantValue is the payload of a Constant node (or of a compile-time
// evaluation result produced by ConstantEvaluator, see package constfold).
// Exactly one of Real/Bool/String is meaningful for its Kind; for Kind ==
// ValueArray the elements are NOT stored here — for a Constant node they are
// the node's incoming edges (spec §3), and for an evaluator result they are
// tracked out-of-band as a []NodeIndex (spec §9: "keep arrays as owned
// Vec<NodeIndex> references").
type ConstantValue struct {
	Kind   ValueKind
	Real   float32
	Bool   bool
	String string
}

// RealValue constructs a real-valued ConstantValue.
func RealValue(v float32) ConstantValue { return ConstantValue{Kind: ValueReal, Real: v} }

// BoolValue constructs a bool-valued ConstantValue.
func BoolValue(v bool) ConstantValue { return ConstantValue{Kind: ValueBool, Bool: v} }

// StringValue constructs a string-valued ConstantValue.
func StringValue(v string) ConstantValue { return ConstantValue{Kind: ValueString, String: v} }

// ArrayValue constructs the (elementless) ConstantValue marker for an array
// constant node; the actual elements live on the node's incoming edges.
func ArrayValue() ConstantValue { return ConstantValue{Kind: ValueArray} }

// Equal reports whether two ConstantValues are the same kind and scalar
// value. Arrays never compare equal here (spec §4.4.5: "Array constants are
// skipped" by scalar constant dedup) — callers that need structural array
// equality compare element sources directly via the graph.
func (v ConstantValue) Equal(other ConstantValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueReal:
		return v.Real == other.Real
	case ValueBool:
		return v.Bool == other.Bool
	case ValueString:
		return v.String == other.String
	default:
		return false
	}
}
