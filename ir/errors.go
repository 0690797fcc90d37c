package ir

import "errors"

// Sentinel errors for the ir package. Callers should branch with errors.Is;
// the graph methods return these values directly, without added context.
var (
	// ErrInvalidNode indicates an operation referenced a node index that is
	// out of range or whose slot has been tombstoned.
	ErrInvalidNode = errors.New("ir: invalid or removed node")

	// ErrPortFull indicates an attempt to add a second incoming edge to an
	// IndexedInput or Output node, both of which accept exactly one.
	ErrPortFull = errors.New("ir: port already has an incoming edge")

	// ErrConstantHasNoInputs indicates an attempt to add an incoming edge to
	// a non-array constant node; only array constants accept incoming edges
	// (their elements).
	ErrConstantHasNoInputs = errors.New("ir: scalar constant cannot have incoming edges")

	// ErrArgIndexOutOfRange indicates a port or argument index fell outside
	// the owning call's declared argument count.
	ErrArgIndexOutOfRange = errors.New("ir: argument index out of range")

	// ErrEdgeNotFound indicates RemoveEdge could not find the requested
	// from→to edge.
	ErrEdgeNotFound = errors.New("ir: edge not found")

	// ErrWrongNodeKind indicates an accessor was called on a node of the
	// wrong Kind (e.g. reading a constant value from a call node).
	ErrWrongNodeKind = errors.New("ir: wrong node kind for this accessor")
)
