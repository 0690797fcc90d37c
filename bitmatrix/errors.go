package bitmatrix

import "errors"

// ErrIndexOutOfRange is returned by PredecessorResolver.AddEdge when either
// endpoint falls outside [0, n).
var ErrIndexOutOfRange = errors.New("bitmatrix: index out of range")
