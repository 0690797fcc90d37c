package taskfunction

import "errors"

// Sentinel errors for task-function and mapping registration (spec §7
// RegistrationError: "incompatible task-function signature").
var (
	ErrDuplicateLibrary = errors.New("taskfunction: library id already registered")
	ErrUnknownLibrary   = errors.New("taskfunction: unknown library")
	ErrDuplicateUID     = errors.New("taskfunction: task function uid collision")
	ErrUnknownFunction  = errors.New("taskfunction: mapping references an unregistered task function")

	ErrShapeLengthMismatch  = errors.New("taskfunction: mapping shape vector length does not match module argument count")
	ErrInvalidShapeForArg   = errors.New("taskfunction: shape entry inconsistent with argument direction (None iff output)")
	ErrArgIndexOutOfRange   = errors.New("taskfunction: mapping references a task-function argument index out of range")
	ErrArgTypeMismatch      = errors.New("taskfunction: mapped task-function argument type does not match module argument type")
	ErrArgDirectionMismatch = errors.New("taskfunction: mapped task-function argument direction is incompatible with the module argument qualifier")
	ErrDuplicateArgBinding  = errors.New("taskfunction: task-function argument bound by more than one non-inout module argument")
	ErrInvalidInOutPairing  = errors.New("taskfunction: inout task-function argument must pair exactly one input with one output")
)
