package nativemodule

import "errors"

// Sentinel errors for the nativemodule package registration API (spec §4.2,
// §7 RegistrationError). All are rejected at startup and never surfaced to
// the graph builder.
var (
	// ErrNotRegistering indicates a Register* call outside the Registering
	// phase of the Registry lifecycle.
	ErrNotRegistering = errors.New("nativemodule: registry is not in the Registering phase")

	// ErrWrongLifecyclePhase indicates a lifecycle transition (Initialize,
	// BeginRegistration, EndRegistration) was called out of order.
	ErrWrongLifecyclePhase = errors.New("nativemodule: invalid registry lifecycle transition")

	// ErrDuplicateLibrary indicates register_library was called twice for the
	// same library id.
	ErrDuplicateLibrary = errors.New("nativemodule: library id already registered")

	// ErrUnknownLibrary indicates a module referenced a library id that has
	// not been registered.
	ErrUnknownLibrary = errors.New("nativemodule: unknown library")

	// ErrDuplicateUID indicates register_native_module was called twice for
	// the same NativeModuleId.
	ErrDuplicateUID = errors.New("nativemodule: native module uid collision")

	// ErrTooManyArguments indicates a module declared more than MaxArguments
	// arguments.
	ErrTooManyArguments = errors.New("nativemodule: too many arguments")

	// ErrMissingReturnArgument indicates a module has no output argument, or
	// more than one output argument marked as the return argument.
	ErrMissingReturnArgument = errors.New("nativemodule: exactly one output argument must be marked as the return argument")

	// ErrMissingEvaluator indicates a module was marked compile-time callable
	// but supplied no Evaluator.
	ErrMissingEvaluator = errors.New("nativemodule: compile-time callable module has no evaluator")

	// ErrDuplicateOperator indicates register_operator was called twice for
	// the same operator symbol.
	ErrDuplicateOperator = errors.New("nativemodule: operator already bound")

	// ErrInvalidRuleRoot indicates an optimization rule's source pattern does
	// not begin with a single Module...ModuleEnd span with exactly one output
	// port (spec §4.4.3: "the rule engine only supports module-call roots
	// with a single output port").
	ErrInvalidRuleRoot = errors.New("nativemodule: rule root must be a single-output module call")
)
