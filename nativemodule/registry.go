package nativemodule

import "github.com/wavelang/wavelang/ir"

// registrationState mirrors the original engine's
// e_task_function_registry_state enum (original_source/source/engine/
// task_function_registry.cpp). Only this registry uses it;
// taskfunction.Registry has no lifecycle state.
type registrationState int

const (
	stateUninitialized registrationState = iota
	stateInitialized
	stateRegistering
	stateFinalized
)

// Registry is the catalog of native-module libraries, modules, optimization
// rules, and operator bindings populated once at startup (spec §4.2, §6).
// It is a plain value — construct one with NewRegistry, not a package
// global — and is single-threaded, consistent with WaveLang's offline,
// synchronous core (spec §5).
type Registry struct {
	state registrationState

	libraries map[uint32]Library
	modules   map[ir.NativeModuleId]NativeModule
	operators map[string]string
	rules     []OptimizationRule
}

// NewRegistry returns a Registry in the Uninitialized state.
func NewRegistry() *Registry {
	return &Registry{
		state:     stateUninitialized,
		libraries: make(map[uint32]Library),
		modules:   make(map[ir.NativeModuleId]NativeModule),
		operators: make(map[string]string),
	}
}

// Initialize transitions Uninitialized → Initialized.
func (r *Registry) Initialize() error {
	if r.state != stateUninitialized {
		return ErrWrongLifecyclePhase
	}
	r.state = stateInitialized
	return nil
}

// BeginRegistration transitions Initialized → Registering.
func (r *Registry) BeginRegistration() error {
	if r.state != stateInitialized {
		return ErrWrongLifecyclePhase
	}
	r.state = stateRegistering
	return nil
}

// EndRegistration transitions Registering → Finalized and reports success.
// Per spec §6 ("All return a success boolean"), a false return with nil
// error never happens here — failures are reported immediately by the
// Register* call that caused them; EndRegistration only checks phase.
func (r *Registry) EndRegistration() (bool, error) {
	if r.state != stateRegistering {
		return false, ErrWrongLifecyclePhase
	}
	r.state = stateFinalized
	return true, nil
}

// IsFinalized reports whether registration has completed.
func (r *Registry) IsFinalized() bool { return r.state == stateFinalized }

func (r *Registry) requireRegistering() error {
	if r.state != stateRegistering {
		return ErrNotRegistering
	}
	return nil
}

// RegisterLibrary registers a named, versioned library that modules are
// grouped under. Fails with ErrDuplicateLibrary on id collision.
func (r *Registry) RegisterLibrary(id uint32, name string, versionMajor, versionMinor uint16) error {
	if err := r.requireRegistering(); err != nil {
		return err
	}
	if _, exists := r.libraries[id]; exists {
		return ErrDuplicateLibrary
	}
	r.libraries[id] = Library{ID: id, Name: name, VersionMajor: versionMajor, VersionMinor: versionMinor}
	return nil
}

// RegisterNativeModule registers module, validating:
//   - its library was already registered;
//   - its uid is not a collision;
//   - it declares at most MaxArguments arguments;
//   - exactly one output argument is marked IsReturn;
//   - if IsCompileTimeCallable, it supplies a non-nil Eval.
func (r *Registry) RegisterNativeModule(module NativeModule) error {
	if err := r.requireRegistering(); err != nil {
		return err
	}
	if _, ok := r.libraries[module.UID.LibraryID]; !ok {
		return ErrUnknownLibrary
	}
	if _, exists := r.modules[module.UID]; exists {
		return ErrDuplicateUID
	}
	if len(module.Args) > MaxArguments {
		return ErrTooManyArguments
	}
	returns := 0
	for _, a := range module.Args {
		if a.Qualifier == ir.QualifierOut && a.IsReturn {
			returns++
		}
	}
	if returns != 1 {
		return ErrMissingReturnArgument
	}
	if module.IsCompileTimeCallable && module.Eval == nil {
		return ErrMissingEvaluator
	}

	r.modules[module.UID] = module
	return nil
}

// RegisterOptimizationRule registers rule, validating its lhs root shape
// (spec §4.4.3).
func (r *Registry) RegisterOptimizationRule(rule OptimizationRule) error {
	if err := r.requireRegistering(); err != nil {
		return err
	}
	if !validateRuleRoot(rule.LHS) {
		return ErrInvalidRuleRoot
	}
	if mod, ok := r.modules[rule.LHS[0].ModuleUID]; ok && mod.OutputCount() != 1 {
		return ErrInvalidRuleRoot
	}
	r.rules = append(r.rules, rule)
	return nil
}

// RegisterOperator binds operator symbol op to the canonical module name
// internalName. Fails with ErrDuplicateOperator on a second binding for the
// same op.
func (r *Registry) RegisterOperator(op, internalName string) error {
	if err := r.requireRegistering(); err != nil {
		return err
	}
	if _, exists := r.operators[op]; exists {
		return ErrDuplicateOperator
	}
	r.operators[op] = internalName
	return nil
}

// Lookup returns the registered module for uid, if any.
func (r *Registry) Lookup(uid ir.NativeModuleId) (NativeModule, bool) {
	m, ok := r.modules[uid]
	return m, ok
}

// OperatorCanonicalName returns the canonical module name bound to operator
// op, if any.
func (r *Registry) OperatorCanonicalName(op string) (string, bool) {
	name, ok := r.operators[op]
	return name, ok
}

// RuleCount returns the number of registered optimization rules.
func (r *Registry) RuleCount() int { return len(r.rules) }

// Rule returns the i-th registered rule, in registration order (the order in
// which try_to_apply_optimization_rule tries them — spec §4.4.3: "Rules are
// tried in registration order; the first match wins.").
func (r *Registry) Rule(i int) OptimizationRule { return r.rules[i] }

// Library returns the registered library for id, if any.
func (r *Registry) Library(id uint32) (Library, bool) {
	l, ok := r.libraries[id]
	return l, ok
}
