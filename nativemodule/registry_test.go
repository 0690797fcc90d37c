package nativemodule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavelang/wavelang/ir"
	"github.com/wavelang/wavelang/nativemodule"
)

func negationModule() nativemodule.NativeModule {
	return nativemodule.NativeModule{
		UID:         ir.NativeModuleId{LibraryID: 1, ModuleID: 1},
		DisplayName: "negation",
		Args: []nativemodule.Argument{
			{Qualifier: ir.QualifierIn, Type: ir.Scalar(ir.PrimitiveReal), Role: "x"},
			{Qualifier: ir.QualifierOut, Type: ir.Scalar(ir.PrimitiveReal), Role: "result", IsReturn: true},
		},
		IsCompileTimeCallable: true,
		Eval: func(_ nativemodule.EvalContext, args []nativemodule.CompileTimeArg) error {
			args[1].Real = -args[0].Real
			return nil
		},
	}
}

func newFreshRegistry(t *testing.T) *nativemodule.Registry {
	t.Helper()
	r := nativemodule.NewRegistry()
	require.NoError(t, r.Initialize())
	require.NoError(t, r.BeginRegistration())
	return r
}

func TestRegistry_LifecycleOrder(t *testing.T) {
	r := nativemodule.NewRegistry()
	require.ErrorIs(t, r.BeginRegistration(), nativemodule.ErrWrongLifecyclePhase)
	require.NoError(t, r.Initialize())
	require.ErrorIs(t, r.Initialize(), nativemodule.ErrWrongLifecyclePhase)
	require.NoError(t, r.BeginRegistration())
	require.NoError(t, r.RegisterLibrary(1, "core", 1, 0))

	ok, err := r.EndRegistration()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, r.IsFinalized())

	require.ErrorIs(t, r.RegisterLibrary(2, "late", 1, 0), nativemodule.ErrNotRegistering)
}

func TestRegistry_RegisterNativeModule(t *testing.T) {
	r := newFreshRegistry(t)
	require.NoError(t, r.RegisterLibrary(1, "core", 1, 0))

	mod := negationModule()
	require.NoError(t, r.RegisterNativeModule(mod))
	require.ErrorIs(t, r.RegisterNativeModule(mod), nativemodule.ErrDuplicateUID)

	got, ok := r.Lookup(mod.UID)
	require.True(t, ok)
	require.Equal(t, "negation", got.DisplayName)
	require.Equal(t, 1, got.InputCount())
	require.Equal(t, 1, got.OutputCount())
}

func TestRegistry_RegisterNativeModule_UnknownLibrary(t *testing.T) {
	r := newFreshRegistry(t)
	require.ErrorIs(t, r.RegisterNativeModule(negationModule()), nativemodule.ErrUnknownLibrary)
}

func TestRegistry_RegisterNativeModule_MissingReturnArgument(t *testing.T) {
	r := newFreshRegistry(t)
	require.NoError(t, r.RegisterLibrary(1, "core", 1, 0))

	mod := negationModule()
	mod.Args[1].IsReturn = false
	require.ErrorIs(t, r.RegisterNativeModule(mod), nativemodule.ErrMissingReturnArgument)
}

func TestRegistry_RegisterOperator(t *testing.T) {
	r := newFreshRegistry(t)
	require.NoError(t, r.RegisterOperator("-", "negation"))
	require.ErrorIs(t, r.RegisterOperator("-", "negation2"), nativemodule.ErrDuplicateOperator)

	name, ok := r.OperatorCanonicalName("-")
	require.True(t, ok)
	require.Equal(t, "negation", name)
}

func TestRegistry_RegisterOptimizationRule_RootShape(t *testing.T) {
	r := newFreshRegistry(t)
	negUID := ir.NativeModuleId{LibraryID: 1, ModuleID: 1}

	rule := nativemodule.NewRule(
		"negation_negation",
		nativemodule.Pattern{
			nativemodule.Module(negUID),
			nativemodule.Module(negUID),
			nativemodule.Variable(0),
			nativemodule.ModuleEnd(),
			nativemodule.ModuleEnd(),
		},
		nativemodule.Pattern{nativemodule.Variable(0)},
	)
	require.NoError(t, r.RegisterOptimizationRule(rule))
	require.Equal(t, 1, r.RuleCount())

	badRule := nativemodule.NewRule("bad_root",
		nativemodule.Pattern{nativemodule.Variable(0)},
		nativemodule.Pattern{nativemodule.Variable(0)},
	)
	require.ErrorIs(t, r.RegisterOptimizationRule(badRule), nativemodule.ErrInvalidRuleRoot)
}
