// Package nativemodule catalogs the pure functions ("native modules")
// callable from a WaveLang program, together with the rewrite-rule pattern
// language the optimizer uses to simplify calls to them.
//
// A NativeModule carries its signature over ir's type/value model, an
// optional compile-time Evaluator, and the library it belongs to. Registry
// mirrors the original engine's registration lifecycle — Uninitialized →
// Initialized → Registering → Finalized — and refuses mutation outside the
// Registering phase (spec §3 "Lifecycles", §6). It is a plain Go value, not
// process-global state: an embedding program constructs one Registry at
// startup and passes it through the pipeline explicitly.
package nativemodule
