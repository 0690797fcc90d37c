// Package wavelang is the compiler core for WaveLang's offline pipeline: a
// native-module-aware optimizer over a dataflow ExecutionGraph, and a
// task-graph builder that turns the optimized graph into a runtime-
// schedulable plan of buffers and tasks.
//
// The pipeline is strictly single-threaded and synchronous (package ir,
// package optimize, package taskgraph carry no goroutines or locks): every
// algorithm here runs offline, before the audio engine starts, and the
// resulting TaskGraph is what actually gets scheduled across threads at
// runtime. Subpackages:
//
//	ir            — the ExecutionGraph arena and its node/edge bookkeeping
//	nativemodule  — the native-module registry and rewrite-rule pattern language
//	constfold     — bottom-up compile-time evaluation of constant subgraphs
//	optimize      — constant folding, rewrite rules, dead-node sweep, dedup
//	taskfunction  — runtime task-function registry and shape-based mapping
//	bitmatrix     — packed-bit predecessor closure and concurrency estimation
//	taskgraph     — the TaskGraph builder itself
//
// Compile is the single entry point gluing optimize and taskgraph together;
// embedders that already have an optimized graph can call taskgraph.Build
// directly.
package wavelang
