// Package optimize implements WaveLang's single entrypoint for turning a
// freshly built ExecutionGraph into its normalized, compacted form: constant
// folding, rewrite-rule application, a dead-node sweep, two-stage
// deduplication, and constant-qualifier validation (spec §4.4). Optimize
// owns exclusive mutable access to the graph for the duration of its run —
// nothing here is safe to call concurrently with graph mutation from another
// goroutine, matching the core's single-threaded, synchronous design (spec
// §5).
package optimize
