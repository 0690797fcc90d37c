// Package taskgraph builds a runtime-schedulable TaskGraph from a finalized
// ExecutionGraph (spec §4.6): it selects a task-function mapping for every
// native-module call, allocates buffers across the resulting tasks, links
// successor edges and the initial-task frontier, and estimates how much
// concurrency the runtime can exploit between both tasks and buffers.
//
// Build is a one-shot, fail-fast pass — unlike package optimize, which
// accumulates every constant-qualifier violation before returning, the
// first unmappable call here aborts the build and discards all partial
// output (spec §7: "the task-graph builder returns at the first
// unrecoverable failure and clears its output").
package taskgraph
