// Package taskfunction holds the TaskFunctionRegistry: the catalog of
// runtime task functions and, per native module, an ordered list of
// mappings from that module's compile-time argument shapes onto a task
// function and its argument layout (spec §4.5). The task-graph builder
// consults it once per native-module-call via PickMapping.
package taskfunction
