// Package constfold implements the ConstantEvaluator: on-demand, memoized
// evaluation of a node's compile-time value by walking its transitive
// inputs (spec §4.3). It is a read-only utility shared by the optimizer's
// fold pass and by rule-matching guards that require a subgraph to be
// constant — it never mutates the graph it walks.
package constfold
