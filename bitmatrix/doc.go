// Package bitmatrix provides the packed bit-matrix machinery behind the
// task-graph builder's concurrency estimates (spec §4.6.4): a predecessor
// resolver computing transitive "a precedes b" closure over task indices,
// and a greedy clique-avoidance estimator that turns a concurrency matrix
// into an upper bound on how many of its members can ever be mutually
// concurrent.
package bitmatrix
