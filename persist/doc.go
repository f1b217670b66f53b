// Package persist encodes and decodes a solution.Solution as a compact
// binary record: a tagged union of {Timed, Regular} transition shapes,
// flat row-major bus/team/transition arrays with an explicit row count
// so a consumer can reshape them, and team states stored in a layout
// isomorphic to a tagged union of {kind, index, (dest, elapsed)?}.
//
// There is no magic number and no version field; readers and writers
// must agree on the layout out of band.
package persist
