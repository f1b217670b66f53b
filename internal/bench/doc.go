// Package bench runs a batch of solver configurations concurrently and
// collects their results: one goroutine per config, fanned in with
// channerics.Merge. The solver itself stays single-threaded; only
// independent solves run in parallel.
package bench
