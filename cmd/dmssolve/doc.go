// Command dmssolve loads a power-distribution restoration scenario from
// a YAML file, solves it, and prints a summary to stdout (and, with
// -out, also persists the full solution to a binary file via the persist
// package). A malformed scenario or solve failure prints its message
// to stderr and exits with a non-zero status; nothing else in the
// solver logs.
package main
