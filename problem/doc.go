// Package problem is the external scenario input contract: it
// resolves a scenario description (buses with failure probabilities
// and coordinates, branches, resources, teams given by bus index or
// by coordinates that become synthetic start nodes, an optimization
// selection, and an optional horizon or pfo override) into a
// graph.Graph and a starting team configuration, and wires the
// resulting graph through explore, policy, and solution to produce a
// complete solve.
//
// The solver packages below never touch raw scenario data; problem is
// the boundary where coordinates become travel times (great-circle
// distance, rounded up, minimum 1) and optimization names become
// concrete strategy values.
package problem
