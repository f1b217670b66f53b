// Package monitor exposes a read-only websocket endpoint that streams
// explore.Snapshot progress events to connected clients: one goroutine
// serializes writes to the connection, a ticker-driven ping keeps the
// connection alive, and updates arriving faster than pubResolution are
// dropped since a Snapshot is idempotent (the latest one fully
// describes progress).
package monitor
