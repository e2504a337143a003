// Package server wires and runs the transport servers of the ledger node.
//
// It runs the HTTP and gRPC servers next to the background workers and
// handles stop signals and graceful shutdown of all of them.
package server
