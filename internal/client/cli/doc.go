// Package cli provides the interactive tokenkeeper command-line client.
//
// It wires configuration, the gRPC client and the local token cache into a
// read-eval-print loop. A background watcher pings the server and the
// prompt shows whether it is reachable; when it is not, "show" answers
// from the cache.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
