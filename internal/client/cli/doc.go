// Package cli provides the interactive sharefile terminal client.
//
// It wires configuration, the authenticated REST channel, the transfer
// orchestrator and the local history journal, and runs a REPL in which the
// user collects files and recipients and then sends them as one transfer.
// A background watcher pings the server and shows online/offline mode in the
// prompt.
//
// When files are passed on the command line the client runs a single
// transfer instead (see App.RunOnce) and exits with its outcome.
package cli
