// Package app wires configuration, input loading, splitting and output
// encoding into the one-shot and watch runners used by cmd/listsplit.
package app
