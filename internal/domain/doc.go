// Package domain contains the value types the listsplit CLI works with.
//
// It has no dependencies on infrastructure concerns (files, flags, logging).
//
// # Entities
//
//   - [Element]: one input line, with its line number and optional numeric value
//   - [Result]: the batches and ignored elements produced by one split
package domain
