// Package weigh provides ready-made weight functions for package batch.
//
// Every function returned here is pure and accepts the empty batch, as
// [batch.WeightFunc] requires. [Compressed] measures a batch the way a
// shipper would see it on the wire: the size of the joined elements after
// gzip or zstd compression.
package weigh
