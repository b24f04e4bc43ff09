// Package ir defines the normalized design-node tree consumed by the
// paint and resize generators.
//
// The IR is target-framework-agnostic: heterogeneous design-tool schemas
// are reduced to a small closed set of node kinds (frame, group,
// rectangle, ellipse, text, vector) with fully resolved geometry.
// Tagged unions are sealed interfaces with marker methods, so adding a
// kind forces a compile-time audit of every consumer.
//
// A node owns its descendants and their fills, strokes and effects by
// value. The tree is built once by the normalizer, is never a DAG, and
// is read-only for every generator pass; it can be walked by multiple
// passes without synchronization.
package ir
