// Package gen walks the normalized IR and emits the paint and resize
// bodies of each generated component, plus the member registrations and
// image references the surrounding templating needs.
//
// Generation is a pure, synchronous tree traversal. Statement order is
// load-bearing: shadows precede fills, fills precede strokes, children
// follow their parent, and promoted sub-components are emitted in
// post-order so a child unit exists before anything references it.
// Nothing in this package performs I/O or returns errors; all input
// partiality is resolved by the normalizer.
package gen
