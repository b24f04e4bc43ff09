// Package normalize converts raw design-tool nodes into the IR.
//
// The contract is default-or-drop: every optional field has a documented
// default, and entries the IR cannot represent (unknown node kinds,
// unknown paint or effect types, gradients without usable geometry) are
// silently excluded. Normalization never fails; the worst outcome for a
// malformed node is that it contributes nothing.
package normalize
