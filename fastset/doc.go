// Package fastset provides the two membership containers used by the
// dominating-set engine.
//
//   - EpochSet: sparse set over [0,n) with O(1) Insert/Remove/Contains and
//     O(1) Clear. Membership is a per-slot stamp compared against a single
//     generation counter, so clearing never touches the backing array
//     (except on generation overflow). Iteration is not supported.
//
//   - DenseSet[T]: sparse/dense pair over [0,n) with O(1) Insert/Remove/Contains
//     and O(len) iteration. Removal swaps the victim with the last element,
//     so iteration order is unspecified and changes under mutation.
//
// Both containers are sized once at construction; keys outside [0,n) are a
// programmer error and panic with an index-out-of-range runtime error.
//
// Neither type is safe for concurrent use. They are designed for the
// single-threaded search loop in package domset, where every mutation is
// journaled and undone in LIFO order.
//
// Complexity summary:
//
//	EpochSet:  Insert O(1), Remove O(1), Contains O(1), Clear O(1) amortized.
//	DenseSet:  Insert O(1), Remove O(1), Contains O(1), Clear O(len), Values O(1).
package fastset
