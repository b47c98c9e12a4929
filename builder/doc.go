// Package builder provides deterministic fixture graphs for the solver,
// built through core.Builder with functional options.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...): resolves options once and applies
//     constructors in order against a fresh core.Builder.
//   - Topology constructors (impl_*.go):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, RandomRegular.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and bipartite prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Validation helpers:
//     – validateMin, validatePartition, validateProbability.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     labels, vertex indices and adjacency order.
//   - Composition: constructors share one label namespace, so reusing a label
//     in a later constructor connects to the existing vertex.
//   - Structured runtime errors wrapping package sentinels (errors.Is).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// Known domination numbers of the fixtures (used by tests):
//
//	Path(n), Cycle(n)     ⌈n/3⌉
//	Star, Wheel, Complete 1
//	K_{m,n}, m,n ≥ 2       2
package builder
