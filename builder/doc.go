// SPDX-License-Identifier: MIT

// Package builder generates weighted directed topologies as tropical
// matrices, sparse CSR matrices, or ready-to-solve schedules.
//
// A Constructor describes a topology (Cycle, Path, Star, Wheel, Complete,
// CompleteBipartite, Grid, RandomSparse). A Build* entry point resolves the
// BuilderOptions once and runs the constructors in order against one target:
//
//	A, err := builder.Build(6, semiring.MaxPlus,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//		builder.Cycle(6),
//		builder.RandomSparse(6, 0.2),
//	)
//
// Edge u→v with weight w lands in A[u][v] through ⊕, so composing
// constructors keeps the best weight per pair. WithSymmetric mirrors each
// edge. Every constructor is deterministic for a fixed seed and call order.
package builder
