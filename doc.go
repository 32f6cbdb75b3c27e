// Package tropical is the root of an idempotent-semiring linear algebra
// engine: max-plus, min-plus, max-min, min-max and Boolean arithmetic over
// saturating int32 values, with dense and sparse matrices, Kleene closure,
// tropical eigenvalues and a precedence scheduler built on top.
//
// Subpackages:
//
//	semiring/  - Value, the ±inf sentinels and the five semirings
//	matrix/    - stride-padded Dense, products, powers, closure, mat-vec, path facades, backends
//	sparse/    - CSR storage, triplet builder, sparse products
//	eigen/     - Karp cycle mean, power-iteration eigenvector, critical nodes
//	scheduler/ - precedence fixed point, critical path, cycle time
//	builder/   - deterministic topology generators for matrices and schedules
//	config/    - YAML configuration for backends, solvers and logging
//
// Quick example, the shortest path 0→2 through 1:
//
//	A, _ := matrix.NewZero(3, 3, semiring.MinPlus)
//	_ = A.Set(0, 1, 4)
//	_ = A.Set(1, 2, 3)
//	D, _ := matrix.Closure(A, semiring.MinPlus)
//	d, _ := D.At(0, 2) // 7
//
//	go get github.com/katalvlaran/tropical
package tropical
