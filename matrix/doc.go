// Package matrix implements dense tropical linear algebra: stride-padded
// storage, semiring products and powers, Kleene closure, matrix-vector
// iteration, and the classic path problems expressed through them.
//
// Every operation takes the semiring explicitly:
//
//	A, _ := matrix.NewZero(3, 3, semiring.MinPlus)
//	_ = A.Set(0, 1, 4)
//	_ = A.Set(1, 2, 3)
//	D, _ := matrix.Closure(A, semiring.MinPlus) // D[0][2] == 7
//
// Storage is row-major with each row padded to a multiple of four cells.
// Padding is never visible through At, Row, Equal or String.
//
// Work is scheduled by a Backend. Scalar runs inline; Parallel splits
// output rows across goroutines and yields bit-identical results.
// Select one per call with WithBackend, or process-wide with
// SetDefaultBackend.
package matrix
