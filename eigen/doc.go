// Package eigen analyses the long-run behaviour of tropical systems
// x(k+1) = A ⊗ x(k) over the additive semirings (max-plus, min-plus).
//
//   - Eigenvalue / CycleMean: the maximum (max-plus) or minimum (min-plus)
//     cycle mean of the weighted digraph of A, by Karp's algorithm.
//   - Eigenvector: normalised power iteration towards v with A ⊗ v = λ ⊗ v.
//   - CriticalNodes: vertices lying on a cycle whose mean equals λ.
//
// Graph convention: A[u][v] is the weight of edge u→v. Cycle means are
// invariant under transposition, so the same λ governs A ⊗ x.
//
// Eigenvalues are integers: a cycle mean is truncated toward zero.
// CycleMean exposes the exact rational when the remainder matters.
//
// Long-running entry points have Context variants that record an
// OpenTelemetry span and stop early on cancellation.
package eigen
