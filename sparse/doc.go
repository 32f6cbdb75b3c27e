// SPDX-License-Identifier: MIT

// Package sparse stores tropical matrices in compressed sparse row (CSR)
// form. Only cells different from the semiring zero need to be stored:
// an absent cell reads as zero, which is exactly "no edge" for path
// problems, so large sparse graphs cost O(nnz) memory.
//
// Layout:
//
//	rowPtr[i] .. rowPtr[i+1]   range of entries in row i
//	colIdx[k]                  column of entry k, ascending within a row
//	values[k]                  value of entry k
//
// A CSR matrix carries its semiring; binary operations require both
// operands to share it. Single-cell updates through Set cost O(nnz);
// bulk construction goes through Builder, which sorts once.
package sparse
