// SPDX-License-Identifier: MIT

// Package semiring defines the scalar layer of the tropical engine: the
// Value type, its two sentinels, and the five idempotent semirings that
// every matrix, vector, eigen and scheduler routine is parameterised by.
//
// A semiring is a pair of operations (⊕, ⊗) with neutral elements
// (Zero, One). Zero is absorbing under ⊗ and neutral under ⊕; One is
// neutral under ⊗.
//
//	variant   ⊕    ⊗    Zero     One
//	MaxPlus   max  +    NegInf   0
//	MinPlus   min  +    PosInf   0
//	MaxMin    max  min  NegInf   PosInf
//	MinMax    min  max  PosInf   NegInf
//	Boolean   or   and  0        1
//
// Arithmetic on finite values saturates: a finite sum that leaves the
// int32 range clamps to the nearest sentinel instead of wrapping.
//
// All operations are pure and allocation-free, so they are safe to call
// from any number of goroutines.
package semiring
