// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gemm

// Element is the constraint for the four element types this engine
// supports: f32, f64, c32 and c64. Go's complex64/complex128 are already
// an interleaved (real, imag) pair of float32/float64, matching the data
// model's "element = two consecutive scalars" rule for complex types, so
// no separate real/imag bookkeeping is needed anywhere in the engine.
type Element interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// conj returns x unchanged for real T, and its complex conjugate for
// complex T. Real kernels never call this with doConj true (the caller
// is responsible for the flags being ignorable for real T), but it is
// defined for all T so the microkernel code can stay generic.
func conj[T Element](x T, doConj bool) T {
	if !doConj {
		return x
	}
	switch v := any(x).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		return x
	}
}

// isZero reports whether x is exactly the zero value of T. Equality with
// zero must be exact (bit-pattern), never within tolerance: alpha == 0
// is a fast-path trigger, not an approximation.
func isZero[T Element](x T) bool {
	var zero T
	return x == zero
}

// Matrix is a strided view over a caller-owned buffer: a base index plus
// independent row and column strides measured in elements. It carries no
// length of its own; bounds come from the (m, n, k) carried by the Plan.
// Negative strides are valid; element (0, 0) lives at Data[Base], not
// necessarily Data[0] — a negative row or column stride means some other
// element has the smallest index into Data, and Base is what lets the
// view still be expressed without slicing Data to a negative offset (not
// possible in Go). The view performs no bounds checking.
type Matrix[T Element] struct {
	Data []T
	Base int // flat index of element (0, 0) within Data
	RS   int // row stride, in elements
	CS   int // column stride, in elements
}

// at returns the flat index of element (i, j) within m.Data.
func (m Matrix[T]) at(i, j int) int {
	return m.Base + i*m.RS + j*m.CS
}

// MicroKernelData is the per-invocation scalar parameter block passed to
// every microkernel. It is generic over T so the same field layout
// serves all four element types.
type MicroKernelData[T Element] struct {
	Alpha, Beta      T
	ConjLHS, ConjRHS bool

	K int // K-extent in elements

	DstCS int // D column stride

	LhsCS int // L column stride; L is assumed MR-contiguous along rows

	RhsRS, RhsCS int // R row and column strides

	// Mask gates which of the mr rows the microkernel stores. Millikernels
	// pass full_mask for interior blocks and last_mask only for M-edge
	// blocks; the microkernel itself is agnostic to which.
	Mask Mask
}
