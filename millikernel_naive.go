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

// naiveMillikernel is the scalar fallback used when no SIMD ISA tier is
// available. It implements the triple-nested loop directly, with
// the same alpha == 0 fast path the microkernel ABI uses, and does not
// tile or mask; MR and NR are unused (the Plan leaves them at 0).
//
// Grounded on the matmulScalar/matmulScalar64 reference implementations
// in hwy/contrib/matmul/matmul_base.go, generalized from dense row-major
// to arbitrary strides and from real-only to the conjugation-aware
// Element constraint.
func naiveMillikernel[T Element](
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
	alphaIsZero := isZero(alpha)
	for i := 0; i < p.m; i++ {
		for j := 0; j < p.n; j++ {
			var acc T
			for d := 0; d < p.k; d++ {
				l := conj(lhs[lhsBase+i*lhsRS+d*lhsCS], conjLHS)
				r := conj(rhs[rhsBase+d*rhsRS+j*rhsCS], conjRHS)
				acc += l * r
			}
			idx := dstBase + i*dstRS + j*dstCS
			product := beta * acc
			if alphaIsZero {
				dst[idx] = product
			} else {
				dst[idx] = alpha*dst[idx] + product
			}
		}
	}
}
