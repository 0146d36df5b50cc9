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

// fillMillikernel is used when k = 0: the result is independent of L and
// R, since beta times an empty sum is zero. If alpha is exactly zero, D
// is zeroed; otherwise D is scaled in place by alpha. Always respects
// the caller's strides directly — there is no tiling or masking to do
// since no microkernel is involved.
func fillMillikernel[T Element](
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
	alphaIsZero := isZero(alpha)
	for i := 0; i < p.m; i++ {
		for j := 0; j < p.n; j++ {
			idx := dstBase + i*dstRS + j*dstCS
			if alphaIsZero {
				var zero T
				dst[idx] = zero
			} else {
				dst[idx] = alpha * dst[idx]
			}
		}
	}
}
