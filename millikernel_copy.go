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

// copyBlock bounds the (m, n, k) cache-tile copy millikernel packs into
// stack-sized scratch buffers at a time. 32 matches the widest MR the
// tile tables ever hand out (f32 AVX-512's MR = 32), so a block's L
// panel always holds a whole number of register tiles.
const copyBlock = 32

// copyMillikernel is used whenever the direct millikernel's unit-row-
// stride precondition cannot be assumed. It tiles the problem into
// copyBlock x copyBlock x copyBlock blocks, packs D and the L panel for
// one block into unit-row-stride scratch buffers, runs the same tile
// walk the direct millikernel uses against those buffers (R is read
// directly through its own strides throughout — R is never packed),
// and writes the scratch D block back through the caller's real
// strides once all of that block's K-sub-blocks have been folded in.
//
// Grounded on packing.go's BasePackLHS (K-first micro-panel packing of
// an LHS block into a dense buffer) and matmul_blocked.go's BlockSize
// cache-tiling loop nest, adapted from a fixed panel size to a three-way
// (m, n, k) block and from repacking both operands to packing only L, to
// match the invariant that R is addressed through explicit row/column
// strides and is never packed.
func copyMillikernel[T Element](
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
	one := T(1)

	for i0 := 0; i0 < p.m; i0 += copyBlock {
		bm := copyBlock
		if p.m-i0 < bm {
			bm = p.m - i0
		}
		globalLastM := i0+bm >= p.m

		for j0 := 0; j0 < p.n; j0 += copyBlock {
			bn := copyBlock
			if p.n-j0 < bn {
				bn = p.n - j0
			}
			globalLastN := j0+bn >= p.n

			var tempDst [copyBlock * copyBlock]T
			for r := 0; r < bm; r++ {
				for c := 0; c < bn; c++ {
					tempDst[r+c*copyBlock] = dst[dstBase+(i0+r)*dstRS+(j0+c)*dstCS]
				}
			}

			blockAlpha := alpha
			for k0 := 0; k0 < p.k; k0 += copyBlock {
				bk := copyBlock
				if p.k-k0 < bk {
					bk = p.k - k0
				}
				isLastK := k0+bk >= p.k

				var tempLhs [copyBlock * copyBlock]T
				for r := 0; r < bm; r++ {
					for d := 0; d < bk; d++ {
						tempLhs[r+d*copyBlock] = lhs[lhsBase+(i0+r)*lhsRS+(k0+d)*lhsCS]
					}
				}

				blockRhsBase := rhsBase + k0*rhsRS + j0*rhsCS

				walkTileGrid(
					p, bm, bn, bk, globalLastM, globalLastN, isLastK,
					tempDst[:], 0, 1, copyBlock,
					tempLhs[:], 0, 1, copyBlock,
					rhs, blockRhsBase, rhsRS, rhsCS,
					blockAlpha, beta, conjLHS, conjRHS,
				)

				blockAlpha = one
			}

			for r := 0; r < bm; r++ {
				for c := 0; c < bn; c++ {
					dst[dstBase+(i0+r)*dstRS+(j0+c)*dstCS] = tempDst[r+c*copyBlock]
				}
			}
		}
	}
}
