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

// directMillikernel is the fast path when strides allow it. Its
// precondition is lhs_rs = 1 and dst_rs = 1 (L and D are column-major
// with unit row stride), which is exactly the promise
// NewColMajorLhsAndDst makes and Execute checks via assertArgs in
// gemmdebug builds (the default build does not check it). It walks
// the M/N tile grid in MR x NR
// steps, selecting one of the Plan's four corner microkernels by whether
// this step is the final (possibly partial) block in each dimension.
//
// Grounded on the register-tile walk in
// hwy/contrib/matmul/matmul_blocked.go (BaseBlockedMatMul), generalized
// from that file's fixed 4-row/2-vector tile and hand-unrolled tail
// handling to a four-corner-kernel table indexed by edge booleans, so
// there is exactly one branch per block instead of a cascade of tail
// loops.
func directMillikernel[T Element](
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
	walkTileGrid(
		p, p.m, p.n, p.k, true, true, true,
		dst, dstBase, dstRS, dstCS,
		lhs, lhsBase, lhsRS, lhsCS,
		rhs, rhsBase, rhsRS, rhsCS,
		alpha, beta, conjLHS, conjRHS,
	)
}

// walkTileGrid is the shared M/N tile walk behind both the direct
// millikernel (one call, covering the whole problem) and the copy
// millikernel (one call per cache block, over that block's local m/n/k
// extent). m, n and k here are the LOCAL extent being walked (the whole
// problem for direct, one block's extent for copy); globalLastM/
// globalLastN say whether this call's final tile in each dimension
// coincides with the Plan's actual global M/N edge (always true for
// direct; only true for a copy block that reaches the real matrix
// boundary). useRealMask controls whether the true corner mask is
// applied on an edge tile or whether full_mask is forced regardless
// (used by copy to keep every K-sub-block but the last one mask-free).
func walkTileGrid[T Element](
	p *Plan[T], m, n, k int, globalLastM, globalLastN, useRealMask bool,
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
	data := MicroKernelData[T]{
		Alpha: alpha, Beta: beta,
		ConjLHS: conjLHS, ConjRHS: conjRHS,
		K:     k,
		DstCS: dstCS,
		LhsCS: lhsCS,
		RhsRS: rhsRS, RhsCS: rhsCS,
	}

	for i := 0; i < m; i += p.MR {
		localMEdge := i+p.MR >= m
		mEdge := localMEdge && globalLastM

		if mEdge && useRealMask {
			data.Mask = p.lastMask
		} else {
			data.Mask = p.fullMask
		}

		for j := 0; j < n; j += p.NR {
			localNEdge := j+p.NR >= n
			nEdge := localNEdge && globalLastN

			mk := p.corners[boolIdx(mEdge)][boolIdx(nEdge)]

			dBase := dstBase + i*dstRS + j*dstCS
			lBase := lhsBase + i*lhsRS
			rBase := rhsBase + j*rhsCS

			mk(&data, dst, dBase, lhs, lBase, rhs, rBase)
		}
	}
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}
