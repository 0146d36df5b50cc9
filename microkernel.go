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

// microkernelFunc is the uniform calling convention shared by every
// microkernel: it reads an MR-contiguous LHS panel and a strided
// RHS panel, accumulates an MR x NR register tile over K, and writes it
// to dst through an alpha/beta blend.
//
// dst, lhs and rhs are passed as (slice, base index) pairs rather than
// re-sliced sub-slices so a single microkernel can be reused unchanged
// by callers that walk negative strides (re-slicing a Go slice to a
// negative offset isn't possible; indexing from a base is).
type microkernelFunc[T Element] func(data *MicroKernelData[T], dst []T, dstBase int, lhs []T, lhsBase int, rhs []T, rhsBase int)

// maxTileRows/maxTileCols bound the register-tile accumulator. The
// widest tile shape among the ISA tiers this repo implements is f32's
// AVX-512 (32, 4); 64 leaves headroom without the accumulator becoming
// an unreasonable stack allocation.
const (
	maxTileRows = 64
	maxTileCols = 64
)

// newMicrokernel returns the microkernel closure for a (mr, nr) tile
// shape. Every entry in the dense microkernel table (microkernel_table.go)
// is built from this one straight-line implementation: unlike a real
// assembly backend, this repo does not hand-unroll a distinct function
// body per k_unroll_index — the K-loop below runs data.K iterations
// regardless of which table slot selected it, which is semantically
// equivalent to unrolling-then-iterating-the-residue.
//
// Reads L as a contiguous-row MR-tile (lhs[i + depth*lhsCS] for i in
// [0,mr)), reads R with explicit row/column strides, applies conjugation
// per the data flags, and writes D with the alpha==0 fast path and
// mask-blended stores on the trailing M-edge. Inactive mask lanes are
// skipped entirely so the underlying memory is left untouched.
func newMicrokernel[T Element](mr, nr, laneWidth int) microkernelFunc[T] {
	// lastTileStart is where the final lane-width-sized register within
	// the mr-row tile begins. data.Mask only ever gates that final
	// register, the trailing M lanes of the MR tile; every earlier
	// register in the tile is always fully active, which is automatically
	// true for interior blocks since their mask is full_mask anyway.
	lastTileStart := mr - laneWidth
	if lastTileStart < 0 {
		lastTileStart = 0
	}

	return func(data *MicroKernelData[T], dst []T, dstBase int, lhs []T, lhsBase int, rhs []T, rhsBase int) {
		var acc [maxTileRows][maxTileCols]T
		var active [maxTileRows]bool
		for i := 0; i < mr; i++ {
			if i < lastTileStart {
				active[i] = true
			} else {
				active[i] = data.Mask.get(i - lastTileStart)
			}
		}

		for depth := 0; depth < data.K; depth++ {
			for i := 0; i < mr; i++ {
				if !active[i] {
					continue
				}
				l := conj(lhs[lhsBase+i+depth*data.LhsCS], data.ConjLHS)
				for j := 0; j < nr; j++ {
					r := conj(rhs[rhsBase+depth*data.RhsRS+j*data.RhsCS], data.ConjRHS)
					acc[i][j] += l * r
				}
			}
		}

		alphaIsZero := isZero(data.Alpha)
		for i := 0; i < mr; i++ {
			if !active[i] {
				continue
			}
			for j := 0; j < nr; j++ {
				idx := dstBase + i + j*data.DstCS
				product := data.Beta * acc[i][j]
				if alphaIsZero {
					dst[idx] = product
				} else {
					dst[idx] = data.Alpha*dst[idx] + product
				}
			}
		}
	}
}

// cornerTable is the 2x2 table of microkernel function pointers a Plan
// carries, indexed by [isMEdge][isNEdge].
type cornerTable[T Element] [2][2]microkernelFunc[T]
