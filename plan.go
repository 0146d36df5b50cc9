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

// strideWitness is one of the six expected-stride entries a Plan
// carries: either "any stride acceptable" or "caller must match this
// exact stride". This is a plain discriminated union rather than
// reusing an extreme integer value as a sentinel.
type strideWitness struct {
	kind strideKind
	want int // only meaningful when kind == strideExact
}

type strideKind int

const (
	// strideAny means the caller may pass any value for this stride.
	strideAny strideKind = iota
	// strideExact means the caller must pass exactly `want`.
	strideExact
)

func anyStride() strideWitness { return strideWitness{kind: strideAny} }

func exactStride(v int) strideWitness {
	return strideWitness{kind: strideExact, want: v}
}

// unitStride is the exact-stride-of-1 case the column-major constructor
// needs.
func unitStride() strideWitness { return exactStride(1) }

// matches reports whether a caller-supplied stride value satisfies this
// witness.
func (w strideWitness) matches(v int) bool {
	switch w.kind {
	case strideAny:
		return true
	case strideExact:
		return v == w.want
	default:
		return false
	}
}

// Plan is an immutable, precomputed descriptor: it fixes the ISA tier,
// microkernel tile shape, millikernel strategy, edge masks and stride
// expectations for one (type, m, n, k, layout) profile. A Plan carries
// no owned buffers and may be reused and shared read-only across any
// number of Execute calls and goroutines.
type Plan[T Element] struct {
	tier ISATier

	corners cornerTable[T]
	milli   millikernelFunc[T]

	MR, NR int

	fullMask, lastMask Mask

	m, n, k int

	dstRS, dstCS strideWitness
	lhsRS, lhsCS strideWitness
	rhsRS, rhsCS strideWitness
}

// buildShared fills in the fields common to both public constructors:
// ISA tier selection, tile shape, corner table, masks and millikernel
// choice. colMajor selects whether lhs_rs/dst_rs are constrained to 1
// (the "column-major LHS and dst" promise) or left unconstrained.
func buildShared[T Element](m, n, k int, colMajor bool) *Plan[T] {
	p := &Plan[T]{m: m, n: n, k: k}

	switch {
	case m == 0 || n == 0:
		p.milli = noopMillikernel[T]
		p.tier = currentTier
		p.setStrideWitnesses(colMajor)
		return p
	}

	kind := kindOf[T]()
	tier := currentTier
	params, ok := lookupTileParams(kind, tier)

	if !ok {
		// No qualifying SIMD tier: naive millikernel, MR = NR = 0, null
		// masks.
		p.tier = TierScalar
		p.MR, p.NR = 0, 0
		if k == 0 {
			p.milli = fillMillikernel[T]
		} else {
			p.milli = naiveMillikernel[T]
		}
		p.setStrideWitnesses(colMajor)
		return p
	}

	p.tier = tier
	p.MR, p.NR = params.MR, params.NR

	mt := getMaskTable(params.LaneWidth)
	p.fullMask = mt.fullMask()
	p.lastMask = mt.lastMask(m)

	if k > 0 {
		table := buildMicrokernelTable[T](params.LaneWidth, params.MR, params.NR)
		kIndex := k - 1
		if kIndex > maxKUnrollIndex {
			kIndex = maxKUnrollIndex
		}
		maxMRTiles := params.MR / params.LaneWidth
		mrEdgeIndex := ((m - 1) / params.LaneWidth) % maxMRTiles
		nrEdgeIndex := (n - 1) % params.NR

		p.corners[0][0] = table.lookup(kIndex, maxMRTiles-1, params.NR-1)
		p.corners[0][1] = table.lookup(kIndex, maxMRTiles-1, nrEdgeIndex)
		p.corners[1][0] = table.lookup(kIndex, mrEdgeIndex, params.NR-1)
		p.corners[1][1] = table.lookup(kIndex, mrEdgeIndex, nrEdgeIndex)
	}

	switch {
	case k == 0:
		p.milli = fillMillikernel[T]
	case colMajor:
		p.milli = directMillikernel[T]
	default:
		p.milli = copyMillikernel[T]
	}

	p.setStrideWitnesses(colMajor)
	return p
}

// setStrideWitnesses records the six stride expectations. The
// column-major constructor fixes dst_rs = lhs_rs = 1; everything else is
// unconstrained except what the chosen millikernel structurally requires
// (only the direct millikernel has such a requirement, and it is exactly
// the column-major promise already being recorded).
func (p *Plan[T]) setStrideWitnesses(colMajor bool) {
	if colMajor {
		p.dstRS = unitStride()
		p.lhsRS = unitStride()
	} else {
		p.dstRS = anyStride()
		p.lhsRS = anyStride()
	}
	p.dstCS = anyStride()
	p.lhsCS = anyStride()
	p.rhsRS = anyStride()
	p.rhsCS = anyStride()
}

// New builds a Plan with no stride promises: L, R and D may have
// arbitrary (including negative) row and column strides. Chooses the
// copy millikernel on a qualifying SIMD tier (k > 0), since the direct
// millikernel's unit-row-stride precondition cannot be assumed.
func New[T Element](m, n, k int) *Plan[T] {
	return buildShared[T](m, n, k, false)
}

// NewColMajorLhsAndDst builds a Plan that promises row stride 1 on both L
// and D. This unlocks the direct millikernel (no L packing) on a
// qualifying SIMD tier.
func NewColMajorLhsAndDst[T Element](m, n, k int) *Plan[T] {
	return buildShared[T](m, n, k, true)
}
