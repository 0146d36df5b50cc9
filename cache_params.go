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

// typeKind identifies which of the four element types a Plan is for.
// Plan builders are generic over Element, but the MR/NR/lane_width table
// below is keyed on the concrete type, so a small runtime tag is used
// instead of trying to dispatch on the type parameter directly.
type typeKind int

const (
	kindF32 typeKind = iota
	kindF64
	kindC32
	kindC64
)

func kindOf[T Element]() typeKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return kindF32
	case float64:
		return kindF64
	case complex64:
		return kindC32
	case complex128:
		return kindC64
	default:
		panic("gemm: unreachable element kind")
	}
}

// tileParams is the register-tile shape for one (type, ISA tier) pair:
// MR and NR, and the lane width used to compute mr_edge_index/mask
// remainders.
type tileParams struct {
	MR, NR    int
	LaneWidth int
}

// tileTable holds the (MR, NR, lane_width) the Plan builder reads for
// every (typeKind, ISATier) combination this core implements. NEON is
// sized relative to AVX2 by halving both lane width and MR, so MR/lane_width
// stays the same.
var tileTable = map[typeKind]map[ISATier]tileParams{
	kindF32: {
		TierAVX2:   {MR: 16, NR: 4, LaneWidth: 8},
		TierAVX512: {MR: 32, NR: 4, LaneWidth: 16},
		TierNEON:   {MR: 8, NR: 4, LaneWidth: 4},
	},
	kindF64: {
		TierAVX2:   {MR: 8, NR: 4, LaneWidth: 4},
		TierAVX512: {MR: 16, NR: 4, LaneWidth: 8},
		TierNEON:   {MR: 4, NR: 4, LaneWidth: 2},
	},
	kindC32: {
		TierAVX2:   {MR: 8, NR: 2, LaneWidth: 4},
		TierAVX512: {MR: 16, NR: 2, LaneWidth: 8},
		TierNEON:   {MR: 4, NR: 2, LaneWidth: 2},
	},
	kindC64: {
		TierAVX2:   {MR: 4, NR: 2, LaneWidth: 2},
		TierAVX512: {MR: 8, NR: 2, LaneWidth: 4},
		TierNEON:   {MR: 2, NR: 2, LaneWidth: 1},
	},
}

// lookupTileParams returns the tile shape for a (typeKind, tier) pair and
// whether a qualifying SIMD tier exists. TierScalar never has an entry:
// callers must check tier != TierScalar first (or rely on ok being false).
func lookupTileParams(kind typeKind, tier ISATier) (tileParams, bool) {
	if tier == TierScalar {
		return tileParams{}, false
	}
	byTier, ok := tileTable[kind]
	if !ok {
		return tileParams{}, false
	}
	p, ok := byTier[tier]
	return p, ok
}
