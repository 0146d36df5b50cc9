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

import "github.com/samber/lo"

// maxKUnrollIndex is the highest k_unroll_index: k_index = min(k-1, 16),
// so the table's K dimension has 17 slots (0..16).
const maxKUnrollIndex = 16

// microkernelTable is the dense 3-D lookup table
// MICROKERNELS[k_unroll_index][mr_tiles-1][nr_tiles-1], normally
// produced by an offline generator; this repo builds it in-process
// instead. Every slot is populated, even though in this single-ISA-tier
// implementation every k_unroll_index resolves to the same loop body
// (newMicrokernel iterates data.K directly rather than being
// hand-unrolled per slot — see microkernel.go).
type microkernelTable[T Element] struct {
	laneWidth  int
	maxMRTiles int // MR / laneWidth
	maxNR      int
	entries    [][][]microkernelFunc[T] // [kIndex][mrTilesIdx][nrTilesIdx]
}

// buildMicrokernelTable populates the full (k_unroll_index, mr_tiles,
// nr_tiles) keyspace for a given tile shape. mr_tiles ranges over
// [1, MR/laneWidth]; nr_tiles ranges over [1, NR].
func buildMicrokernelTable[T Element](laneWidth, MR, NR int) *microkernelTable[T] {
	maxMRTiles := MR / laneWidth

	entries := make([][][]microkernelFunc[T], maxKUnrollIndex+1)
	for _, kIndex := range lo.Range(maxKUnrollIndex + 1) {
		rows := make([][]microkernelFunc[T], maxMRTiles)
		for _, mrTilesIdx := range lo.Range(maxMRTiles) {
			cols := make([]microkernelFunc[T], NR)
			for _, nrTilesIdx := range lo.Range(NR) {
				mr := (mrTilesIdx + 1) * laneWidth
				nr := nrTilesIdx + 1
				cols[nrTilesIdx] = newMicrokernel[T](mr, nr, laneWidth)
			}
			rows[mrTilesIdx] = cols
		}
		entries[kIndex] = rows
	}

	return &microkernelTable[T]{
		laneWidth:  laneWidth,
		maxMRTiles: maxMRTiles,
		maxNR:      NR,
		entries:    entries,
	}
}

// lookup returns MICROKERNELS[kIndex][mrTilesIdx][nrTilesIdx]. mrTilesIdx
// and nrTilesIdx are zero-based (mr_tiles-1, nr_tiles-1 in spec terms).
func (t *microkernelTable[T]) lookup(kIndex, mrTilesIdx, nrTilesIdx int) microkernelFunc[T] {
	return t.entries[kIndex][mrTilesIdx][nrTilesIdx]
}
