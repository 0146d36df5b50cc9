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

// millikernelFunc is the outer M/N walker's calling convention: it
// computes the full m x n x k update for one Plan, given concrete
// pointers/strides and the operand scalars, by calling microkernels (or,
// for fill/naive/noop, without them) over the tile grid.
//
// Matrices are passed as (slice, base index, row stride, column stride)
// tuples, matching the microkernel ABI's use of a base index rather than
// a re-sliced sub-slice, which is what lets negative strides work.
type millikernelFunc[T Element] func(
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
)
