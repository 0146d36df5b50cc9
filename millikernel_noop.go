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

// noopMillikernel is used when m = 0 or n = 0: there is nothing to
// compute or write, so it returns immediately.
func noopMillikernel[T Element](
	p *Plan[T],
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int,
	rhs []T, rhsBase, rhsRS, rhsCS int,
	alpha, beta T, conjLHS, conjRHS bool,
) {
}
