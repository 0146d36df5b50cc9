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

// Execute runs D <- alpha*D + beta*op_l(L)*op_r(R) for the given Plan.
// m, n and k must match the values the Plan was built with, and
// dst/lhs/rhs strides must satisfy whatever the Plan's witnesses
// require. Callers that already hold a validated Plan and matching
// buffers are expected to call this directly in hot loops; Execute
// itself only re-checks cheaply (assertArgs, gated behind the
// gemmdebug build tag — see assert_debug.go/assert_release.go),
// panicking on a violated precondition rather than returning an error
// from a hot path.
//
// dst, lhs and rhs are independently-strided views; their Data slices
// must be long enough to cover every index the Plan's millikernel touches
// for the given m, n, k and strides. Negative strides are legal: Base
// is the flat index of element (0, 0), which need not be 0 when either
// stride is negative.
func Execute[T Element](
	p *Plan[T],
	m, n, k int,
	dst Matrix[T],
	lhs Matrix[T], conjLHS bool,
	rhs Matrix[T], conjRHS bool,
	alpha, beta T,
) {
	assertArgs(p, m, n, k, dst, lhs, rhs)

	p.milli(
		p,
		dst.Data, dst.at(0, 0), dst.RS, dst.CS,
		lhs.Data, lhs.at(0, 0), lhs.RS, lhs.CS,
		rhs.Data, rhs.at(0, 0), rhs.RS, rhs.CS,
		alpha, beta, conjLHS, conjRHS,
	)
}
