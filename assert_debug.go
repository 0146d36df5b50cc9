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

//go:build gemmdebug

package gemm

import "fmt"

// assertArgs panics if the caller's shape or strides contradict the Plan
// it is about to drive. These are precondition violations, not runtime
// data errors, so they panic rather than returning an error. Built only
// with -tags=gemmdebug; see assert_release.go for the default no-op.
func assertArgs[T Element](p *Plan[T], m, n, k int, dst, lhs, rhs Matrix[T]) {
	if m != p.m || n != p.n || k != p.k {
		panic(fmt.Sprintf("gemm: Execute shape (%d,%d,%d) does not match Plan shape (%d,%d,%d)", m, n, k, p.m, p.n, p.k))
	}
	if !p.dstRS.matches(dst.RS) {
		panic(fmt.Sprintf("gemm: dst row stride %d violates Plan's stride promise", dst.RS))
	}
	if !p.dstCS.matches(dst.CS) {
		panic(fmt.Sprintf("gemm: dst column stride %d violates Plan's stride promise", dst.CS))
	}
	if !p.lhsRS.matches(lhs.RS) {
		panic(fmt.Sprintf("gemm: lhs row stride %d violates Plan's stride promise", lhs.RS))
	}
	if !p.lhsCS.matches(lhs.CS) {
		panic(fmt.Sprintf("gemm: lhs column stride %d violates Plan's stride promise", lhs.CS))
	}
	if !p.rhsRS.matches(rhs.RS) {
		panic(fmt.Sprintf("gemm: rhs row stride %d violates Plan's stride promise", rhs.RS))
	}
	if !p.rhsCS.matches(rhs.CS) {
		panic(fmt.Sprintf("gemm: rhs column stride %d violates Plan's stride promise", rhs.CS))
	}
}
