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

// Package gemm implements the three-level kernel hierarchy behind a dense
// general matrix-matrix multiply:
//
//	D <- alpha*D + beta*op_l(L)*op_r(R)
//
// for float32, float64, complex64 and complex128 operands, where op_l/op_r
// are either the identity or complex conjugation.
//
// Layer 1 is a family of microkernels: straight-line routines that compute
// one MR x NR register tile for a fixed K. Layer 2 is a small family of
// millikernels that walk the M/N tile grid and dispatch microkernels.
// Layer 3 is a Plan: an immutable descriptor that picks the ISA tier,
// tile shape, millikernel strategy, edge masks and stride expectations for
// a given (element type, shape, layout).
//
// A caller builds a Plan once per (type, shape, layout) and reuses it
// across any number of Execute calls with concrete pointers and strides.
// Built with the gemmdebug tag, Execute checks shapes and strides against
// the Plan and panics on a mismatch; the default build skips these checks,
// and a mismatch there is undefined behavior.
//
// Example usage:
//
//	p := gemm.New[float32](m, n, k)
//	gemm.Execute(p, m, n, k,
//		gemm.Matrix[float32]{Data: d, RS: dstRS, CS: dstCS},
//		gemm.Matrix[float32]{Data: l, RS: lhsRS, CS: lhsCS}, false,
//		gemm.Matrix[float32]{Data: r, RS: rhsRS, CS: rhsCS}, false,
//		alpha, beta)
package gemm
