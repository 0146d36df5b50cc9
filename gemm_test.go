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

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// refExecute computes D <- alpha*D + beta*op_l(L)*op_r(R) directly from
// a dense triple loop, independent of any millikernel. Used as the
// oracle every seed scenario is checked against. dstBase/lhsBase/rhsBase
// are the flat index of each operand's (0, 0) element, matching
// Matrix.Base; they are nonzero whenever a negative stride makes (0, 0)
// land somewhere other than index 0.
func refExecute[T Element](
	m, n, k int,
	dst []T, dstBase, dstRS, dstCS int,
	lhs []T, lhsBase, lhsRS, lhsCS int, conjLHS bool,
	rhs []T, rhsBase, rhsRS, rhsCS int, conjRHS bool,
	alpha, beta T,
) []T {
	out := append([]T(nil), dst...)
	alphaIsZero := isZero(alpha)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var acc T
			for d := 0; d < k; d++ {
				l := conj(lhs[lhsBase+i*lhsRS+d*lhsCS], conjLHS)
				r := conj(rhs[rhsBase+d*rhsRS+j*rhsCS], conjRHS)
				acc += l * r
			}
			idx := dstBase + i*dstRS + j*dstCS
			product := beta * acc
			if alphaIsZero {
				out[idx] = product
			} else {
				out[idx] = alpha*out[idx] + product
			}
		}
	}
	return out
}

func maxAbsF32(data []float32) float64 {
	var m float64
	for _, v := range data {
		if a := math.Abs(float64(v)); a > m {
			m = a
		}
	}
	return m
}

func maxAbsF64(data []float64) float64 {
	var m float64
	for _, v := range data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func randF32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rand.Float32()*2 - 1
	}
	return out
}

func randC64(n int) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rand.Float32()*2-1, rand.Float32()*2-1)
	}
	return out
}

// withTier forces currentTier for the duration of fn, then restores it.
// currentTier is set once at init() from real CPU detection; tests
// override it directly (same package) so every ISA tier's code paths run
// regardless of which machine CI happens to land on.
func withTier(t *testing.T, tier ISATier, fn func()) {
	t.Helper()
	prev := currentTier
	currentTier = tier
	defer func() { currentTier = prev }()
	fn()
}

// seedScenario1 is spec scenario 1: f32, m=31, n=4, k=8, D column-major
// with row stride 1 and col stride 31, alpha=1, beta=2.5, D prefilled
// with zero.
func TestSeedScenario1(t *testing.T) {
	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 31, 4, 8
				lhs := randF32(m * k) // column-major (1, m)
				rhs := randF32(k * n) // column-major (1, k)
				dst := make([]float32, m*n)

				want := refExecute(m, n, k, dst, 0, 1, m, lhs, 0, 1, m, false, rhs, 0, 1, k, false, 1, 2.5)

				p := NewColMajorLhsAndDst[float32](m, n, k)
				got := append([]float32(nil), dst...)
				Execute(p, m, n, k,
					Matrix[float32]{Data: got, RS: 1, CS: m},
					Matrix[float32]{Data: lhs, RS: 1, CS: m}, false,
					Matrix[float32]{Data: rhs, RS: 1, CS: k}, false,
					1, 2.5,
				)

				diff := make([]float32, len(got))
				for i := range got {
					diff[i] = got[i] - want[i]
				}
				if maxAbsF32(diff) > 1e-5 {
					t.Fatalf("tier %s: max abs diff %v exceeds tolerance\ngot:  %v\nwant: %v", tier, maxAbsF32(diff), got, want)
				}
			})
		})
	}
}

// seedScenario2 is spec scenario 2: c64, m=n=k=4, three alpha values,
// random complex entries, column-major throughout.
func TestSeedScenario2(t *testing.T) {
	m, n, k := 4, 4, 4
	lhs := randC64(m * k)
	rhs := randC64(k * n)
	dst0 := randC64(m * n)

	alphas := []complex64{0, 1, complex64(complex(2.7, 3.7))}
	beta := complex64(complex(2.5, 0))

	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		for _, alpha := range alphas {
			withTier(t, tier, func() {
				want := refExecute(m, n, k, dst0, 0, 1, m, lhs, 0, 1, m, false, rhs, 0, 1, k, false, alpha, beta)

				p := NewColMajorLhsAndDst[complex64](m, n, k)
				got := append([]complex64(nil), dst0...)
				Execute(p, m, n, k,
					Matrix[complex64]{Data: got, RS: 1, CS: m},
					Matrix[complex64]{Data: lhs, RS: 1, CS: m}, false,
					Matrix[complex64]{Data: rhs, RS: 1, CS: k}, false,
					alpha, beta,
				)

				for i := range got {
					if d := cmplx.Abs(complex128(got[i] - want[i])); d > 1e-5 {
						t.Fatalf("tier %s alpha %v: cell %d = %v, want %v", tier, alpha, i, got[i], want[i])
					}
				}
			})
		}
	}
}

// seedScenario3 is spec scenario 3: f32, m=31, n=4, k=8, non-unit and
// non-matching strides on D and L, R column-major (the general Plan, not
// the column-major one).
func TestSeedScenario3NonUnitStrides(t *testing.T) {
	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 31, 4, 8
				dstRS, dstCS := 3, 44
				lhsRS, lhsCS := 2, 33
				rhsRS, rhsCS := 1, k // rhs column-major

				lhs := randF32(m * lhsRS + k*lhsCS)
				rhs := randF32(k*rhsRS + n*rhsCS)
				dst := randF32(m*dstRS + n*dstCS)

				want := refExecute(m, n, k, dst, 0, dstRS, dstCS, lhs, 0, lhsRS, lhsCS, false, rhs, 0, rhsRS, rhsCS, false, 1, 2.5)

				p := New[float32](m, n, k)
				got := append([]float32(nil), dst...)
				Execute(p, m, n, k,
					Matrix[float32]{Data: got, RS: dstRS, CS: dstCS},
					Matrix[float32]{Data: lhs, RS: lhsRS, CS: lhsCS}, false,
					Matrix[float32]{Data: rhs, RS: rhsRS, CS: rhsCS}, false,
					1, 2.5,
				)

				diff := make([]float32, len(got))
				for i := range got {
					diff[i] = got[i] - want[i]
				}
				if maxAbsF32(diff) > 1e-5 {
					t.Fatalf("tier %s: max abs diff %v exceeds tolerance", tier, maxAbsF32(diff))
				}
			})
		})
	}
}

// seedScenario4 is spec scenario 4: c32, m=7, n=2, k=3, every conjugation
// combination.
func TestSeedScenario4Conjugation(t *testing.T) {
	m, n, k := 7, 2, 3
	lhs := make([]complex64, m*k)
	rhs := make([]complex64, k*n)
	for i := range lhs {
		lhs[i] = complex(rand.Float32()*2-1, rand.Float32()*2-1)
	}
	for i := range rhs {
		rhs[i] = complex(rand.Float32()*2-1, rand.Float32()*2-1)
	}
	dst0 := make([]complex64, m*n)
	for i := range dst0 {
		dst0[i] = complex(rand.Float32()*2-1, rand.Float32()*2-1)
	}

	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		for _, conjLHS := range []bool{false, true} {
			for _, conjRHS := range []bool{false, true} {
				withTier(t, tier, func() {
					want := refExecute(m, n, k, dst0, 0, 1, m, lhs, 0, 1, m, conjLHS, rhs, 0, 1, k, conjRHS, 1, 2.5)

					p := NewColMajorLhsAndDst[complex64](m, n, k)
					got := append([]complex64(nil), dst0...)
					Execute(p, m, n, k,
						Matrix[complex64]{Data: got, RS: 1, CS: m},
						Matrix[complex64]{Data: lhs, RS: 1, CS: m}, conjLHS,
						Matrix[complex64]{Data: rhs, RS: 1, CS: k}, conjRHS,
						1, 2.5,
					)

					for i := range got {
						if d := cmplx.Abs(complex128(got[i] - want[i])); d > 1e-5 {
							t.Fatalf("tier %s conjL=%v conjR=%v: cell %d = %v, want %v", tier, conjLHS, conjRHS, i, got[i], want[i])
						}
					}
				})
			}
		}
	}
}

// seedScenario5: k = 0 and alpha = 0 leaves D all zeros.
func TestSeedScenario5KZeroAlphaZero(t *testing.T) {
	m, n, k := 5, 3, 0
	dst := randF32(m * n)
	lhs := randF32(1)
	rhs := randF32(1)

	p := New[float32](m, n, k)
	got := append([]float32(nil), dst...)
	Execute(p, m, n, k,
		Matrix[float32]{Data: got, RS: n, CS: 1},
		Matrix[float32]{Data: lhs, RS: 1, CS: 1}, false,
		Matrix[float32]{Data: rhs, RS: 1, CS: 1}, false,
		0, 2.5,
	)

	for i, v := range got {
		if v != 0 {
			t.Fatalf("cell %d = %v, want 0", i, v)
		}
	}
}

// seedScenario5b: k = 0 and alpha != 0 writes alpha*D regardless of beta.
func TestKZeroAlphaNonZero(t *testing.T) {
	m, n, k := 5, 3, 0
	dst := randF32(m * n)
	lhs := randF32(1)
	rhs := randF32(1)

	p := New[float32](m, n, k)
	got := append([]float32(nil), dst...)
	Execute(p, m, n, k,
		Matrix[float32]{Data: got, RS: n, CS: 1},
		Matrix[float32]{Data: lhs, RS: 1, CS: 1}, false,
		Matrix[float32]{Data: rhs, RS: 1, CS: 1}, false,
		2, 2.5,
	)

	for i, v := range got {
		want := 2 * dst[i]
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Fatalf("cell %d = %v, want %v", i, v, want)
		}
	}
}

// seedScenario6: m = 0 or n = 0 leaves D untouched.
func TestSeedScenario6ZeroDimNoop(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}} {
		m, n := dims[0], dims[1]
		k := 4
		dst := randF32(8)
		want := append([]float32(nil), dst...)
		lhs := randF32(1)
		rhs := randF32(1)

		p := New[float32](m, n, k)
		got := append([]float32(nil), dst...)
		Execute(p, m, n, k,
			Matrix[float32]{Data: got, RS: 1, CS: 1},
			Matrix[float32]{Data: lhs, RS: 1, CS: 1}, false,
			Matrix[float32]{Data: rhs, RS: 1, CS: 1}, false,
			1, 2.5,
		)

		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("m=%d n=%d: cell %d mutated: %v -> %v", m, n, i, want[i], got[i])
			}
		}
	}
}

// TestEdgeMaskUnchanged verifies the M-edge masking invariant directly:
// lanes beyond the actual M-edge within the trailing MR tile must be left
// byte-for-byte unchanged, not merely numerically close. Uses an m that is
// not a multiple of any tile's lane width so the edge path is exercised on
// every tier.
func TestEdgeMaskUnchanged(t *testing.T) {
	for _, tier := range []ISATier{TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 19, 3, 5
				lhs := randF32(m * k)
				rhs := randF32(k * n)

				// Pad D beyond the logical m so we can tell whether a write
				// past the logical boundary ever happens; the Plan/Execute
				// pair is only ever told about m rows, so any write to
				// sentinel rows would be a bug regardless of masking.
				sentinel := float32(12345)
				dst := make([]float32, (m+1)*n)
				for i := m * n; i < len(dst); i++ {
					dst[i] = sentinel
				}

				p := NewColMajorLhsAndDst[float32](m, n, k)
				Execute(p, m, n, k,
					Matrix[float32]{Data: dst, RS: 1, CS: m},
					Matrix[float32]{Data: lhs, RS: 1, CS: m}, false,
					Matrix[float32]{Data: rhs, RS: 1, CS: k}, false,
					1, 2.5,
				)

				for i := m * n; i < len(dst); i++ {
					if dst[i] != sentinel {
						t.Fatalf("write past logical m at index %d: %v (want untouched %v)", i, dst[i], sentinel)
					}
				}
			})
		})
	}
}

// TestDirectAndCopyAgree checks that the general plan (copy millikernel on
// a SIMD tier) matches the column-major plan (direct millikernel) when both
// are given the same dense column-major data and strides.
func TestDirectAndCopyAgree(t *testing.T) {
	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 37, 5, 11
				lhs := randF32(m * k) // column-major (1, m)
				rhs := randF32(k * n) // column-major (1, k)
				dst := randF32(m * n)

				pCol := NewColMajorLhsAndDst[float32](m, n, k)
				gotCol := append([]float32(nil), dst...)
				Execute(pCol, m, n, k,
					Matrix[float32]{Data: gotCol, RS: 1, CS: m},
					Matrix[float32]{Data: lhs, RS: 1, CS: m}, false,
					Matrix[float32]{Data: rhs, RS: 1, CS: k}, false,
					1, 2.5,
				)

				pGen := New[float32](m, n, k)
				gotGen := append([]float32(nil), dst...)
				Execute(pGen, m, n, k,
					Matrix[float32]{Data: gotGen, RS: 1, CS: m},
					Matrix[float32]{Data: lhs, RS: 1, CS: m}, false,
					Matrix[float32]{Data: rhs, RS: 1, CS: k}, false,
					1, 2.5,
				)

				diff := make([]float32, len(gotGen))
				for i := range gotGen {
					diff[i] = gotGen[i] - gotCol[i]
				}
				if maxAbsF32(diff) > 1e-5 {
					t.Fatalf("tier %s: general plan disagrees with column-major plan, max diff %v", tier, maxAbsF32(diff))
				}
			})
		})
	}
}

// TestNegativeRhsStride exercises a negative column stride on R, whose
// minimum linear index falls below R's (0, 0) element: element (0, n-1)
// lands at index (n-1)*rhsCS < 0 relative to (0, 0). Matrix.Base records
// where (0, 0) actually lives in Data, which is what makes this view
// expressible at all (slicing Data to a negative offset isn't possible).
// Checked against a trusted dense forward copy of the same logical R, on
// both the direct millikernel (NewColMajorLhsAndDst) and the copy
// millikernel (New).
func TestNegativeRhsStride(t *testing.T) {
	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 9, 5, 6
				lhs := randF32(m * k) // column-major (1, m)
				dst := randF32(m * n)

				// rhsPhysical stores columns in reverse logical order:
				// physical column c holds logical column n-1-c.
				rhsPhysical := randF32(k * n)
				rhsForward := make([]float32, k*n)
				for j := 0; j < n; j++ {
					copy(rhsForward[j*k:(j+1)*k], rhsPhysical[(n-1-j)*k:(n-j)*k])
				}

				want := refExecute(m, n, k, dst, 0, 1, m, lhs, 0, 1, m, false, rhsForward, 0, 1, k, false, 1, 2.5)

				rhsBase := (n - 1) * k
				rhsRS, rhsCS := 1, -k

				for _, colMajor := range []bool{true, false} {
					var p *Plan[float32]
					if colMajor {
						p = NewColMajorLhsAndDst[float32](m, n, k)
					} else {
						p = New[float32](m, n, k)
					}
					got := append([]float32(nil), dst...)
					Execute(p, m, n, k,
						Matrix[float32]{Data: got, RS: 1, CS: m},
						Matrix[float32]{Data: lhs, RS: 1, CS: m}, false,
						Matrix[float32]{Data: rhsPhysical, Base: rhsBase, RS: rhsRS, CS: rhsCS}, false,
						1, 2.5,
					)

					diff := make([]float32, len(got))
					for i := range got {
						diff[i] = got[i] - want[i]
					}
					if maxAbsF32(diff) > 1e-5 {
						t.Fatalf("tier %s colMajor=%v: max abs diff %v exceeds tolerance", tier, colMajor, maxAbsF32(diff))
					}
				}
			})
		})
	}
}

// TestCopyMillikernelCrossKBlock forces k well past copyBlock (32) so the
// copy millikernel's cross-K-block accumulation (blockAlpha reset to 1
// after the first K-sub-block) is actually reached, not just the
// single-block path every other non-unit-stride test exercises.
func TestCopyMillikernelCrossKBlock(t *testing.T) {
	for _, tier := range []ISATier{TierScalar, TierAVX2, TierAVX512, TierNEON} {
		t.Run(tier.String(), func(t *testing.T) {
			withTier(t, tier, func() {
				m, n, k := 37, 5, 70
				dstRS, dstCS := 3, 44
				lhsRS, lhsCS := 2, 33
				rhsRS, rhsCS := 1, k // rhs column-major

				lhs := randF32(m*lhsRS + k*lhsCS)
				rhs := randF32(k*rhsRS + n*rhsCS)
				dst := randF32(m*dstRS + n*dstCS)

				want := refExecute(m, n, k, dst, 0, dstRS, dstCS, lhs, 0, lhsRS, lhsCS, false, rhs, 0, rhsRS, rhsCS, false, 1, 2.5)

				p := New[float32](m, n, k)
				got := append([]float32(nil), dst...)
				Execute(p, m, n, k,
					Matrix[float32]{Data: got, RS: dstRS, CS: dstCS},
					Matrix[float32]{Data: lhs, RS: lhsRS, CS: lhsCS}, false,
					Matrix[float32]{Data: rhs, RS: rhsRS, CS: rhsCS}, false,
					1, 2.5,
				)

				diff := make([]float32, len(got))
				for i := range got {
					diff[i] = got[i] - want[i]
				}
				if maxAbsF32(diff) > 1e-5 {
					t.Fatalf("tier %s: max abs diff %v exceeds tolerance", tier, maxAbsF32(diff))
				}
			})
		})
	}
}

func TestCurrentNameReportsDetectedTier(t *testing.T) {
	t.Logf("detected ISA tier: %s", CurrentName())
	if CurrentName() != CurrentTier().String() {
		t.Fatalf("CurrentName() %q disagrees with CurrentTier().String() %q", CurrentName(), CurrentTier().String())
	}
}
