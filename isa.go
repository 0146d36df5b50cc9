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
	"os"
	"strconv"
)

// ISATier names the SIMD instruction set tier a Plan was built for.
type ISATier int

const (
	// TierScalar means no SIMD tier qualified; the Plan uses the naive
	// millikernel with MR = NR = 0.
	TierScalar ISATier = iota

	// TierAVX2 is x86-64 AVX2 + FMA.
	TierAVX2

	// TierAVX512 is x86-64 AVX-512.
	TierAVX512

	// TierNEON is ARM64 NEON (ASIMD).
	TierNEON
)

// String returns a human-readable name for the tier.
func (t ISATier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	case TierNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentTier is the detected ISA tier for this runtime. Set by init() in
// isa_amd64.go / isa_arm64.go / isa_other.go.
var currentTier ISATier

// CurrentTier returns the ISA tier new Plans will select, absent an
// explicit GEMM_NO_SIMD override.
func CurrentTier() ISATier {
	return currentTier
}

// CurrentName returns a human-readable name for the current ISA tier.
func CurrentName() string {
	return currentTier.String()
}

// noSIMDEnv checks the GEMM_NO_SIMD environment variable, which forces
// every new Plan onto the naive millikernel regardless of detected CPU
// features.
func noSIMDEnv() bool {
	val := os.Getenv("GEMM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
