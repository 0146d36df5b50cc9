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

//go:build amd64

package gemm

import "golang.org/x/sys/cpu"

func init() {
	if noSIMDEnv() {
		currentTier = TierScalar
		return
	}
	detectAMD64Tier()
}

// detectAMD64Tier picks the best available tier for amd64 in descending
// preference: AVX-512 if available, else AVX2+FMA, else scalar. SSE2-only
// baselines are treated as scalar: this core implements a single SIMD
// tier per ISA family, and AVX2 is the realistic floor for the
// register-tile shapes in cache_params.go.
func detectAMD64Tier() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		currentTier = TierAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentTier = TierAVX2
	default:
		currentTier = TierScalar
	}
}
