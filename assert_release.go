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

//go:build !gemmdebug

package gemm

// assertArgs is a no-op in the default build; -tags=gemmdebug swaps in
// the real checks from assert_debug.go. Hot-loop callers that already
// validated their Plan and buffers pay nothing for it in release builds.
func assertArgs[T Element](p *Plan[T], m, n, k int, dst, lhs, rhs Matrix[T]) {
}
