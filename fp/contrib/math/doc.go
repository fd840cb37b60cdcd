// Copyright 2025 go-s21math Authors
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

// Package math provides a power function and the primitives it is built on,
// computed without calling the host math library.
//
// # Scalar Functions
//
// Power:
//   - Pow(base, exp float64) float64 - base^exp with IEEE-754 special cases
//
// Exponential and logarithmic:
//   - Exp(x float64) float64 - e^x
//   - Log(x float64) float64 - ln(x)
//
// Remainder and magnitude:
//   - Fmod(x, y float64) float64 - remainder of x/y with the sign of x
//   - Fabs(x float64) float64 - |x|
//
// # Batch Functions
//
// Lane-wise forms over fp.Vec and over slices, for float32 and float64:
//   - PowVec, ExpVec, LogVec
//   - BasePowPoly, BaseExpPoly, BaseLogPoly
//
// Slices are processed in chunks of fp.MaxLanes[T](); float32 values are
// widened to float64 for the computation and narrowed on store.
//
// # Algorithm
//
// Pow seeds its result with Exp(Log(base)*exp) and refines it with a bounded
// Newton iteration on log(res) = Log(base)*exp. Exp uses a k*ln(2) range
// reduction and a degree-13 polynomial; Log uses an exponent/mantissa split
// and an atanh series in the mantissa.
//
// # Accuracy
//
//   - Exp, Log: a few ULP across the finite range
//   - Pow: relative error grows with |exp*log(base)|, about 1e-13 at the
//     overflow threshold
//   - Fmod, Fabs: exact
//
// # Example Usage
//
//	import "github.com/ajroetker/go-s21math/fp/contrib/math"
//
//	y := math.Pow(2, 10)   // 1024 (to within a few ULP)
//	z := math.Pow(-8, 1.0/3) // NaN: negative base, fractional exponent
package math
