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

package math

import "github.com/ajroetker/go-s21math/fp"

// Pow returns base**exp, the base-base exponential of exp.
//
// Special cases are resolved in this order (the first match wins):
//
//	Pow(1, y) = 1 for any y, NaN included
//	Pow(x, ±0) = 1 for any x, NaN included
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for y > 0 and not an odd integer
//	Pow(±0, y) = +Inf for y < 0 or y NaN
//	Pow(-Inf, y) = -0 for y an odd integer < 0
//	Pow(-Inf, y) = +0 for y an even integer < 0
//	Pow(-Inf, y) = -Inf for y an odd integer > 0
//	Pow(-Inf, y) = +Inf for y an even integer > 0
//	Pow(±Inf, y) = +0 for y < 0, +Inf otherwise
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//	Pow(-1, ±Inf) = 1
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
//	Pow(x, y) = -Pow(-x, y) for finite x < 0 and y an odd integer
//	Pow(x, y) = Pow(-x, y) for finite x < 0 and y an even integer
//	Pow(x, -Inf) = +Inf for |x| < 1, +0 otherwise
//	Pow(x, +Inf) = +0 for |x| < 1, +Inf otherwise
//
// Infinite bases are matched before NaN exponents, so Pow(±Inf, NaN) is
// +Inf and Pow(±0, NaN) is +Inf.
func Pow(base, exp float64) float64 {
	// Same as Fmod(exp, 1) == 0: false for infinite or NaN exp.
	integral := fp.IsInteger(exp)

	switch {
	case base == 1:
		return 1
	case exp == 0:
		return 1
	case base == 0:
		if exp > 0 {
			if integral && fp.IsOddInt(exp) {
				return base
			}
			return 0
		}
		return fp.Inf(1)
	case exp < 0 && integral && fp.IsInf(base, -1):
		if fp.IsOddInt(exp) {
			return fp.Copysign(0, -1)
		}
		return 0
	case exp > 0 && integral && fp.IsInf(base, -1):
		if fp.IsOddInt(exp) {
			return fp.Inf(-1)
		}
		return fp.Inf(1)
	case fp.IsInf(base, 0):
		if exp < 0 {
			return 0
		}
		return fp.Inf(1)
	case fp.IsNaN(base) || fp.IsNaN(exp):
		return fp.NaN()
	case base == -1 && fp.IsInf(exp, 0):
		return 1
	case base < 0 && !fp.IsInf(exp, 0):
		if !integral {
			return fp.NaN()
		}
		res := powNewton(-base, exp)
		if fp.IsOddInt(exp) {
			return -res
		}
		return res
	case fp.IsInf(exp, -1):
		if Fabs(base) < 1 {
			return fp.Inf(1)
		}
		return 0
	case fp.IsInf(exp, 1):
		if Fabs(base) < 1 {
			return 0
		}
		return fp.Inf(1)
	}
	return powNewton(base, exp)
}

// powNewton computes base**exp for finite base > 0 and finite exp.
func powNewton(base, exp float64) float64 {
	res, _ := newtonRefine(base, exp)
	return res
}

// newtonRefine returns base**exp and the number of Newton steps taken.
//
// The seed Exp(L), L = Log(base)*exp, is refined by Newton's method on
// log(res) = L: res -= (Log(res) - L) * res. The loop stops after
// maxNewtonIter steps, when the correction is NaN or below newtonTol
// relative to res, or when the next iterate would be <= 0. A step past
// the largest float64 means the result overflows, so +Inf is returned.
func newtonRefine(base, exp float64) (res float64, iters int) {
	target := Log(base) * exp
	res = Exp(target)
	if res == 0 || fp.IsInf(res, 1) {
		return res, 0
	}

	for iters < maxNewtonIter {
		iters++
		inc := (Log(res) - target) * res
		if fp.IsNaN(inc) || inc == 0 {
			break
		}
		next := res - inc
		if fp.IsInf(next, 1) {
			return next, iters
		}
		if next <= 0 {
			break
		}
		res = next
		if Fabs(inc) <= newtonTol*res {
			break
		}
	}
	return res, iters
}
