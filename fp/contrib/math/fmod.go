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

// Fmod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
//
// Special cases are:
//
//	Fmod(±Inf, y) = NaN
//	Fmod(NaN, y) = NaN
//	Fmod(x, 0) = NaN
//	Fmod(x, ±Inf) = x
//	Fmod(x, NaN) = NaN
func Fmod(x, y float64) float64 {
	if y == 0 || fp.IsInf(x, 0) || fp.IsNaN(x) || fp.IsNaN(y) {
		return fp.NaN()
	}
	y = Fabs(y)

	yfr, yexp := fp.Frexp(y)
	r := x
	if x < 0 {
		r = -x
	}

	// Binary long division: subtract the largest y*2^n that fits.
	for r >= y {
		rfr, rexp := fp.Frexp(r)
		if rfr < yfr {
			rexp = rexp - 1
		}
		r = r - fp.Ldexp(y, rexp-yexp)
	}
	if x < 0 {
		r = -r
	}
	return r
}

// Fabs returns the absolute value of x.
//
// Special cases are:
//
//	Fabs(±Inf) = +Inf
//	Fabs(NaN) = NaN
func Fabs(x float64) float64 {
	return fp.Abs(x)
}
