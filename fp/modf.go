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

package fp

import "math"

// Modf returns integer and fractional floating-point numbers
// that sum to f. Both values have the same sign as f.
//
// Special cases are:
//
//	Modf(±Inf) = ±Inf, NaN
//	Modf(NaN) = NaN, NaN
func Modf(f float64) (ipart float64, frac float64) {
	if f < 1 {
		switch {
		case f < 0:
			ipart, frac = Modf(-f)
			return -ipart, -frac
		case f == 0:
			return f, f // Return -0, -0 when f == -0
		}
		return 0, f
	}

	x := math.Float64bits(f)
	e := uint(x>>shift)&mask - bias

	// Keep the top 12+e bits, the integer part; clear the rest.
	if e < 64-12 {
		x &^= 1<<(64-12-e) - 1
	}
	ipart = math.Float64frombits(x)
	frac = f - ipart
	return
}

// IsInteger reports whether f is finite and has no fractional part.
func IsInteger(f float64) bool {
	if IsInf(f, 0) || IsNaN(f) {
		return false
	}
	_, frac := Modf(f)
	return frac == 0
}

// IsOddInt reports whether f is an odd integer. Every float64 with
// magnitude at or above 2**53 is even.
func IsOddInt(f float64) bool {
	if Abs(f) >= 1<<53 {
		return false
	}
	xi, xf := Modf(f)
	return xf == 0 && int64(xi)&1 == 1
}
