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

// IEEE-754 binary64 layout.
const (
	uvnan    = 0x7FF8000000000001
	uvinf    = 0x7FF0000000000000
	uvneginf = 0xFFF0000000000000
	signMask = 1 << 63
	mask     = 0x7FF
	shift    = 64 - 11 - 1
	bias     = 1023
)

const (
	// MaxFloat64 is the largest finite float64.
	MaxFloat64 = 0x1p1023 * (1 + (1 - 0x1p-52))

	// SmallestNormal is the smallest positive normal float64 (2**-1022).
	SmallestNormal = 0x1p-1022
)

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float64 {
	var v uint64
	if sign >= 0 {
		v = uvinf
	} else {
		v = uvneginf
	}
	return math.Float64frombits(v)
}

// NaN returns an IEEE 754 "not-a-number" value.
func NaN() float64 { return math.Float64frombits(uvnan) }

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(f float64) bool {
	return f != f
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(f float64, sign int) bool {
	return sign >= 0 && f > MaxFloat64 || sign <= 0 && f < -MaxFloat64
}

// Signbit reports whether x is negative or negative zero.
func Signbit(x float64) bool {
	return math.Float64bits(x)&signMask != 0
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign(f, sign float64) float64 {
	return math.Float64frombits(math.Float64bits(f)&^signMask | math.Float64bits(sign)&signMask)
}

// Abs returns the absolute value of x. Abs(-0) = +0, Abs(±Inf) = +Inf and
// NaN stays NaN.
func Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask)
}

// normalize returns a normal number y and exponent exp
// satisfying x == y × 2**exp. It assumes x is finite and non-zero.
func normalize(x float64) (y float64, exp int) {
	if Abs(x) < SmallestNormal {
		return x * (1 << 52), -52
	}
	return x, 0
}
