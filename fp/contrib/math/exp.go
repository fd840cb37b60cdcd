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

// Exp returns e**x, the base-e exponential of x.
//
// Algorithm:
// 1. Range reduction: x = k*ln(2) + r, where |r| <= ln(2)/2
// 2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + ... + r¹³/13!
// 3. Reconstruction: e^x = 2^k * e^r with fp.Ldexp (handles denormal results)
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf. Very small values underflow to 0.
func Exp(x float64) float64 {
	switch {
	case fp.IsNaN(x) || fp.IsInf(x, 1):
		return x
	case fp.IsInf(x, -1):
		return 0
	case x > expOverflow:
		return fp.Inf(1)
	case x < expUnderflow:
		return 0
	case -expNearZero < x && x < expNearZero:
		return 1 + x
	}

	// k = round(x / ln(2))
	var k int
	if x < 0 {
		k = int(expInvLn2*x - 0.5)
	} else {
		k = int(expInvLn2*x + 0.5)
	}
	kf := float64(k)

	// r = x - k*ln(2) using high/low split for precision
	r := (x - kf*expLn2Hi) - kf*expLn2Lo

	return fp.Ldexp(expPoly(r), k)
}

// expPoly evaluates the Taylor polynomial of e^r with Horner's method.
func expPoly(r float64) float64 {
	n := len(expCoeffs) - 1
	p := expCoeffs[n]
	for i := n - 1; i >= 0; i-- {
		p = p*r + expCoeffs[i]
	}
	return p
}
