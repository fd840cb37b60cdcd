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

// Log returns the natural logarithm of x.
//
// Algorithm: log(x) = log(2^k * m) = k*ln(2) + log(m), where m ∈ [√2/2, √2).
// For log(m) with f = m-1 and s = f/(2+f), log(m) = 2*atanh(s) is
// evaluated as f - s*(f - R(s²)) to keep the leading term exact.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x float64) float64 {
	switch {
	case fp.IsNaN(x) || fp.IsInf(x, 1):
		return x
	case x < 0:
		return fp.NaN()
	case x == 0:
		return fp.Inf(-1)
	case x == 1:
		return 0
	}

	m, k := fp.Frexp(x)
	if m < logSqrt2_2 {
		m *= 2
		k--
	}
	f := m - 1
	kf := float64(k)

	s := f / (2 + f)
	r := logPoly(s * s)
	return kf*logLn2Hi - ((s*(f-r) - kf*logLn2Lo) - f)
}

// logPoly evaluates R(z) = z*(2/3 + z*(2/5 + ...)) with Horner's method.
func logPoly(z float64) float64 {
	n := len(logCoeffs) - 1
	p := logCoeffs[n]
	for i := n - 1; i >= 0; i-- {
		p = p*z + logCoeffs[i]
	}
	return z * p
}
