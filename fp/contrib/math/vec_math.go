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

// PowVec computes x^y for each corresponding pair of elements in the vectors.
//
// Algorithm: Applies Pow to each lane independently, in float64.
// The result has min(x.NumLanes(), y.NumLanes()) lanes.
func PowVec[T fp.Floats](x, y fp.Vec[T]) fp.Vec[T] {
	xData := x.Data()
	yData := y.Data()
	result := make([]T, min(len(xData), len(yData)))
	for i := range result {
		result[i] = T(Pow(float64(xData[i]), float64(yData[i])))
	}
	return fp.Load(result)
}

// ExpVec computes e^x for each element in the vector.
func ExpVec[T fp.Floats](v fp.Vec[T]) fp.Vec[T] {
	return mapVec(v, Exp)
}

// LogVec computes ln(x) for each element in the vector.
func LogVec[T fp.Floats](v fp.Vec[T]) fp.Vec[T] {
	return mapVec(v, Log)
}

func mapVec[T fp.Floats](v fp.Vec[T], f func(float64) float64) fp.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(f(float64(x)))
	}
	return fp.Load(result)
}

// BasePowPoly computes output[i] = inputX[i]^inputY[i].
// Only min(len(inputX), len(inputY), len(output)) elements are processed.
func BasePowPoly[T fp.Floats](inputX, inputY, output []T) {
	size := min(len(inputX), len(inputY), len(output))
	lanes := fp.MaxLanes[T]()

	for ii := 0; ii < size; ii += lanes {
		end := min(ii+lanes, size)
		x := fp.Load(inputX[ii:end])
		y := fp.Load(inputY[ii:end])
		PowVec(x, y).Store(output[ii:end])
	}
}

// BaseExpPoly computes output[i] = e^input[i].
// Only min(len(input), len(output)) elements are processed.
func BaseExpPoly[T fp.Floats](input, output []T) {
	baseApply(input, output, ExpVec[T])
}

// BaseLogPoly computes output[i] = ln(input[i]).
// Only min(len(input), len(output)) elements are processed.
func BaseLogPoly[T fp.Floats](input, output []T) {
	baseApply(input, output, LogVec[T])
}

func baseApply[T fp.Floats](input, output []T, f func(fp.Vec[T]) fp.Vec[T]) {
	size := min(len(input), len(output))
	lanes := fp.MaxLanes[T]()

	for ii := 0; ii < size; ii += lanes {
		end := min(ii+lanes, size)
		f(fp.Load(input[ii:end])).Store(output[ii:end])
	}
}
