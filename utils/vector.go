package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func NewVecConst(N int, val float64) (V *mat.VecDense) {
	var (
		x = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		x[i] = val
	}
	V = mat.NewVecDense(N, x)
	return
}

func VecScalarMult(v mat.Vector, a float64) (vo *mat.VecDense) {
	var (
		N = v.Len()
		d = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		d[i] = v.AtVec(i) * a
	}
	return mat.NewVecDense(N, d)
}

func VecMean(v mat.Vector) (mean float64) {
	var (
		N = v.Len()
	)
	for i := 0; i < N; i++ {
		mean += v.AtVec(i)
	}
	mean /= float64(N)
	return
}

func VecMinMax(v mat.Vector) (min, max float64) {
	var (
		N = v.Len()
	)
	min, max = math.MaxFloat64, -math.MaxFloat64
	for i := 0; i < N; i++ {
		val := v.AtVec(i)
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	return
}
