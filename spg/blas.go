// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dense linear algebra is consumed as a fixed external service.
// These wrappers pin the slice-level calling convention used throughout
// the package to the classic BLAS routine names.

func vec(x []float64) blas64.Vector {
	return blas64.Vector{N: len(x), Inc: 1, Data: x}
}

// dcopy copies x into y.
func dcopy(x, y []float64) {
	blas64.Copy(vec(x), vec(y))
}

// daxpy computes y += a·x.
func daxpy(a float64, x, y []float64) {
	blas64.Axpy(a, vec(x), vec(y))
}

// ddot returns xᵀy.
func ddot(x, y []float64) float64 {
	return blas64.Dot(vec(x), vec(y))
}

// dasum returns ‖x‖₁.
func dasum(x []float64) float64 {
	return blas64.Asum(vec(x))
}

// dgemv computes y = A·x for a dense k×k row-major A.
func dgemv(k int, a, x, y []float64) {
	m := blas64.General{Rows: k, Cols: k, Stride: k, Data: a}
	blas64.Gemv(blas.NoTrans, one, m, vec(x), zero, vec(y))
}
