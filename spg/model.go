// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

// setModel precomputes the constants of one column's quadratic model:
//
//	𝙷𝚎𝚜𝚜 = 2G    βᵢ = 2wᵢ - λ
//
// Hess duplicates G into a private buffer instead of aliasing it,
// so the shared input matrix is never mutated.
func setModel(spec *solveSpec, ctx *solveCtx, w []float64) {
	for i, w := range w {
		ctx.beta[i] = two*w - spec.lambda
	}
	// Hess = G; Hess = 1·G + Hess
	dcopy(spec.g, ctx.hess)
	daxpy(one, spec.g, ctx.hess)
}

// gradient evaluates g = 𝙷𝚎𝚜𝚜·x - β at x.
func gradient(spec *solveSpec, ctx *solveCtx, x, g []float64) {
	dgemv(spec.k, ctx.hess, x, g)
	daxpy(-one, ctx.beta, g)
}

// smoothValue evaluates the smooth part of the objective at x:
//
//	f = xᵀGx - βᵀx = xᵀ(Gx - β)
//
// The non-differentiable λ‖x‖₁ term is folded into β and handled by
// the projection machinery, never evaluated explicitly.
func smoothValue(spec *solveSpec, ctx *solveCtx, x []float64) float64 {
	dgemv(spec.k, spec.g, x, ctx.tmp)
	daxpy(-one, ctx.beta, ctx.tmp)
	return ddot(x, ctx.tmp)
}
