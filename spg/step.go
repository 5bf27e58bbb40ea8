// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

// spectralStep estimates the Barzilai–Borwein step length from the last
// iterate and gradient pair:
//
//	ɑ = (x - xₒ)ᵀ(x - xₒ) / (x - xₒ)ᵀ(g - gₒ)
//
// A degenerate estimate (non-finite, below ɑmin or above ɑmax) resets to
// the unit step. The NaN produced by 0/0 when consecutive iterates
// coincide falls through the same reset.
func spectralStep(ctx *solveCtx) float64 {

	// tmp = x - xₒ
	dcopy(ctx.x, ctx.tmp)
	daxpy(-one, ctx.xOld, ctx.tmp)

	// tmp1 = g - gₒ
	dcopy(ctx.g, ctx.tmp1)
	daxpy(-one, ctx.gOld, ctx.tmp1)

	alpha := ddot(ctx.tmp, ctx.tmp) / ddot(ctx.tmp, ctx.tmp1)
	if !(alpha > alphaMin) || alpha > alphaMax {
		alpha = one
	}
	return alpha
}
