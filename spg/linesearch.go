// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import "math"

// fvalWindow is a fixed-capacity ring of the most recent objective
// values. Its maximum is the reference value of the non-monotone
// acceptance test: candidate steps compete against the worst recent
// objective, not strictly the previous one.
type fvalWindow struct {
	vals []float64
	next int
}

func (w *fvalWindow) init(m int) {
	w.vals = make([]float64, m)
	w.reset()
}

func (w *fvalWindow) reset() {
	w.next = 0
	for i := range w.vals {
		w.vals[i] = math.Inf(-1)
	}
}

// push records f, evicting the oldest value once the window is full.
func (w *fvalWindow) push(f float64) {
	w.vals[w.next] = f
	w.next = (w.next + 1) % len(w.vals)
}

// max returns the worst objective currently in the window.
func (w *fvalWindow) max() float64 {
	ref := w.vals[0]
	for _, v := range w.vals[1:] {
		if v > ref {
			ref = v
		}
	}
	return ref
}

// searchStep performs a non-monotone backtracking search along the
// projected direction ctx.d, with ctx.gtd = gᵀd already negative.
//
// The trial step starts at λ = 1, except on the very first iteration
// where λ = 𝚖𝚒𝚗(1, 1/‖g‖₁) gives a scale-aware initial guess. Successive
// rejections halve a shrink factor, and a candidate is accepted when
//
//	f + Δf < f𝚛𝚎𝚏 + 𝚜𝚞𝚏𝚏𝙳𝚎𝚜𝚌·λ𝚏·gᵀd
//
// where f𝚛𝚎𝚏 is the window maximum and Δf = ½λ²𝚏²·dᵀ𝙷𝚎𝚜𝚜·d + λ𝚏·gᵀd is the
// quadratic model of f along d, exact here since f itself is quadratic.
// The curvature dᵀ𝙷𝚎𝚜𝚜·d is computed once and rescaled per trial.
//
// Returns the accepted step λ, the step size ‖λd‖₁ and the reduction Δf,
// which the driver reuses as the objective delta instead of paying
// another O(k²) evaluation. A search that runs out of shrink budget
// yields the zero step: the outer stopping checks terminate the solve on
// the small-step or stalled-reduction criteria.
func searchStep(spec *solveSpec, ctx *solveCtx) (t, norm1Dx, redF float64) {

	if ctx.iter == 0 {
		t = one / dasum(ctx.g)
		if t > one {
			t = one
		}
	} else {
		t = one
	}

	ctx.window.push(ctx.f)
	fRef := ctx.window.max()

	// Linear = λ·gᵀd ; Quad = λ²·dᵀ𝙷𝚎𝚜𝚜·d
	linear := t * ctx.gtd
	dgemv(spec.k, ctx.hess, ctx.d, ctx.tmp)
	quad := ddot(ctx.d, ctx.tmp) * t * t

	norm1D := t * dasum(ctx.d)

	factor := one
	for {
		redF = half*quad*factor*factor + linear*factor
		if ctx.f+redF < fRef+spec.stop.SuffDescent*linear*factor {
			t *= factor
			norm1Dx = norm1D * factor
			return
		}
		factor *= half
		if norm1D*factor < spec.stop.OptTol || t == zero {
			return zero, zero, zero
		}
	}
}
