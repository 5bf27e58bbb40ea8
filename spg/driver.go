// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import "math"

// solveSpec holds the inputs shared by every column solve of one problem.
type solveSpec struct {
	// the problem dimension
	k int
	// the regularization strength
	lambda float64
	// the k×k quadratic form, row-major, read-only
	g []float64
	// the stopping criteria
	stop Termination
}

// solveCtx is the scratch state of one column solve, owned by a single
// goroutine and reset for each column.
type solveCtx struct {
	// quadratic model constants, fixed for the duration of one solve
	hess []float64 // k×k
	beta []float64 // k
	// current and previous iterate and gradient
	x, xOld []float64 // k
	g, gOld []float64 // k
	// projected descent direction
	d []float64 // k
	// recent objective values for the non-monotone reference
	window fvalWindow
	// scratch for BLAS compositions
	tmp, tmp1 []float64 // k
	// objective at the live iterate and the best value attained
	f, fmin float64
	// directional derivative gᵀd
	gtd float64
	// iteration counter
	iter int
}

func (c *solveCtx) init(k, m int) {
	c.hess = make([]float64, k*k)
	c.beta = make([]float64, k)
	c.x = make([]float64, k)
	c.xOld = make([]float64, k)
	c.g = make([]float64, k)
	c.gOld = make([]float64, k)
	c.d = make([]float64, k)
	c.tmp = make([]float64, k)
	c.tmp1 = make([]float64, k)
	c.window.init(m)
}

func (c *solveCtx) reset() {
	c.f, c.fmin, c.gtd = zero, zero, zero
	c.iter = 0
	c.window.reset()
}

// solveDriver drives the SPG fixed-point loop of one column solve,
// writing the best estimate into ahat.
type solveDriver struct {
	solver    *Solver
	workspace *Workspace
	ahat      []float64
}

// mainLoop runs the projected spectral gradient iteration until a
// stopping criterion fires. The search is non-monotone, so the live
// iterate may end worse than the best point visited; the best estimate
// is tracked separately and is what gets reported. All stopping checks
// run on the same iteration so no gradient or objective is recomputed.
func (d *solveDriver) mainLoop(w, a0 []float64) Summary {

	spec := &d.solver.solveSpec
	ctx := &d.workspace.solveCtx

	ctx.reset()
	setModel(spec, ctx, w)

	// Seed from the warm start, kept unprojected: the first projected
	// step pulls the iterate feasible.
	dcopy(a0, ctx.x)
	gradient(spec, ctx, ctx.x, ctx.g)
	ctx.f = smoothValue(spec, ctx, ctx.x)
	ctx.fmin = ctx.f
	dcopy(ctx.x, d.ahat)

	optTol := spec.stop.OptTol
	status := Solving
	for status == Solving {

		// Spectral step length, unit on the first iteration.
		alpha := one
		if ctx.iter > 0 {
			alpha = spectralStep(ctx)
		}

		// Projected direction d = P(x - ɑg) - x.
		projStep(ctx.d, ctx.x, ctx.g, alpha)

		// No further descent along the projected-gradient step means
		// first-order stationarity in practice.
		ctx.gtd = ddot(ctx.g, ctx.d)
		if ctx.gtd > -optTol {
			status = ConvNoDescent
			break
		}

		t, norm1Dx, redF := searchStep(spec, ctx)

		// xₒ = x ; x += λd ; gₒ = g ; refresh the gradient.
		dcopy(ctx.x, ctx.xOld)
		daxpy(t, ctx.d, ctx.x)
		dcopy(ctx.g, ctx.gOld)
		gradient(spec, ctx, ctx.x, ctx.g)

		ctx.f += redF
		ctx.iter++

		if ctx.f < ctx.fmin {
			ctx.fmin = ctx.f
			dcopy(ctx.x, d.ahat)
		}

		switch {
		case firstOrderResidual(ctx.x, ctx.g, ctx.tmp) < optTol:
			status = ConvFirstOrder
		case norm1Dx < optTol:
			status = ConvSmallStep
		case math.Abs(redF) < optTol:
			status = ConvSmallReduction
		case ctx.iter > spec.stop.MaxIterations:
			status = OverIterLimit
		}
	}

	return Summary{Status: status, NumIter: ctx.iter}
}
