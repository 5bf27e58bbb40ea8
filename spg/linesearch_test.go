// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFvalWindow(t *testing.T) {

	var w fvalWindow
	w.init(3)
	require.True(t, math.IsInf(w.max(), -1))

	w.push(1)
	require.Equal(t, 1.0, w.max())

	w.push(3)
	w.push(2)
	require.Equal(t, 3.0, w.max())

	// the window is full: pushing evicts the oldest value
	w.push(0)
	require.Equal(t, 3.0, w.max())
	w.push(-1)
	require.Equal(t, 2.0, w.max())
	w.push(-2)
	require.Equal(t, 0.0, w.max())

	w.reset()
	require.True(t, math.IsInf(w.max(), -1))
}

func TestSearchStepAccept(t *testing.T) {

	// 1-D model: G = 1, w = 0, λ = 0 so Hess = 2, β = 0, f(x) = x².
	spec := &solveSpec{
		k: 1, lambda: 0, g: []float64{1},
		stop: Termination{
			OptTol:        DefaultOptTol,
			SuffDescent:   DefaultSuffDescent,
			Memory:        DefaultMemory,
			MaxIterations: DefaultMaxIterations,
		},
	}

	ctx := new(solveCtx)
	ctx.init(1, DefaultMemory)
	setModel(spec, ctx, []float64{0})

	// At x = 1: g = 2, f = 1 and the unit projected step is d = -1.
	ctx.x[0] = 1
	gradient(spec, ctx, ctx.x, ctx.g)
	ctx.f = smoothValue(spec, ctx, ctx.x)
	projStep(ctx.d, ctx.x, ctx.g, 1)
	ctx.gtd = ddot(ctx.g, ctx.d)

	require.Equal(t, 2.0, ctx.g[0])
	require.Equal(t, 1.0, ctx.f)
	require.Equal(t, -1.0, ctx.d[0])

	// First iteration trial step is 𝚖𝚒𝚗(1, 1/‖g‖₁) = 0.5 and the full
	// factor is accepted: Δf = ½·2·0.25 - 2·0.5 = -0.75.
	lambda, norm1Dx, redF := searchStep(spec, ctx)
	require.InDelta(t, 0.5, lambda, 1e-15)
	require.InDelta(t, 0.5, norm1Dx, 1e-15)
	require.InDelta(t, -0.75, redF, 1e-15)
}

func TestSearchStepExhausted(t *testing.T) {

	spec := &solveSpec{
		k: 1, lambda: 0, g: []float64{1},
		stop: Termination{
			OptTol:        DefaultOptTol,
			SuffDescent:   DefaultSuffDescent,
			Memory:        DefaultMemory,
			MaxIterations: DefaultMaxIterations,
		},
	}

	// A direction too small to make progress against huge curvature:
	// the first trial is rejected and the shrunk step immediately falls
	// below the tolerance, so the search yields the zero step.
	ctx := new(solveCtx)
	ctx.init(1, DefaultMemory)
	ctx.hess[0] = 4e12
	ctx.d[0] = 1e-11
	ctx.gtd = -2e-10
	ctx.f = 0
	ctx.iter = 1

	lambda, norm1Dx, redF := searchStep(spec, ctx)
	require.Equal(t, 0.0, lambda)
	require.Equal(t, 0.0, norm1Dx)
	require.Equal(t, 0.0, redF)
}
