// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spg solves box-constrained Lasso subproblems on the unit
// hypercube with the spectral projected gradient method.
package spg

const (
	zero = 0.0
	half = 0.5
	one  = 1.0
	two  = 2.0
)

// Default tuning parameters, applied by Problem.New for zero-valued fields.
const (
	// DefaultOptTol is the absolute convergence tolerance.
	DefaultOptTol = 1e-10
	// DefaultSuffDescent is the sufficient-descent constant of the line search.
	DefaultSuffDescent = 1e-3
	// DefaultMemory is the length of the non-monotone objective window.
	DefaultMemory = 10
	// DefaultMaxIterations is the iteration cap of one column solve.
	DefaultMaxIterations = 500
	// DefaultWorkers is the batch worker-pool size.
	DefaultWorkers = 1
)

// Safe range for the spectral step estimate.
// Values outside it indicate a degenerate curvature estimate.
const (
	alphaMin = 1e-10
	alphaMax = 1e+10
)

// Status identifies the criterion that terminated a solve.
type Status int

const (
	// Solving the iteration has not reached a terminal state yet.
	Solving Status = iota
	// ConvNoDescent the projected direction provides no further descent: gᵀd > -𝚘𝚙𝚝𝚃𝚘𝚕.
	ConvNoDescent
	// ConvFirstOrder the first-order residual satisfied: ‖P(x-g) - x‖₁ < 𝚘𝚙𝚝𝚃𝚘𝚕.
	ConvFirstOrder
	// ConvSmallStep the accepted step satisfied: ‖λd‖₁ < 𝚘𝚙𝚝𝚃𝚘𝚕.
	ConvSmallStep
	// ConvSmallReduction the objective reduction stalled: |Δf| < 𝚘𝚙𝚝𝚃𝚘𝚕.
	ConvSmallReduction
	// OverIterLimit the iteration cap was reached before any convergence criterion.
	OverIterLimit
)

// Converged reports whether the solve terminated on a convergence
// criterion rather than the iteration cap.
func (s Status) Converged() bool {
	return s >= ConvNoDescent && s < OverIterLimit
}

func (s Status) String() string {
	switch s {
	case ConvNoDescent:
		return "no-descent"
	case ConvFirstOrder:
		return "first-order"
	case ConvSmallStep:
		return "small-step"
	case ConvSmallReduction:
		return "small-reduction"
	case OverIterLimit:
		return "iter-limit"
	default:
		return "solving"
	}
}
