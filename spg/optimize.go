// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import (
	"errors"
	"math"
)

// Termination specifies the stopping criteria and tuning constants of
// one column solve. Zero-valued fields take the package defaults.
type Termination struct {
	// The iteration stops when the tightest of the first-order residual,
	// step size and objective reduction drops below this absolute
	// tolerance. The tolerance is not scaled by the problem magnitude:
	// callers with very large ‖G‖ or ‖w‖ should pre-scale their inputs.
	OptTol float64
	// The line search accepts a step achieving at least this fraction
	// of the predicted linear decrease.
	SuffDescent float64
	// The number of recent objective values the non-monotone line
	// search compares against.
	Memory int
	// The iteration stops unconditionally after this many steps.
	MaxIterations int
}

// Problem specifies a family of hypercube Lasso subproblems sharing one
// quadratic form:
//
//	𝚖𝚒𝚗  aᵀGa - 2wᵀa + λ‖a‖₁    𝚜𝚋.𝚝𝚘.  0 ≤ aᵢ ≤ 1
//
// G is expected symmetric positive semi-definite; this is not validated
// and violating it yields undefined numeric behavior, not a crash.
// A negative λ is likewise accepted but removes any convergence
// guarantee.
type Problem struct {
	K      int       // The problem dimension
	G      []float64 // The k×k quadratic form, row-major
	Lambda float64   // The regularization strength
	Stop   Termination
}

// New validates the problem and creates a solver for it.
func (p *Problem) New() (solver *Solver, err error) {

	stop := p.Stop
	if stop.OptTol == zero {
		stop.OptTol = DefaultOptTol
	}
	if stop.SuffDescent == zero {
		stop.SuffDescent = DefaultSuffDescent
	}
	if stop.Memory == 0 {
		stop.Memory = DefaultMemory
	}
	if stop.MaxIterations == 0 {
		stop.MaxIterations = DefaultMaxIterations
	}

	switch {
	case p.K <= 0:
		err = errors.New("problem dimension must greater than 0")
	case len(p.G) != p.K*p.K:
		err = errors.New("quadratic form size must equal to k×k")
	case math.IsNaN(stop.OptTol) || stop.OptTol < zero:
		err = errors.New("convergence tolerance must not less than 0")
	case math.IsNaN(stop.SuffDescent) || stop.SuffDescent < zero:
		err = errors.New("sufficient descent constant must not less than 0")
	case stop.Memory < 0:
		err = errors.New("non-monotone memory must greater than 0")
	case stop.MaxIterations < 0:
		err = errors.New("max iteration must greater than 1")
	}
	if err != nil {
		return
	}

	solver = &Solver{solveSpec{k: p.K, lambda: p.Lambda, g: p.G, stop: stop}}
	return
}

// Solver implemented using the SPG algorithm.
type Solver struct {
	solveSpec
}

// Workspace contains the scratch state of one concurrent solve.
// Given problem dimension k and window length m,
// total work space is approximately float64[k² + 9×k + m].
type Workspace struct {
	k, m int
	solveCtx
}

// Init allocates the workspace for the SPG solver.
// To avoid race conditions, separate workspaces need to be created for
// each goroutine. But multiple workspaces could share one solver, and
// one workspace is reused across any number of sequential solves.
func (s *Solver) Init() *Workspace {
	w := new(Workspace)
	w.k, w.m = s.k, s.stop.Memory
	w.init(w.k, w.m)
	return w
}

// Result contains the final result of one column solve.
type Result struct {
	OK bool // Whether the solve terminated on a convergence criterion.
	// The smooth objective xᵀGx - βᵀx at the best point. The λ‖x‖₁
	// contribution is implicit in how β was formed and never added
	// again separately.
	F       float64
	X       []float64 // The best feasible point visited.
	Summary           // Solve summary.
}

// Summary contains a summary of one column solve.
type Summary struct {
	Status  Status // Criterion that terminated the solve.
	NumIter int    // Number of iterations performed.
}

// Fit solves one column subproblem: w is the linear coefficient vector
// and a0 the warm start, expected already inside [0,1]ᵏ (not enforced;
// the projection corrects it after the first step, but the seed
// objective is evaluated at the unprojected point).
func (s *Solver) Fit(w, a0 []float64, ws *Workspace) *Result {
	ahat := make([]float64, s.k)
	f, sum := s.fit(w, a0, ahat, ws)
	return &Result{OK: sum.Status.Converged(), F: f, X: ahat, Summary: sum}
}

// fit runs one column solve writing the minimizer into ahat.
func (s *Solver) fit(w, a0, ahat []float64, ws *Workspace) (float64, Summary) {

	if len(w) != s.k || len(a0) != s.k || len(ahat) != s.k {
		panic("input dimension not match spec")
	}

	if ws.k != s.k || ws.m != s.stop.Memory {
		panic("workspace dimension not match spec")
	}

	driver := solveDriver{
		solver:    s,
		workspace: ws,
		ahat:      ahat,
	}

	sum := driver.mainLoop(w, a0)
	return ws.fmin, sum
}
