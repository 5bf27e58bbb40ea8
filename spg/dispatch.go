// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Batch fans the d independent column subproblems of one call out across
// a bounded worker pool. Columns share only the read-only quadratic form:
// output column j always corresponds to input column j and the results
// are invariant to the pool size.
type Batch struct {
	Solver *Solver
	D      int // The number of columns
	// The k×d linear coefficient matrix, column-major:
	// column j occupies W[j*k : (j+1)*k].
	W []float64
	// The k×d warm start matrix, column-major like W.
	A0 []float64
	// The worker-pool size, default 1.
	Workers int
	// Optional structured logger, nil for no output.
	Log *zerolog.Logger
}

// BatchResult contains the reduced result of one batch.
type BatchResult struct {
	// The k×d matrix of per-column minimizers, column-major like W.
	A []float64
	// The sum of per-column best smooth objective values.
	Loss float64
	// Per-column solve summaries, indexed like the columns of W.
	Columns []Summary
}

// Run solves every column and reduces the per-column objectives into the
// total loss. Each worker owns one private workspace for the whole run
// and accumulates a local partial loss; the partials are summed after
// the pool drains, so the aggregation is race-free and order-independent.
func (b *Batch) Run() (*BatchResult, error) {

	s := b.Solver
	if s == nil {
		return nil, errors.New("solver is required")
	}

	k, d := s.k, b.D
	switch {
	case d <= 0:
		return nil, errors.New("column count must greater than 0")
	case len(b.W) != k*d:
		return nil, errors.New("coefficient matrix size must equal to k×d")
	case len(b.A0) != k*d:
		return nil, errors.New("warm start matrix size must equal to k×d")
	}

	workers := b.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > d {
		workers = d
	}

	logger := b.Log
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	logger.Info().Int("columns", d).Int("workers", workers).
		Float64("lambda", s.lambda).Msg("starting hypercube Lasso batch")

	res := &BatchResult{
		A:       make([]float64, k*d),
		Columns: make([]Summary, d),
	}

	jobs := make(chan int, d)
	for j := 0; j < d; j++ {
		jobs <- j
	}
	close(jobs)

	partial := make([]float64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ws := s.Init()
			for j := range jobs {
				col := j * k
				f, sum := s.fit(b.W[col:col+k], b.A0[col:col+k], res.A[col:col+k], ws)
				res.Columns[j] = sum
				partial[id] += f
				logger.Debug().Int("column", j).Int("iterations", sum.NumIter).
					Stringer("status", sum.Status).Float64("objective", f).
					Msg("column solved")
			}
		}(i)
	}
	wg.Wait()

	for _, p := range partial {
		res.Loss += p
	}

	logger.Info().Int("columns", d).Float64("loss", res.Loss).Msg("batch finished")
	return res, nil
}
