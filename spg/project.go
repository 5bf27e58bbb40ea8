// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

// projHypercube clamps x into [0,1]ᵏ componentwise, writing into y:
//
//	𝚙𝚛𝚘𝚓 xᵢ = 0     if xᵢ < 0
//	𝚙𝚛𝚘𝚓 xᵢ = 1     if xᵢ > 1
//	𝚙𝚛𝚘𝚓 xᵢ = xᵢ    otherwise
//
// The projection is idempotent and y may alias x.
func projHypercube(y, x []float64) {
	if len(x) > len(y) {
		panic("bound check error")
	}
	for i, x := range x {
		switch {
		case x < zero:
			y[i] = zero
		case x > one:
			y[i] = one
		default:
			y[i] = x
		}
	}
}

// projStep computes the projected step d = P(x - ɑg) - x.
func projStep(d, x, g []float64, alpha float64) {
	dcopy(x, d)
	daxpy(-alpha, g, d)
	projHypercube(d, d)
	daxpy(-one, x, d)
}

// firstOrderResidual returns ‖P(x - g) - x‖₁, which vanishes exactly at
// a stationary point of the box-constrained problem.
func firstOrderResidual(x, g, tmp []float64) float64 {
	dcopy(x, tmp)
	daxpy(-one, g, tmp)
	projHypercube(tmp, tmp)
	daxpy(-one, x, tmp)
	return dasum(tmp)
}
