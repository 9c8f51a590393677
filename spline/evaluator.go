package spline

import "fmt"

// Evaluator samples a B-spline. ctrl holds control-point coordinates per
// dimension (ctrl[d][i] is coordinate d of control point i); the result uses
// the same per-dimension layout, one sample per parameter value.
//
// Contract: len(knots) >= len(ctrl[d]) + degree + 1, the knot vector is
// non-decreasing, and every parameter lies inside the knot domain.
type Evaluator interface {
	Evaluate(knots []float64, ctrl [][]float64, degree int, params []float64) ([][]float64, error)
}

// DeBoor evaluates B-splines with de Boor's algorithm.
type DeBoor struct{}

// Evaluate implements Evaluator.
func (DeBoor) Evaluate(knots []float64, ctrl [][]float64, degree int, params []float64) ([][]float64, error) {
	if len(ctrl) == 0 {
		return nil, fmt.Errorf("spline: no control dimensions")
	}
	n := len(ctrl[0])
	for _, dim := range ctrl {
		if len(dim) != n {
			return nil, fmt.Errorf("spline: ragged control dimensions")
		}
	}
	if len(knots) < n+degree+1 {
		return nil, fmt.Errorf("spline: need %d knots for %d control points at degree %d, have %d",
			n+degree+1, n, degree, len(knots))
	}

	out := make([][]float64, len(ctrl))
	for d := range out {
		out[d] = make([]float64, len(params))
	}
	scratch := make([]float64, degree+1)
	for pi, u := range params {
		k := findSpan(knots, n, degree, u)
		for d, dim := range ctrl {
			out[d][pi] = deBoorAt(knots, dim, degree, k, u, scratch)
		}
	}
	return out, nil
}

// findSpan returns the knot span index k with knots[k] <= u < knots[k+1],
// clamped to [degree, n-1] so the right domain boundary evaluates on the
// final span.
func findSpan(knots []float64, n, degree int, u float64) int {
	if u >= knots[n] {
		return n - 1
	}
	k := degree
	for k < n-1 && knots[k+1] <= u {
		k++
	}
	return k
}

func deBoorAt(knots, c []float64, degree, k int, u float64, d []float64) float64 {
	for j := 0; j <= degree; j++ {
		d[j] = c[j+k-degree]
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			i := j + k - degree
			den := knots[j+1+k-r] - knots[i]
			var alpha float64
			if den != 0 {
				alpha = (u - knots[i]) / den
			}
			d[j] = (1-alpha)*d[j-1] + alpha*d[j]
		}
	}
	return d[degree]
}
