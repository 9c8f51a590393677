package spline

import "fmt"

// Resample computes n evenly spaced samples on a B-spline through the given
// control points, using the bundled de Boor evaluator. Each control point is
// a numeric vector; all must share one dimensionality. When periodic is set
// the control sequence wraps and the curve closes.
func Resample(cv [][]float64, n, degree int, periodic bool) ([][]float64, error) {
	return ResampleWith(DeBoor{}, cv, n, degree, periodic)
}

// ResampleWith is Resample with a caller-supplied evaluator.
func ResampleWith(ev Evaluator, cv [][]float64, n, degree int, periodic bool) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("spline: sample count %d, need at least 1", n)
	}
	count := len(cv)
	if count < 2 {
		return nil, fmt.Errorf("spline: %d control points, need at least 2", count)
	}
	if degree < 1 {
		return nil, fmt.Errorf("spline: degree %d, need at least 1", degree)
	}
	dims := len(cv[0])
	if dims == 0 {
		return nil, fmt.Errorf("spline: zero-dimensional control points")
	}
	for i, p := range cv {
		if len(p) != dims {
			return nil, fmt.Errorf("spline: control point %d has %d dimensions, want %d", i, len(p), dims)
		}
	}

	var knots []float64
	if periodic {
		// Wrap the control sequence so the evaluator sees a closed loop:
		// whole repetitions plus a partial prefix, up to count+degree+1.
		total := count + degree + 1
		extended := make([][]float64, 0, total)
		for len(extended) < total {
			need := total - len(extended)
			if need >= count {
				extended = append(extended, cv...)
			} else {
				extended = append(extended, cv[:need]...)
			}
		}
		cv = extended
		count = len(cv)

		knots = make([]float64, count+degree+1)
		for i := range knots {
			knots[i] = float64(i - degree)
		}
	} else {
		// Open curve: degree cannot exceed the interpolation support.
		if degree > count-1 {
			degree = count - 1
		}
		// Clamped knot vector: repeated boundary knots force the curve
		// through the first and last control points.
		knots = make([]float64, 0, count+degree+1)
		for i := 0; i < degree; i++ {
			knots = append(knots, 0)
		}
		for i := 0; i <= count-degree; i++ {
			knots = append(knots, float64(i))
		}
		for i := 0; i < degree; i++ {
			knots = append(knots, float64(count-degree))
		}
	}

	start := 0.0
	if periodic {
		start = 1.0
	}
	end := float64(count - degree)
	params := linspace(start, end, n)

	ctrl := transpose(cv, dims)
	sampled, err := ev.Evaluate(knots, ctrl, degree, params)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dims)
		for d := 0; d < dims; d++ {
			out[i][d] = sampled[d][i]
		}
	}
	return out, nil
}

func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

func transpose(cv [][]float64, dims int) [][]float64 {
	out := make([][]float64, dims)
	for d := 0; d < dims; d++ {
		out[d] = make([]float64, len(cv))
		for i, p := range cv {
			out[d][i] = p[d]
		}
	}
	return out
}
