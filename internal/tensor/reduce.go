package tensor

// laneLayout describes where the lanes along one axis sit in the row-major buffer.
//
// With n the extent of the axis, the axes before it span outer = CumulativeShape[axis]/n
// blocks and the axes after it span inner = ReverseCumulativeShape[rank-1-axis]/n
// elements. Lane l holds the n elements that share the same outer block and inner
// position, l = block*inner + position, so enumerating lanes walks the shape with the
// axis removed in row-major order.
type laneLayout struct {
	outer, length, inner int
}

func (s Shape) lanes(axis int) laneLayout {
	n := s.extents[axis]
	return laneLayout{
		outer:  s.cumulative[axis] / n,
		length: n,
		inner:  s.ReverseCumulativeShape()[s.Rank()-1-axis] / n,
	}
}

func (l laneLayout) count() int {
	return l.outer * l.inner
}

// offset returns the flat position of element k of lane.
func (l laneLayout) offset(lane, k int) int {
	block, pos := lane/l.inner, lane%l.inner
	return (block*l.length+k)*l.inner + pos
}

// AxisWise partitions the buffer into the 1-D lanes varying along axis, with every other
// axis index held fixed. Lanes come in row-major order of the shape without axis.
//
// Example:
//
//	// t has shape (2, 3) and holds 0..5.
//	lanes, _ := t.AxisWise(0) // [[0 3] [1 4] [2 5]]
//	lanes, _ = t.AxisWise(1)  // [[0 1 2] [3 4 5]]
func (t *Tensor[T]) AxisWise(axis int) ([][]T, error) {
	if err := t.checkReadable("AxisWise"); err != nil {
		return nil, err
	}
	if err := t.shape.checkAxis(axis); err != nil {
		return nil, err
	}
	l := t.shape.lanes(axis)
	res := make([][]T, l.count())
	for lane := range res {
		row := make([]T, l.length)
		for k := range row {
			row[k] = t.buf.data[l.offset(lane, k)]
		}
		res[lane] = row
	}
	return res, nil
}

// reduceAxis folds every lane along axis into one value of a tensor of one lower rank.
func reduceAxis[T, R Scalar](t *Tensor[T], axis int, fold func(lane []T) R) (*Tensor[R], error) {
	lanes, err := t.AxisWise(axis)
	if err != nil {
		return nil, err
	}
	out := newTensor[R](t.shape.withoutAxis(axis), t.config)
	for i, lane := range lanes {
		out.buf.data[i] = fold(lane)
	}
	return out, nil
}

// reduceAll folds the whole buffer.
func reduceAll[T, R Scalar](op string, t *Tensor[T], fold func(values []T) R) (R, error) {
	if err := t.checkReadable(op); err != nil {
		var zero R
		return zero, err
	}
	return fold(t.buf.data), nil
}

// All reports whether pred holds for every element.
func (t *Tensor[T]) All(pred func(T) bool) (bool, error) {
	return reduceAll("All", t, allOf(pred))
}

// AllAxis reports, for every lane along axis, whether pred holds for all its elements.
func (t *Tensor[T]) AllAxis(pred func(T) bool, axis int) (*Tensor[bool], error) {
	return reduceAxis(t, axis, allOf(pred))
}

// Any reports whether pred holds for at least one element.
func (t *Tensor[T]) Any(pred func(T) bool) (bool, error) {
	return reduceAll("Any", t, anyOf(pred))
}

// AnyAxis reports, for every lane along axis, whether pred holds for any of its elements.
func (t *Tensor[T]) AnyAxis(pred func(T) bool, axis int) (*Tensor[bool], error) {
	return reduceAxis(t, axis, anyOf(pred))
}

func allOf[T Scalar](pred func(T) bool) func([]T) bool {
	return func(values []T) bool {
		for _, v := range values {
			if !pred(v) {
				return false
			}
		}
		return true
	}
}

func anyOf[T Scalar](pred func(T) bool) func([]T) bool {
	return func(values []T) bool {
		for _, v := range values {
			if pred(v) {
				return true
			}
		}
		return false
	}
}

func sumOf[T Numeric](values []T) T {
	var s T
	for _, v := range values {
		s += v
	}
	return s
}

func meanOf[T Numeric](values []T) float64 {
	var s float64
	for _, v := range values {
		s += float64(v)
	}
	return s / float64(len(values))
}

// varianceOf is the population variance: the mean squared deviation from the mean.
func varianceOf[T Numeric](values []T) float64 {
	mean := meanOf(values)
	var s float64
	for _, v := range values {
		d := float64(v) - mean
		s += d * d
	}
	return s / float64(len(values))
}

// argMinOf returns the position of the first minimum.
func argMinOf[T Numeric](values []T) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}

// argMaxOf returns the position of the first maximum.
func argMaxOf[T Numeric](values []T) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func minOf[T Numeric](values []T) T { return values[argMinOf(values)] }
func maxOf[T Numeric](values []T) T { return values[argMaxOf(values)] }

func peakToPeakOf[T Numeric](values []T) T { return maxOf(values) - minOf(values) }

// Sum returns the sum of all elements.
func Sum[T Numeric](t *Tensor[T]) (T, error) { return reduceAll("Sum", t, sumOf[T]) }

// SumAxis sums the lanes along axis.
func SumAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return reduceAxis(t, axis, sumOf[T])
}

// Mean returns the arithmetic mean of all elements, computed in float64.
func Mean[T Numeric](t *Tensor[T]) (float64, error) { return reduceAll("Mean", t, meanOf[T]) }

// MeanAxis averages the lanes along axis.
func MeanAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[float64], error) {
	return reduceAxis(t, axis, meanOf[T])
}

// Variance returns the population variance of all elements.
func Variance[T Numeric](t *Tensor[T]) (float64, error) {
	return reduceAll("Variance", t, varianceOf[T])
}

// VarianceAxis computes the population variance of the lanes along axis.
func VarianceAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[float64], error) {
	return reduceAxis(t, axis, varianceOf[T])
}

// Min returns the smallest element.
func Min[T Numeric](t *Tensor[T]) (T, error) { return reduceAll("Min", t, minOf[T]) }

// MinAxis returns the smallest element of each lane along axis.
func MinAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return reduceAxis(t, axis, minOf[T])
}

// Max returns the largest element.
func Max[T Numeric](t *Tensor[T]) (T, error) { return reduceAll("Max", t, maxOf[T]) }

// MaxAxis returns the largest element of each lane along axis.
func MaxAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return reduceAxis(t, axis, maxOf[T])
}

// ArgMin returns the flat index of the first smallest element.
func ArgMin[T Numeric](t *Tensor[T]) (int, error) { return reduceAll("ArgMin", t, argMinOf[T]) }

// ArgMinAxis returns, for each lane along axis, the position of its first smallest element.
func ArgMinAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[int], error) {
	return reduceAxis(t, axis, argMinOf[T])
}

// ArgMax returns the flat index of the first largest element.
func ArgMax[T Numeric](t *Tensor[T]) (int, error) { return reduceAll("ArgMax", t, argMaxOf[T]) }

// ArgMaxAxis returns, for each lane along axis, the position of its first largest element.
func ArgMaxAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[int], error) {
	return reduceAxis(t, axis, argMaxOf[T])
}

// PeakToPeak returns max - min over all elements.
func PeakToPeak[T Numeric](t *Tensor[T]) (T, error) {
	return reduceAll("PeakToPeak", t, peakToPeakOf[T])
}

// PeakToPeakAxis returns max - min of each lane along axis.
func PeakToPeakAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return reduceAxis(t, axis, peakToPeakOf[T])
}

// accumulate returns the rank 1 running fold of the buffer in row-major order.
func accumulate[T Numeric](op string, t *Tensor[T], fn func(acc, v T) T) (*Tensor[T], error) {
	if err := t.checkReadable(op); err != nil {
		return nil, err
	}
	out := newTensor[T](makeShape([]int{t.NumElements()}), t.config)
	for i, v := range t.buf.data {
		if i == 0 {
			out.buf.data[i] = v
			continue
		}
		out.buf.data[i] = fn(out.buf.data[i-1], v)
	}
	return out, nil
}

// accumulateAxis runs the fold along every lane of axis, keeping the shape.
func accumulateAxis[T Numeric](op string, t *Tensor[T], axis int, fn func(acc, v T) T) (*Tensor[T], error) {
	if err := t.checkReadable(op); err != nil {
		return nil, err
	}
	if err := t.shape.checkAxis(axis); err != nil {
		return nil, err
	}
	l := t.shape.lanes(axis)
	out := newTensor[T](t.shape, t.config)
	src, dst := t.buf.data, out.buf.data
	for lane := range l.count() {
		prev := l.offset(lane, 0)
		dst[prev] = src[prev]
		for k := 1; k < l.length; k++ {
			cur := l.offset(lane, k)
			dst[cur] = fn(dst[prev], src[cur])
			prev = cur
		}
	}
	return out, nil
}

// CumSum returns the running sums of the buffer as a rank 1 tensor.
func CumSum[T Numeric](t *Tensor[T]) (*Tensor[T], error) { return accumulate("CumSum", t, add[T]) }

// CumSumAxis returns the running sums along axis, with the same shape as t.
func CumSumAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return accumulateAxis("CumSumAxis", t, axis, add[T])
}

// CumProd returns the running products of the buffer as a rank 1 tensor.
func CumProd[T Numeric](t *Tensor[T]) (*Tensor[T], error) { return accumulate("CumProd", t, mul[T]) }

// CumProdAxis returns the running products along axis, with the same shape as t.
func CumProdAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return accumulateAxis("CumProdAxis", t, axis, mul[T])
}
