package tensor

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
//  1. Compare shapes element-wise from right to left
//  2. Dimensions are compatible if:
//     - They are equal, OR
//     - One of them is 1
//  3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and a
// BroadcastError if incompatible or if the broadcast element count overflows int.
// The result does not depend on operand order.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	if a.Equal(b) {
		return a, false, nil
	}
	maxLen := max(a.Rank(), b.Rank())
	result := make([]int, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := a.Rank() - 1 - i
		bIdx := b.Rank() - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a.extents[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b.extents[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return Shape{}, false, &BroadcastError{A: a.Extents(), B: b.Extents(), Axis: maxLen - 1 - i}
		}
	}

	if axis := overflowAxis(result); axis >= 0 {
		return Shape{}, false, &BroadcastError{A: a.Extents(), B: b.Extents(), Axis: axis, Overflow: true}
	}
	return makeShape(result), true, nil
}

// IsBroadcastable reports whether two shapes are broadcast-compatible.
func IsBroadcastable(a, b Shape) bool {
	_, _, err := BroadcastShapes(a, b)
	return err == nil
}

// broadcastStrides computes strides for reading a tensor of shape in as if it had shape out.
// Dimensions of size 1 and missing leading dimensions get stride 0, so the same source
// element is reused for every broadcast position on that axis.
func broadcastStrides(in, out Shape) []int {
	outDim := out.Rank()
	strides := make([]int, outDim)

	offset := outDim - in.Rank()
	origStrides := in.Strides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case in.extents[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// sourceIndex maps a flat position of the output to the flat position in a source
// read through broadcast strides.
func sourceIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
