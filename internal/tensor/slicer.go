package tensor

import "slices"

// Slicer is a validated half-open range with a step, over every axis of a shape.
//
// For each axis i it selects the indices start[i], start[i]+step, ... while < stop[i].
type Slicer struct {
	start []int
	stop  []int
	step  int
	shape Shape
}

// NewSlicer builds and validates a Slicer over shape.
func NewSlicer(shape Shape, start, stop []int, step int) (Slicer, error) {
	s := Slicer{start: slices.Clone(start), stop: slices.Clone(stop), step: step, shape: shape}
	if err := s.Validate(); err != nil {
		return Slicer{}, err
	}
	return s, nil
}

// SliceFromBegin builds a Slicer whose start is zero on every axis.
func SliceFromBegin(shape Shape, stop []int, step int) (Slicer, error) {
	return NewSlicer(shape, make([]int, shape.Rank()), stop, step)
}

// SliceToEnd builds a Slicer whose stop is the shape's extent on every axis.
func SliceToEnd(shape Shape, start []int, step int) (Slicer, error) {
	return NewSlicer(shape, start, shape.Extents(), step)
}

// Validate checks the Slicer invariants, scanning axes in order, and returns a
// BadSliceError for the first violation.
func (s Slicer) Validate() error {
	rank := s.shape.Rank()
	if len(s.start) != rank || len(s.stop) != rank {
		return &BadSliceError{Reason: SliceRankMismatch, Axis: -1, Extent: rank, Step: s.step}
	}
	if s.step <= 0 {
		return &BadSliceError{Reason: SliceNonPositiveStep, Axis: -1, Step: s.step}
	}
	for i := range rank {
		start, stop, extent := s.start[i], s.stop[i], s.shape.extents[i]
		fail := func(reason SliceReason) error {
			return &BadSliceError{Reason: reason, Axis: i, Start: start, Stop: stop, Extent: extent, Step: s.step}
		}
		switch {
		case start < 0 || stop < 0:
			return fail(SliceNegativeBound)
		case start > stop:
			return fail(SliceStartAfterStop)
		case stop > extent:
			return fail(SliceStopBeyondExtent)
		}
	}
	return nil
}

// Start returns a copy of the per-axis start bounds.
func (s Slicer) Start() []int { return slices.Clone(s.start) }

// Stop returns a copy of the per-axis stop bounds.
func (s Slicer) Stop() []int { return slices.Clone(s.stop) }

// Step returns the step.
func (s Slicer) Step() int { return s.step }

// Shape returns the shape the Slicer was validated against.
func (s Slicer) Shape() Shape { return s.shape }

// counts returns how many indices the Slicer selects on each axis.
func (s Slicer) counts() []int {
	counts := make([]int, len(s.start))
	for i := range s.start {
		counts[i] = (s.stop[i] - s.start[i] + s.step - 1) / s.step
	}
	return counts
}
