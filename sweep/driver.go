package sweep

import "github.com/bsm/sweepline/geom"

// DefaultEpsilon is the default swap offset: small enough not to
// skip another pending event at the coordinate magnitudes this package
// targets, large enough to clear floating-point noise.
const DefaultEpsilon = 1e-9

// Compute runs the Bentley-Ottmann sweep over segments and returns the
// distinct intersection points, in lexicographic order. It fails fatally
// (returns a *geom.InvariantError) if segments violate the data-model
// invariants or if two segments turn out to be collinear and overlapping.
func Compute(segments []geom.Segment) (*Result, error) {
	return ComputeWithEpsilon(segments, DefaultEpsilon)
}

// ComputeWithEpsilon is Compute with an explicit swap epsilon;
// most callers want Compute.
func ComputeWithEpsilon(segments []geom.Segment, eps float64) (*Result, error) {
	if err := geom.ValidateDistinctEndpoints(segments); err != nil {
		return nil, err
	}

	d := &driver{
		segments: segments,
		queue:    NewEventQueue(segments),
		status:   NewStatus(),
		result:   &Result{},
		seen:     make(map[geom.Point]bool),
		eps:      eps,
	}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.result, nil
}

// driver is the sweep state machine. The sweep x is implicitly the point
// of the last popped event.
type driver struct {
	segments []geom.Segment
	queue    *EventQueue
	status   *Status
	result   *Result
	seen     map[geom.Point]bool
	eps      float64
	sweepX   float64
}

func (d *driver) run() error {
	for {
		ev, ok := d.queue.PopMin()
		if !ok {
			return nil
		}
		d.sweepX = ev.Point.X
		d.status.Update(d.sweepX)

		var err error
		switch ev.Kind {
		case Begin:
			err = d.handleBegin(ev)
		case End:
			err = d.handleEnd(ev)
		case Intersection:
			err = d.handleIntersection(ev)
		}
		if err != nil {
			return err
		}
	}
}

func (d *driver) handleBegin(ev *Event) error {
	seg := d.segments[ev.A]
	d.status.Insert(seg, seg.P.Y)

	above, below := d.status.Neighbors(seg.ID)
	if above != nil {
		if err := d.checkPair(seg, *above); err != nil {
			return err
		}
	}
	if below != nil {
		if err := d.checkPair(*below, seg); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) handleEnd(ev *Event) error {
	seg := d.segments[ev.A]

	above, below := d.status.Neighbors(seg.ID)
	if above != nil && below != nil {
		if err := d.checkPair(*below, *above); err != nil {
			return err
		}
	}
	d.status.Remove(seg.ID)
	return nil
}

func (d *driver) handleIntersection(ev *Event) error {
	d.record(ev.Point, ev.A, ev.B)

	bigger, smaller, biggerAbove, smallerBelow, ok := d.status.SwapAndGetNewNeighbors(ev.A, ev.B, ev.Point, d.eps)
	if !ok {
		// One of the pair was already removed by an End event at this
		// same point; there is nothing left in the status to re-sort.
		return nil
	}

	biggerSeg, _ := d.status.Segment(bigger)
	smallerSeg, _ := d.status.Segment(smaller)

	if biggerAbove != nil {
		if err := d.checkPair(biggerSeg, *biggerAbove); err != nil {
			return err
		}
	}
	if smallerBelow != nil {
		if err := d.checkPair(*smallerBelow, smallerSeg); err != nil {
			return err
		}
	}
	return nil
}

// checkPair computes the intersection of two segments known to be
// adjacent in the status (lower below upper) and, if any, schedules it.
func (d *driver) checkPair(lower, upper geom.Segment) error {
	pt, ok, err := geom.Intersect(lower, upper)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	// A point already in the result has been processed as an event.
	// Queueing it again would only repeat a swap at that point (in a
	// multi-way concurrency, undoing an earlier one) and never terminate.
	if d.seen[pt] {
		return nil
	}
	d.queue.AddIntersection(pt, d.sweepX, lower.ID, upper.ID)
	return nil
}

func (d *driver) record(pt geom.Point, a, b geom.SegmentID) {
	if d.seen[pt] {
		return
	}
	d.seen[pt] = true
	d.result.Points = append(d.result.Points, ResultPoint{Point: pt, A: a, B: b})
}
