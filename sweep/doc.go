/*
Package sweep implements the Bentley-Ottmann sweep engine: the event
queue, the sweep-line status, and the driver state machine that together
compute every pairwise intersection among a set of planar segments in
O((n + k) log n).

Event queue

Events are ordered by point, and deduplicated on (point, kind, segment
pair) so a crossing discovered independently from both of its neighbors
is only scheduled once:

	+-------+-------+-------+-------+
	| Begin |  End  |          Intersection      |
	+-------+-------+-------+-------+
	  1 per segment    0..k, discovered as the sweep advances

Status

The status holds the segments crossing the sweep line, sorted by their Y
value at the current sweep X. Between events the relative order of most
entries is unchanged, so re-sorting after every Update or swap uses a
binary-insertion pass that is linear on the common near-sorted case
rather than a full comparison sort.

Driver

	pop event -> status.Update(x) -> dispatch(Begin | End | Intersection)

Begin and End discover new candidate crossings from immediate neighbors
only; Intersection records the point, swaps the crossing pair's status
order, and re-checks their new neighbors.
*/
package sweep
