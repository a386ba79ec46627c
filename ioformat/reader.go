package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bsm/sweepline/geom"
)

// ErrMalformed is wrapped with the offending line number and returned
// whenever a line cannot be parsed into "x1 y1 x2 y2".
var ErrMalformed = fmt.Errorf("ioformat: malformed segment line")

// ReadSegments parses the input format: one segment per line, four
// whitespace-separated real numbers. Blank lines and surrounding
// whitespace are tolerated. Segment IDs are assigned in file order, so
// the returned slice can be passed directly to sweep.Compute.
func ReadSegments(r io.Reader) ([]geom.Segment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var segments []geom.Segment
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("ioformat: line %d: %w: want 4 fields, got %d", lineNo, ErrMalformed, len(fields))
		}

		coords := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: %w: %v", lineNo, ErrMalformed, err)
			}
			coords[i] = v
		}

		id := geom.SegmentID(len(segments))
		s, err := geom.NewSegment(id, geom.Point{X: coords[0], Y: coords[1]}, geom.Point{X: coords[2], Y: coords[3]})
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %w", lineNo, err)
		}
		segments = append(segments, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}
	return segments, nil
}
