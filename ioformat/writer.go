package ioformat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bsm/sweepline/sweep"
)

// WriteResult writes the output format: one intersection per line,
// two whitespace-separated real numbers, in the result set's
// lexicographic order.
func WriteResult(w io.Writer, res *sweep.Result) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 64)
	for _, pt := range res.AsPoints() {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, pt.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, pt.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
