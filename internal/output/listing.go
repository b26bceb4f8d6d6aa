// internal/output/listing.go
package output

import (
	"bufio"
	"io"
	"strconv"
)

// FormatFloat renders v with prec significant digits in %g style
// (prec < 0 gives the shortest round-trip form).
func FormatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// WriteListing writes one value per line.
func WriteListing(w io.Writer, vals []float64, prec int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range vals {
		buf = strconv.AppendFloat(buf[:0], v, 'g', prec, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
