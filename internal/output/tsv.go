package output

import (
	"bufio"
	"fmt"
	"io"

	"lgsim/internal/sweep"
)

// WriteTSV writes one row per sweep point, optionally preceded by TSVHeader.
func WriteTSV(w io.Writer, res sweep.Result, header bool, prec int) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for _, p := range res.Points {
		_, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%s\t%s\n",
			p.Length,
			FormatFloat(p.LRun.Mean, prec), FormatFloat(p.LRun.StdErr, prec),
			FormatFloat(p.GRun.Mean, prec), FormatFloat(p.GRun.StdErr, prec),
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
