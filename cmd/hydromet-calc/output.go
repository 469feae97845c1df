package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/hydromet/explorer/pkg/infiltration"
)

// writeSeries prints an infiltration series in the requested format
func writeSeries(w io.Writer, s *infiltration.Series, format string) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "t (hr)\tf(t) (cm/hr)\tF(t) (cm)")
		for i := range s.Time {
			fmt.Fprintf(tw, "%.3f\t%.4f\t%.4f\n", s.Time[i], s.Rate[i], s.Cumulative[i])
		}
		return tw.Flush()
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"time_hr", "rate_cm_hr", "cumulative_cm"}); err != nil {
			return err
		}
		for i := range s.Time {
			record := []string{
				strconv.FormatFloat(s.Time[i], 'g', -1, 64),
				strconv.FormatFloat(s.Rate[i], 'g', -1, 64),
				strconv.FormatFloat(s.Cumulative[i], 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("unknown output format %q (want table, csv, or json)", format)
	}
}
