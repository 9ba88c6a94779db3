// Package report renders a finished scan for humans and spreadsheets.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"tradescan/internal/contracts"
	"tradescan/internal/scan"
)

const timeUnit = 10 * time.Millisecond

// WriteCSV writes the full leaderboard, admitted rows first in rank order,
// then rejections with their reasons. One row per symbol.
func WriteCSV(w io.Writer, outcome scan.Outcome) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "symbol", "company", "price", "day_change_pct"}
	for _, dim := range contracts.Dimensions() {
		header = append(header, string(dim))
	}
	header = append(header, "composite", "status", "reason")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, entry := range outcome.Board.Ranked {
		r := entry.Result
		row := []string{
			strconv.Itoa(entry.Rank),
			r.Symbol,
			r.Instrument.CompanyName,
			formatFloat(r.Price),
			formatFloat(r.DayChangePct),
		}
		for _, dim := range contracts.Dimensions() {
			row = append(row, formatFloat(r.Score(dim)))
		}
		row = append(row, formatFloat(r.WeightedTotal), "admitted", "")
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, r := range outcome.Board.Rejected {
		row := []string{"", r.Symbol, r.Instrument.CompanyName, formatFloat(r.Price), formatFloat(r.DayChangePct)}
		for range contracts.Dimensions() {
			row = append(row, "")
		}
		row = append(row, "", "rejected", string(r.Reason))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteText renders the top-N table plus the run summary footer.
func WriteText(w io.Writer, outcome scan.Outcome, topN int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RANK\tSYMBOL\tCOMPANY\tPRICE\tCHG%\tSCORE")
	for _, entry := range outcome.Board.Top(topN) {
		r := entry.Result
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%+.2f\t%.2f\n",
			entry.Rank, r.Symbol, r.Instrument.CompanyName, r.Price, r.DayChangePct, r.WeightedTotal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := outcome.Summary
	fmt.Fprintf(w, "\n%d scanned, %d admitted, %d rejected in %s (strategy %s)\n",
		s.Attempted, s.Admitted, s.Rejected, s.Elapsed.Round(timeUnit), s.StrategyID)

	if len(outcome.Board.Rejected) > 0 {
		fmt.Fprintln(w, "\nRejected:")
		for _, r := range outcome.Board.Rejected {
			fmt.Fprintf(w, "  %s\t%s", r.Symbol, r.Reason)
			if r.Detail != "" {
				fmt.Fprintf(w, " (%s)", r.Detail)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
