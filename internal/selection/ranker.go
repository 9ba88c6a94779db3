// Package selection orders scored symbols into the run leaderboard.
package selection

import (
	"sort"

	"tradescan/internal/contracts"
)

// Entry is one admitted symbol with its final standing.
type Entry struct {
	Rank   int                       `json:"rank"`
	Result contracts.CompositeResult `json:"result"`
}

// Leaderboard is the ordered outcome of a run: every admitted symbol ranked
// best-first, and every rejection kept for the report.
type Leaderboard struct {
	Ranked   []Entry                     `json:"ranked"`
	Rejected []contracts.CompositeResult `json:"rejected"`
}

// Build sorts admitted results by weighted total, best first. Ties break on
// symbol ascending so two runs over the same data produce the same order.
// Rejections are sorted by symbol for stable output.
func Build(results []contracts.CompositeResult) Leaderboard {
	var board Leaderboard
	for _, r := range results {
		if r.Passed {
			board.Ranked = append(board.Ranked, Entry{Result: r})
		} else {
			board.Rejected = append(board.Rejected, r)
		}
	}

	sort.Slice(board.Ranked, func(i, j int) bool {
		a, b := board.Ranked[i].Result, board.Ranked[j].Result
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		return a.Symbol < b.Symbol
	})
	for i := range board.Ranked {
		board.Ranked[i].Rank = i + 1
	}

	sort.Slice(board.Rejected, func(i, j int) bool {
		return board.Rejected[i].Symbol < board.Rejected[j].Symbol
	})

	return board
}

// Top returns the first n entries, or all of them when fewer are ranked.
func (l Leaderboard) Top(n int) []Entry {
	if n <= 0 || n > len(l.Ranked) {
		n = len(l.Ranked)
	}
	return l.Ranked[:n]
}
