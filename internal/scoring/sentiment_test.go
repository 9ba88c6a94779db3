package scoring

import (
	"testing"

	"tradescan/internal/contracts"
	"tradescan/internal/strategyconfig"
)

func TestKeywordScorer(t *testing.T) {
	scorer := NewKeywordScorer(strategyconfig.Default().Sentiment)

	tests := []struct {
		name      string
		headlines []contracts.Headline
		check     func(t *testing.T, got float64)
	}{
		{
			"positive tone",
			[]contracts.Headline{
				{Title: "Company beats estimates on record growth"},
				{Title: "Analyst upgrade after strong quarter"},
			},
			func(t *testing.T, got float64) {
				if got <= 5 {
					t.Errorf("score = %.2f, want > 5", got)
				}
			},
		},
		{
			"negative tone",
			[]contracts.Headline{
				{Title: "Revenue miss sparks concern"},
				{Title: "Regulator opens investigation, shares decline"},
			},
			func(t *testing.T, got float64) {
				if got >= 5 {
					t.Errorf("score = %.2f, want < 5", got)
				}
			},
		},
		{
			"no polarity hits",
			[]contracts.Headline{
				{Title: "Company schedules annual meeting"},
			},
			func(t *testing.T, got float64) {
				if got != contracts.NeutralScore {
					t.Errorf("score = %.2f, want exactly neutral", got)
				}
			},
		},
		{
			"keywords in body text",
			[]contracts.Headline{
				{Title: "Quarterly update", Text: "Margins surge past guidance in a record quarter"},
			},
			func(t *testing.T, got float64) {
				if got <= 5 {
					t.Errorf("score = %.2f, want > 5 from body keywords", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, scorer.ScoreHeadlines(tt.headlines))
		})
	}
}

func TestScoreSentimentMissingNews(t *testing.T) {
	engine := newEngine(t)

	sub := engine.scoreSentiment(contracts.Unavailable(contracts.AuxNews))
	if sub.Value != contracts.NeutralScore || !sub.Degraded {
		t.Errorf("missing news: %.2f degraded=%v, want neutral degraded", sub.Value, sub.Degraded)
	}

	failed := engine.scoreSentiment(contracts.Failed(contracts.AuxNews, contracts.ErrTransient))
	if failed.Value != contracts.NeutralScore || !failed.Degraded {
		t.Error("failed news fetch must also degrade to neutral")
	}
}
