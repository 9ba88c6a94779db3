package scoring

import (
	"strings"

	"tradescan/internal/contracts"
	"tradescan/internal/strategyconfig"
)

// SentimentScorer maps headlines to a 0-10 value. The engine depends on
// this one method, nothing else; a model-backed implementation slots in
// without the engine changing.
type SentimentScorer interface {
	ScoreHeadlines(headlines []contracts.Headline) float64
}

// KeywordScorer is the baseline SentimentScorer: it counts polarity keyword
// hits in titles and bodies and scales the net balance around the midpoint.
type KeywordScorer struct {
	positive []string
	negative []string
}

// NewKeywordScorer builds the baseline scorer from the strategy keyword
// lists.
func NewKeywordScorer(cfg strategyconfig.Sentiment) *KeywordScorer {
	lower := func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
		return out
	}
	return &KeywordScorer{positive: lower(cfg.Positive), negative: lower(cfg.Negative)}
}

// ScoreHeadlines returns 5 plus the scaled net keyword balance. Headlines
// with no polarity hits at all land exactly on 5.
func (k *KeywordScorer) ScoreHeadlines(headlines []contracts.Headline) float64 {
	var pos, neg float64
	for _, h := range headlines {
		text := strings.ToLower(h.Title + " " + h.Text)
		for _, w := range k.positive {
			if strings.Contains(text, w) {
				pos++
			}
		}
		for _, w := range k.negative {
			if strings.Contains(text, w) {
				neg++
			}
		}
	}

	total := pos + neg
	if total == 0 {
		return contracts.NeutralScore
	}
	return clamp(5+5*(pos-neg)/total, 0, 10)
}

// scoreSentiment rates the news tone. No headlines means no signal: the
// dimension degrades to neutral rather than reading silence as bad news.
func (e *Engine) scoreSentiment(news contracts.AuxResult) contracts.SubScore {
	if !news.Present() {
		return neutral(contracts.DimSentiment)
	}

	value := e.sentiment.ScoreHeadlines(news.Headlines)
	return contracts.SubScore{
		Dimension: contracts.DimSentiment,
		Value:     clamp(value, 0, 10),
		Metrics:   map[string]float64{"headlines": float64(len(news.Headlines))},
	}
}
