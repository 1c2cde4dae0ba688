package truth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	label      string
	confidence float64
	lastInput  string
}

func (c *stubClassifier) Classify(_ context.Context, text string) (Classification, error) {
	c.lastInput = text
	return Classification{Label: c.label, Confidence: c.confidence}, nil
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"LABEL_0":  "NEGATIVE",
		"label_1":  "NEUTRAL",
		"LABEL_2":  "POSITIVE",
		"negative": "NEGATIVE",
		"Neutral":  "NEUTRAL",
		"POSITIVE": "POSITIVE",
		"bullish":  "BULLISH",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLabel(raw), "raw label %q", raw)
	}
}

func TestSentimentScalar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, SentimentScalar("NEGATIVE"))
	assert.Equal(t, 0, SentimentScalar("NEUTRAL"))
	assert.Equal(t, 1, SentimentScalar("POSITIVE"))
	assert.Equal(t, 0, SentimentScalar("BULLISH"))
}

func TestAnalyzeDiscountsNoisySentiment(t *testing.T) {
	t.Parallel()

	engine := NewEngine(&stubClassifier{label: "negative", confidence: 0.9})

	result, err := engine.Analyze(context.Background(), "STOCK CRASHES!!!! PANIC SELL NOW!!!!")
	require.NoError(t, err)

	assert.Equal(t, "NEGATIVE", result.SentimentLabel)
	assert.Equal(t, 0.9, result.Confidence)
	assert.InDelta(t, 0.7, result.NoiseProbability, 1e-9)
	assert.InDelta(t, -0.3, result.IntegrityScore, 1e-9)
}

func TestAnalyzeCleanNeutralText(t *testing.T) {
	t.Parallel()

	engine := NewEngine(&stubClassifier{label: "neutral", confidence: 0.8})

	result, err := engine.Analyze(context.Background(), "The central bank maintains current policy rates.")
	require.NoError(t, err)

	assert.Equal(t, "NEUTRAL", result.SentimentLabel)
	assert.Equal(t, 0.0, result.NoiseProbability)
	assert.Equal(t, 0.0, result.IntegrityScore)
}

func TestAnalyzeNeutralZeroRegardlessOfNoise(t *testing.T) {
	t.Parallel()

	engine := NewEngine(&stubClassifier{label: "NEUTRAL", confidence: 0.5})

	result, err := engine.Analyze(context.Background(), "MARKET NEWS TODAY!!!! EVERYTHING MOVES!!!!")
	require.NoError(t, err)

	assert.Greater(t, result.NoiseProbability, 0.0)
	assert.Equal(t, 0.0, result.IntegrityScore)
}

func TestAnalyzeTruncatesInput(t *testing.T) {
	t.Parallel()

	stub := &stubClassifier{label: "positive", confidence: 0.9}
	engine := NewEngine(stub)

	long := strings.Repeat("saham naik tajam hari ini. ", 100)
	_, err := engine.Analyze(context.Background(), long)
	require.NoError(t, err)

	assert.Len(t, []rune(stub.lastInput), 512)
}

func TestAnalyzeCleanPositivePassesThrough(t *testing.T) {
	t.Parallel()

	engine := NewEngine(&stubClassifier{label: "LABEL_2", confidence: 0.95})

	result, err := engine.Analyze(context.Background(), "Shares rose modestly after a calm trading session in Asia.")
	require.NoError(t, err)

	assert.Equal(t, "POSITIVE", result.SentimentLabel)
	assert.Equal(t, 1.0, result.IntegrityScore)
}
