package truth

import (
	"context"
	"fmt"
	"strings"
)

// maxInputRunes is the slice of text handed to both the classifier and the
// noise estimator, keeping the two computations consistent and respecting
// the classifier's input-length constraint.
const maxInputRunes = 512

// Classification is the raw output of a sentiment classifier.
type Classification struct {
	Label      string
	Confidence float64
}

// Classifier maps text to a sentiment label with a confidence value. The
// engine treats it as an opaque capability so test doubles drop in with no
// changes to the scoring code.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Result is the combined output of one analysis.
type Result struct {
	SentimentLabel   string  `json:"sentiment_label"`
	Confidence       float64 `json:"confidence"`
	NoiseProbability float64 `json:"noise_probability"`
	IntegrityScore   float64 `json:"integrity_score"`
}

// Engine fuses a sentiment classification with the noise heuristic into a
// single integrity score.
type Engine struct {
	classifier Classifier
}

// NewEngine creates a Truth Engine over the given classifier.
func NewEngine(classifier Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Analyze scores the given text. Noisy text has its sentiment discounted
// toward zero: integrity = sentiment scalar * (1 - noise probability).
func (e *Engine) Analyze(ctx context.Context, text string) (*Result, error) {
	safeText := truncateRunes(text, maxInputRunes)

	classification, err := e.classifier.Classify(ctx, safeText)
	if err != nil {
		return nil, fmt.Errorf("failed to classify text: %w", err)
	}

	label := NormalizeLabel(classification.Label)
	noise := NoiseProbability(safeText)
	integrity := float64(SentimentScalar(label)) * (1.0 - noise)

	return &Result{
		SentimentLabel:   label,
		Confidence:       classification.Confidence,
		NoiseProbability: noise,
		IntegrityScore:   integrity,
	}, nil
}

// NormalizeLabel maps model-specific label forms (LABEL_0/1/2 and case
// variants) onto NEGATIVE, NEUTRAL, or POSITIVE. Unrecognized labels pass
// through uppercased rather than being rejected.
func NormalizeLabel(raw string) string {
	switch strings.ToUpper(raw) {
	case "LABEL_0", "NEGATIVE":
		return "NEGATIVE"
	case "LABEL_1", "NEUTRAL":
		return "NEUTRAL"
	case "LABEL_2", "POSITIVE":
		return "POSITIVE"
	default:
		return strings.ToUpper(raw)
	}
}

// SentimentScalar maps a normalized label to its signed scalar. Labels
// outside the known set default to 0.
func SentimentScalar(label string) int {
	switch label {
	case "NEGATIVE":
		return -1
	case "POSITIVE":
		return 1
	default:
		return 0
	}
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
