package truth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseProbabilityEmptyText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, NoiseProbability(""))
}

func TestNoiseProbabilityCalmText(t *testing.T) {
	t.Parallel()

	// Low uppercase ratio, no exclamation marks.
	assert.Equal(t, 0.0, NoiseProbability("The central bank maintains current policy rates."))
}

func TestNoiseProbabilityUppercaseOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.4, NoiseProbability("BREAKING NEWS about the market today"))
}

func TestNoiseProbabilityExclamationsOnly(t *testing.T) {
	t.Parallel()

	// Four exclamation marks crosses the threshold; the lowercase body
	// keeps the uppercase ratio below 15%.
	assert.Equal(t, 0.3, NoiseProbability("the market moved today!!!! traders were surprised by it"))
}

func TestNoiseProbabilityBothSignals(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.7, NoiseProbability("STOCK CRASHES!!!! PANIC SELL NOW!!!!"), 1e-9)
}

func TestNoiseProbabilityBoundaries(t *testing.T) {
	t.Parallel()

	// Exactly at the thresholds nothing triggers: 3 exclamation marks and
	// a 15% uppercase ratio are still clean.
	exactUpper := "ABC" + strings.Repeat("a", 17)
	assert.Equal(t, 0.0, NoiseProbability(exactUpper))
	assert.Equal(t, 0.0, NoiseProbability("quiet market day!!! nothing unusual happened at all"))
}

func TestNoiseProbabilityRange(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"!",
		"ALL CAPS EVERYTHING!!!!!!!!",
		"mixed Case with Some Words",
		strings.Repeat("A!", 500),
		"Berita saham hari ini cukup stabil di pasar Asia.",
	}
	for _, input := range inputs {
		p := NoiseProbability(input)
		assert.GreaterOrEqual(t, p, 0.0, "input %q", input)
		assert.LessOrEqual(t, p, 1.0, "input %q", input)
	}
}
