package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longParagraph(sentence string) string {
	p := sentence
	for len(p) < 220 {
		p += " " + sentence
	}
	return p
}

func articleHTML(title string, paragraphs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	if title != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>", title)
	}
	for _, p := range paragraphs {
		fmt.Fprintf(&b, "<p>%s</p>", p)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestExtractHappyPath(t *testing.T) {
	t.Parallel()

	first := longParagraph("Asian markets opened higher after the policy announcement.")
	second := longParagraph("Analysts expect the rally to continue through the quarter.")
	html := articleHTML("Markets Rally", first, second)

	record, err := Extract(html, "https://news.example.com/markets/rally")
	require.NoError(t, err)

	assert.Equal(t, "Markets Rally", record.Title)
	assert.Equal(t, first+" "+second, record.Content)
	assert.Equal(t, "news.example.com", record.SourceDomain)
	assert.Equal(t, "https://news.example.com/markets/rally", record.URL)
	assert.False(t, record.PublishedAt.IsZero())
}

func TestExtractMissingTitle(t *testing.T) {
	t.Parallel()

	html := articleHTML("", longParagraph("Plenty of body text but no heading element anywhere."))

	record, err := Extract(html, "https://news.example.com/no-title")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNoTitle)
}

func TestExtractContentTooShort(t *testing.T) {
	t.Parallel()

	// One paragraph over the 50-char block filter but under the 200-char
	// page floor: looks like a paywall shell.
	html := articleHTML("Paywalled Story", "Subscribe now to continue reading this article today.")

	record, err := Extract(html, "https://news.example.com/paywall")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrContentTooShort)
}

func TestExtractThresholdsCountCharactersNotBytes(t *testing.T) {
	t.Parallel()

	// Two-byte runes: a 40-char block and a 161-char body are 80 and 322
	// bytes. Byte-based thresholds would keep the block and accept the
	// page; character counting must reject both.
	shortBlock := strings.Repeat("é", 40)
	body := strings.Repeat("é", 161)
	html := articleHTML("Catatan Pasar", shortBlock, body)

	record, err := Extract(html, "https://news.example.com/multibyte")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrContentTooShort)
}

func TestExtractMultiByteContentAccepted(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("é", 210)
	html := articleHTML("Catatan Pasar", body)

	record, err := Extract(html, "https://news.example.com/multibyte-ok")
	require.NoError(t, err)
	assert.Equal(t, body, record.Content)
}

func TestExtractDropsShortParagraphs(t *testing.T) {
	t.Parallel()

	kept := longParagraph("Regulators approved the merger after a lengthy review process.")
	html := articleHTML("Merger Approved", "Short caption.", kept, "By staff writer.")

	record, err := Extract(html, "https://news.example.com/merger")
	require.NoError(t, err)

	assert.Equal(t, kept, record.Content)
}

func TestExtractDomainKeepsPort(t *testing.T) {
	t.Parallel()

	html := articleHTML("Local Test", longParagraph("Body text long enough to pass both extraction thresholds easily."))

	record, err := Extract(html, "http://127.0.0.1:8080/article/1")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", record.SourceDomain)
}
