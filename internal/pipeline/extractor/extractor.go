package extractor

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Paragraphs at or below this trimmed length are boilerplate
	// (captions, bylines, cookie banners) and are dropped.
	minParagraphLength = 50
	// Pages whose joined content falls below this length are treated as
	// paywalls, blockers, or mis-parsed shells rather than articles.
	minContentLength = 200
)

var (
	// ErrNoTitle indicates the page has no h1 heading to use as a title.
	ErrNoTitle = errors.New("no title heading found")
	// ErrContentTooShort indicates the page yielded too little paragraph text.
	ErrContentTooShort = errors.New("extracted content too short")
)

// ScrapedArticle is the structured output of a successful extraction.
type ScrapedArticle struct {
	URL          string
	Title        string
	Content      string
	SourceDomain string
	PublishedAt  time.Time
}

// Extract parses raw HTML into a structured article record. It is a pure
// transform over bytes already fetched and never touches the network.
//
// The published timestamp is stamped with the extraction time; real
// publish-date parsing is deliberately not attempted.
func Extract(html, pageURL string) (*ScrapedArticle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		return nil, ErrNoTitle
	}

	// Thresholds count characters, not bytes, so multi-byte typography
	// (curly quotes, accented text) does not skew accept/reject decisions.
	var blocks []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > minParagraphLength {
			blocks = append(blocks, text)
		}
	})

	content := strings.Join(blocks, " ")
	if utf8.RuneCountInString(content) < minContentLength {
		return nil, ErrContentTooShort
	}

	domain, err := sourceDomain(pageURL)
	if err != nil {
		return nil, err
	}

	return &ScrapedArticle{
		URL:          pageURL,
		Title:        title,
		Content:      content,
		SourceDomain: domain,
		PublishedAt:  time.Now(),
	}, nil
}

// sourceDomain returns the host part of the URL, everything between the
// scheme separator and the next path separator (port included).
func sourceDomain(pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", errors.New("url has no host")
	}
	return parsed.Host, nil
}
