package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Anxten/senti-quant/internal/pipeline/config"
	"github.com/Anxten/senti-quant/internal/pipeline/truth"
	"github.com/Anxten/senti-quant/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const classifyPromptTemplate = `You are a financial news sentiment classifier.
Classify the sentiment of the following text and respond with JSON only:

{
  "label": "negative | neutral | positive",
  "confidence": {0.0 - 1.0}
}

Text:
%s`

type classifyResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// geminiClassifier implements truth.Classifier using the Google Gemini API.
type geminiClassifier struct {
	cfg            *config.Config
	logger         *logger.Logger
	genAiClient    *genai.Client
	requestLimiter *rate.Limiter
}

// NewGeminiClassifier creates a Gemini-backed sentiment classifier. A
// construction failure here is fatal to the scoring phase: no scoring can
// proceed without the model.
func NewGeminiClassifier(ctx context.Context, cfg *config.Config, log *logger.Logger) (truth.Classifier, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	maxRPM := cfg.Gemini.MaxRequestPerMinute
	if maxRPM <= 0 {
		maxRPM = 15
	}
	secondsPerRequest := time.Minute / time.Duration(maxRPM)

	return &geminiClassifier{
		cfg:            cfg,
		logger:         log,
		genAiClient:    genAiClient,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}, nil
}

// Classify sends the text to Gemini and parses the label/confidence JSON.
func (c *geminiClassifier) Classify(ctx context.Context, text string) (truth.Classification, error) {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return truth.Classification{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := fmt.Sprintf(classifyPromptTemplate, text)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := c.genAiClient.Models.GenerateContent(ctx, c.cfg.Gemini.Model, contents, nil)
	if err != nil {
		c.logger.Error("Gemini request failed", logger.ErrorField(err))
		return truth.Classification{}, fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	rawJSON := strings.Trim(resp.Text(), "`json\n`")

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		c.logger.Error("Failed to unmarshal classification", logger.ErrorField(err), logger.StringField("response", rawJSON))
		return truth.Classification{}, fmt.Errorf("failed to unmarshal classification from Gemini response: %w", err)
	}

	return truth.Classification{
		Label:      parsed.Label,
		Confidence: parsed.Confidence,
	}, nil
}
