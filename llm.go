package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"
const defaultOpenAIModel = "gpt-4o-mini"

// modelInputLimit bounds how much page text is submitted per request. The
// extraction side already pre-limits to 8000; this is the hard cap.
const modelInputLimit = 5000

const classifySystemPrompt = `You analyze the emotional tone of webpage text for a wellness assistant.

Classify the dominant emotion of the text as exactly one of: positive, negative, anxiety, anger, neutral.

Respond with JSON only (no markdown):
{"emotion": "anxiety", "score": 0.42, "intensity": "medium", "keywords": ["deadline", "pressure"], "suggestion": "one short wellness tip for the reader"}

Rules:
- score is 0 to 1 (strength of the detected emotion)
- intensity is one of: low, medium, high
- keywords are up to 8 words from the text that drove the decision
- suggestion is a single encouraging sentence`

// ModelClassifier asks a hosted LLM to classify page text. Every failure
// mode (missing key, transport error, malformed response) is reported as
// ok=false so the caller can fall back; nothing propagates.
type ModelClassifier struct {
	provider string // "anthropic" or "openai"
	model    string
	apiKey   string
	timeout  time.Duration

	mu        sync.Mutex
	anthropic *anthropic.Client // created lazily on first use
	httpc     *http.Client
}

func NewModelClassifier(cfg Config) *ModelClassifier {
	apiKey := cfg.AnthropicAPIKey
	if cfg.LLMProvider == "openai" {
		apiKey = cfg.OpenAIAPIKey
	}
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	return &ModelClassifier{
		provider: cfg.LLMProvider,
		model:    cfg.LLMModel,
		apiKey:   apiKey,
		timeout:  timeout,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Classify returns ok=false whenever the model path cannot produce a valid
// result. The raw error never leaves this method.
func (m *ModelClassifier) Classify(ctx context.Context, text string) (ClassificationResult, bool) {
	if m.apiKey == "" {
		return ClassificationResult{}, false
	}
	if len(text) > modelInputLimit {
		text = text[:modelInputLimit]
	}
	userPrompt := "Classify the emotional tone of this page text:\n\n" + text

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	var responseText string
	var err error
	switch m.provider {
	case "openai":
		model := m.model
		if model == "" {
			model = defaultOpenAIModel
		}
		responseText, err = m.callOpenAI(ctx, model, classifySystemPrompt, userPrompt)
	default:
		model := m.model
		if model == "" {
			model = defaultAnthropicModel
		}
		responseText, err = m.callAnthropic(ctx, model, classifySystemPrompt, userPrompt)
	}
	if err != nil {
		log.Printf("classify model unavailable provider=%s err=%v", m.provider, err)
		return ClassificationResult{}, false
	}

	result, err := parseModelResult(responseText)
	if err != nil {
		log.Printf("classify model response invalid provider=%s err=%v", m.provider, err)
		return ClassificationResult{}, false
	}
	return result, true
}

// parseModelResult extracts the first well-formed JSON object from the raw
// response (models may wrap it in prose or markdown fences), then validates
// the structural minimum: emotion present, score numeric.
func parseModelResult(responseText string) (ClassificationResult, error) {
	payload, err := extractJSONObject(responseText)
	if err != nil {
		return ClassificationResult{}, err
	}

	emotionField := gjson.Get(payload, "emotion")
	if !emotionField.Exists() {
		return ClassificationResult{}, fmt.Errorf("response missing emotion field")
	}
	emotion, ok := ParseEmotion(emotionField.String())
	if !ok {
		return ClassificationResult{}, fmt.Errorf("unknown emotion %q", emotionField.String())
	}

	scoreField := gjson.Get(payload, "score")
	if scoreField.Type != gjson.Number {
		return ClassificationResult{}, fmt.Errorf("score is not numeric: %q", scoreField.Raw)
	}

	intensity := strings.ToLower(gjson.Get(payload, "intensity").String())
	switch intensity {
	case IntensityLow, IntensityMedium, IntensityHigh:
	default:
		intensity = IntensityMedium
	}

	keywords := []string{}
	for _, k := range gjson.Get(payload, "keywords").Array() {
		if w := strings.TrimSpace(k.String()); w != "" {
			keywords = append(keywords, w)
		}
	}

	return ClassificationResult{
		Emotion:    emotion,
		Score:      clamp01(scoreField.Float()),
		Intensity:  intensity,
		Keywords:   keywords,
		Suggestion: strings.TrimSpace(gjson.Get(payload, "suggestion").String()),
		Source:     SourceModel,
	}, nil
}

// extractJSONObject returns the first balanced top-level {...} in the text.
func extractJSONObject(responseText string) (string, error) {
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	start := strings.Index(responseText, "{")
	if start < 0 {
		return "", fmt.Errorf("no JSON object in response")
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(responseText); i++ {
		c := responseText[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				candidate := responseText[start : i+1]
				if !gjson.Valid(candidate) {
					return "", fmt.Errorf("malformed JSON object in response")
				}
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("unterminated JSON object in response")
}

// --- Anthropic ---

func (m *ModelClassifier) anthropicClient() *anthropic.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.anthropic == nil {
		client := anthropic.NewClient(option.WithAPIKey(m.apiKey))
		m.anthropic = &client
	}
	return m.anthropic
}

func (m *ModelClassifier) callAnthropic(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	client := m.anthropicClient()

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm anthropic response size=%d tokens_in=%d tokens_out=%d", len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}

// --- OpenAI ---

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (m *ModelClassifier) callOpenAI(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	reqBody := openAIRequest{
		Model: model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(respBody, &openAIResp); err != nil {
		return "", fmt.Errorf("parsing OpenAI response: %w", err)
	}
	if openAIResp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", openAIResp.Error.Message)
	}
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	log.Printf("llm openai response size=%d", len(openAIResp.Choices[0].Message.Content))
	return openAIResp.Choices[0].Message.Content, nil
}
