package search

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/go-resty/resty/v2"
)

const (
	systemPrompt = `You are a helpful medical AI assistant for doctors. Provide accurate, evidence-based information in response to medical queries.
Format your responses in HTML with appropriate headers, paragraphs, and lists.
Include relevant citations to medical literature when possible.
Always clarify that your responses are informational and not a substitute for clinical judgment.
Organize your response with clear sections and avoid excessive detail.`
	maxTokens      = 800
	fallbackAnswer = "Sorry, I couldn't generate a response."
)

// OpenAIClient answers medical questions using the chat completions API.
type OpenAIClient struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenAIClient(baseURL, apiKey, model string) *OpenAIClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(time.Minute)

	return &OpenAIClient{client: c, apiKey: apiKey, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Answer returns an HTML formatted answer to query.
func (o *OpenAIClient) Answer(ctx context.Context, query string) (string, error) {
	if o.apiKey == "" {
		return "", errdef.NewUnavailable("OpenAI API key not configured")
	}

	request := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		MaxTokens: maxTokens,
	}

	var body chatResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(&request).
		SetResult(&body).
		SetError(&body).
		Post("/chat/completions")
	if err != nil {
		return "", errdef.NewBadGateway("openai request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		message := resp.Status()
		if body.Error != nil {
			message = body.Error.Message
		}
		return "", errdef.NewBadGateway("openai status %d: %s", resp.StatusCode(), message)
	}

	if len(body.Choices) == 0 || strings.TrimSpace(body.Choices[0].Message.Content) == "" {
		return fallbackAnswer, nil
	}
	return body.Choices[0].Message.Content, nil
}
