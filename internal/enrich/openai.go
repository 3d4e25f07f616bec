// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/template"
)

// tagPromptTmpl asks the model to select existing vault tags for an
// abstract. The model must never invent new tags.
var tagPromptTmpl = template.Must(template.New("tags").Parse(`Given a paper abstract and a list of hashtags I have used in the past to tag abstracts, select up to five relevant hashtags that best describe the abstract. If none fit, return an empty string. Do not create new hashtags, only pick from the list of available hashtags. Return a list of hashtags in whitespace delimited form and nothing else.

Abstract: {{.Abstract}}

Available hashtags: {{.Tags}}`))

// futureWorkPromptTmpl asks the model to summarize the future-work
// discussion of a paper.
var futureWorkPromptTmpl = template.Must(template.New("futurework").Parse(`Given the scientific paper below, succinctly summarize the avenues for future work the authors discuss. No more than 3 sentences in total. Return nothing else.

Paper: {{.Paper}}`))

func renderTagPrompt(abstract, tags string) (string, error) {
	var buf bytes.Buffer
	err := tagPromptTmpl.Execute(&buf, struct{ Abstract, Tags string }{abstract, tags})
	if err != nil {
		return "", fmt.Errorf("rendering tag prompt: %w", err)
	}
	return buf.String(), nil
}

func renderFutureWorkPrompt(paper string) (string, error) {
	var buf bytes.Buffer
	err := futureWorkPromptTmpl.Execute(&buf, struct{ Paper string }{paper})
	if err != nil {
		return "", fmt.Errorf("rendering future-work prompt: %w", err)
	}
	return buf.String(), nil
}

// OpenAIBackend calls an OpenAI-compatible chat-completions endpoint with
// bearer-token authentication.
type OpenAIBackend struct {
	Endpoint string
	APIKey   string
	Model    string
	Client   *http.Client
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage is a single message in the completion conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends one user message and returns the first choice's content.
func (b *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: b.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("completion endpoint returned no choices")
	}
	return cResp.Choices[0].Message.Content, nil
}
