package chapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAICredentialMissing is returned when generation is requested but no AI
// API key is configured in the environment.
var ErrAICredentialMissing = errors.New("AI credential not configured (set OPENAI_API_KEY or BUNNYCHAP_AI_KEY)")

// GenerationError reports model output that failed the syntactic sniff test.
type GenerationError struct {
	Output string
}

func (e *GenerationError) Error() string {
	snippet := e.Output
	if len(snippet) > 120 {
		snippet = snippet[:120] + "…"
	}
	return fmt.Sprintf("model did not return a JSON object: %q", snippet)
}

const instructionPrompt = `You convert free-text video chapter notes into JSON.
Rules:
- Parse any human timestamp notation (0:00, 1:23, 01:02:03, 5m 30s, 90s, ...) into integer total seconds.
- Extract a short title for each chapter.
- Output exactly this shape: {"chapters":[{"title":"...","start":0,"end":120},...]}.
- When a chapter has no explicit end time, its "end" is the next chapter's "start".
- The final chapter may omit "end" entirely.
- Output the bare JSON object only: no prose, no markdown, no code fences.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generator turns free-text chapter notes into a chapters JSON document via
// an OpenAI-compatible chat-completions endpoint.
type Generator struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGenerator creates a Generator. An empty apiKey produces a generator that
// reports unavailable and fails every Generate call before any network I/O.
func NewGenerator(baseURL, apiKey, model string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Available reports whether an AI credential is configured.
func (g *Generator) Available() bool {
	return g.apiKey != ""
}

// Generate produces a chapters JSON document from free-text notes. The result
// is the model's normalized output as a string; it passes a syntactic sniff
// test (starts with "{" and ends with "}") but is not semantically validated.
func (g *Generator) Generate(ctx context.Context, notes string) (string, error) {
	if !g.Available() {
		return "", ErrAICredentialMissing
	}

	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: instructionPrompt},
			{Role: "user", Content: notes},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("AI API returned empty choices")
	}

	out := normalize(chatResp.Choices[0].Message.Content)
	if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}") {
		return "", &GenerationError{Output: out}
	}
	return out, nil
}

// normalize trims whitespace and strips a surrounding markdown code fence
// ("```json ... ```" or plain "``` ... ```") if present.
func normalize(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	firstNewline := strings.Index(trimmed, "\n")
	if firstNewline == -1 {
		return trimmed
	}
	trimmed = trimmed[firstNewline+1:]
	if idx := strings.LastIndex(trimmed, "```"); idx != -1 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
