// Package gemini wraps the Gemini generateContent REST API for nutrition and
// exercise estimation. Responses are requested as strict JSON so they can be
// decoded without prose cleanup.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
)

// FoodEstimate is the model's nutrition guess for a free-text food query.
type FoodEstimate struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// EstimateFood asks the model for per-serving nutrition of a described food.
func (c *Client) EstimateFood(ctx context.Context, description string) (FoodEstimate, error) {
	prompt := fmt.Sprintf(
		"Estimate the nutrition of one typical serving of %q. "+
			"Respond with only a JSON object with keys name (string), calories (integer), "+
			"protein_g, carbs_g and fats_g (numbers). No other text.",
		strings.TrimSpace(description),
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return FoodEstimate{}, err
	}

	var est FoodEstimate
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &est); err != nil {
		return FoodEstimate{}, fmt.Errorf("decode gemini food estimate: %w", err)
	}
	if strings.TrimSpace(est.Name) == "" {
		est.Name = strings.TrimSpace(description)
	}
	if est.Calories < 0 {
		return FoodEstimate{}, fmt.Errorf("gemini food estimate has negative calories")
	}
	return est, nil
}

// EstimateExerciseCalories asks the model for the calories burned by a
// session. A zero weight is allowed; the prompt then omits body weight.
func (c *Client) EstimateExerciseCalories(ctx context.Context, weightKg float64, durationMin int, exerciseType, description string) (int, error) {
	subject := strings.TrimSpace(description)
	if subject == "" {
		subject = exerciseType
	}
	prompt := fmt.Sprintf("Estimate calories burned by %d minutes of %s (%s)", durationMin, subject, exerciseType)
	if weightKg > 0 {
		prompt += fmt.Sprintf(" for a person weighing %.1fkg", weightKg)
	}
	prompt += `. Respond with only a JSON object: {"calories": <integer>}. No other text.`

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return 0, err
	}

	var est struct {
		Calories int `json:"calories"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &est); err != nil {
		return 0, fmt.Errorf("decode gemini exercise estimate: %w", err)
	}
	if est.Calories < 0 {
		return 0, fmt.Errorf("gemini exercise estimate has negative calories")
	}
	return est.Calories, nil
}

// generate runs one generateContent call and returns the first candidate text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	model := strings.TrimSpace(c.Model)
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response candidate is empty")
	}
	return text, nil
}

// stripCodeFence trims a surrounding ```json fence the model sometimes adds
// despite the JSON mime-type hint.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"response_mime_type"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
