package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LLMEnabled reports whether the Gemini name fallback can run.
func LLMEnabled() bool {
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) != ""
}

// NameViaGemini asks Gemini to pull the document holder's name out of raw
// OCR text. It is only used as a last resort when the regex cascade found
// nothing; the returned name still has to pass IsValidName before it is
// trusted.
func NameViaGemini(ctx context.Context, ocrText string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to init Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-lite")
	model.GenerationConfig = genai.GenerationConfig{ResponseMIMEType: "application/json"}

	prompt := `You are an expert data extraction assistant. The following is raw OCR text from an identity document (passport, driver license, ID card or certificate).

Rules:
1. Return a JSON object with a single field "holder_name" containing the document holder's personal name.
2. If no personal name can be found, "holder_name" must be null.
3. Your entire response must be ONLY the JSON object.
4. Remove newline characters and extra whitespace from the name.

Raw text:
"""
` + ocrText + `
"""`

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	jsonStr := strings.TrimSpace(sb.String())
	if jsonStr == "" {
		return "", errors.New("no text in Gemini response")
	}

	var out struct {
		HolderName *string `json:"holder_name"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return "", fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	if out.HolderName == nil {
		return "", errors.New("no name in document")
	}
	return strings.TrimSpace(*out.HolderName), nil
}
