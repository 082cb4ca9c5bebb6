package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/lexishift/lexishift"
)

// OpenAI implements Translator using OpenAI's chat API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig configures the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string  // API key
	Model       string  // default: "gpt-4o-mini"
	Temperature float32 // default: 0.2
	BaseURL     string  // custom base URL, optional
}

// NewOpenAI creates an OpenAI backend.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a batch of texts.
func (p *OpenAI) Translate(ctx context.Context, req Request) ([]string, error) {
	if len(req.Texts) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &lexishift.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &lexishift.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Texts))
}

func (p *OpenAI) buildSystemPrompt(req Request) string {
	sourceName := lexishift.GetLanguageName(req.SourceLang)
	targetName := lexishift.GetLanguageName(req.TargetLang)

	var prompt string
	if req.Kind == KindIdentifier {
		prompt = fmt.Sprintf(`# Role
You translate source-code identifiers from %s to %s for a programming dictionary.

# Rules
- Each output must be a single valid identifier: no spaces, no punctuation except underscores.
- Preserve the casing convention of the input: camelCase stays camelCase, PascalCase stays PascalCase, snake_case stays snake_case.
- Translate each word component of a compound name: "getUserName" becomes the %s equivalents of "get", "user", "name" joined in the same convention.
- Prefer short, conventional programming vocabulary over literary phrasing.
- Never expand abbreviations; translate them as-is or keep them.`,
			sourceName, targetName, targetName)
	} else {
		prompt = fmt.Sprintf(`# Role
You translate source-code comments from %s to %s for a programming dictionary.

# Rules
- Translate into natural, idiomatic %s as a native developer would write a comment.
- Do NOT translate code fragments, identifiers in backticks, URLs, or file paths embedded in the comment.
- Preserve line structure: a multi-line input keeps the same number of lines.
- Keep the register terse and technical.`,
			sourceName, targetName, targetName)
	}

	if req.Context != "" {
		prompt += fmt.Sprintf("\n\n# Context\nThe codebase is: %s. Use domain-appropriate vocabulary.", req.Context)
	}

	if len(req.Glossary) > 0 {
		prompt += "\n\n# Glossary\nPrefer these translations:"
		for source, target := range req.Glossary {
			prompt += fmt.Sprintf("\n- %q → %s", source, target)
		}
	}

	prompt += `

# Format
Return a valid JSON object with a single key "translations" containing an array of strings in the exact same order as the input.
Example: { "translations": ["first", "second"] }
Do NOT wrap the output in Markdown code blocks.`

	return prompt
}

func (p *OpenAI) buildUserMessage(req Request) string {
	data, _ := json.Marshal(req.Texts)
	return string(data)
}

func (p *OpenAI) parseResponse(content string, expectedCount int) ([]string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		if translations, ok := obj["translations"]; ok {
			if arr, ok := translations.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
		// Fallback: first array value under any key.
		for _, v := range obj {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(content), &arr); err == nil {
		return toStringSlice(arr, expectedCount)
	}

	return nil, &lexishift.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}

	if len(result) != expectedCount {
		return nil, &lexishift.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}
	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

var _ Translator = (*OpenAI)(nil)
