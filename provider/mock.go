package provider

import (
	"context"
	"fmt"
)

// Mock is a canned-response Translator for tests.
type Mock struct {
	Translations map[string]string // source text → translation
	CallCount    int
	LastRequest  *Request
}

// NewMock creates a mock with an empty translation table.
func NewMock() *Mock {
	return &Mock{Translations: make(map[string]string)}
}

// Translate returns canned translations, bracketing unknown inputs.
func (m *Mock) Translate(ctx context.Context, req Request) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	results := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		if translation, ok := m.Translations[text]; ok {
			results[i] = translation
		} else {
			results[i] = fmt.Sprintf("[%s]", text)
		}
	}
	return results, nil
}

// Reset clears the call count and last request.
func (m *Mock) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

var _ Translator = (*Mock)(nil)
