package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const libreTranslateURL = "https://libretranslate.de/translate"

// LibreTranslate is the primary translation backend (free, no API key)
type LibreTranslate struct {
	baseURL string
	client  *http.Client
}

// NewLibreTranslate creates new LibreTranslate backend
func NewLibreTranslate(timeout time.Duration) *LibreTranslate {
	return &LibreTranslate{
		baseURL: libreTranslateURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (t *LibreTranslate) Name() string {
	return "libretranslate"
}

func (t *LibreTranslate) Translate(ctx context.Context, text, from, to string) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("source", from)
	form.Set("target", to)
	form.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d", resp.StatusCode)
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("empty translation in response")
	}

	return result.TranslatedText, nil
}
