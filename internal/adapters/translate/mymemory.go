package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemory is the secondary translation backend
type MyMemory struct {
	baseURL string
	client  *http.Client
}

// NewMyMemory creates new MyMemory backend
func NewMyMemory(timeout time.Duration) *MyMemory {
	return &MyMemory{
		baseURL: myMemoryURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (t *MyMemory) Name() string {
	return "mymemory"
}

func (t *MyMemory) Translate(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", from+"|"+to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d", resp.StatusCode)
	}

	var result struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("empty translation in response")
	}

	return result.ResponseData.TranslatedText, nil
}
