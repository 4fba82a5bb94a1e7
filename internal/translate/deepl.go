package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultDeepLURL is the free-tier DeepL endpoint
const DefaultDeepLURL = "https://api-free.deepl.com/v2/translate"

// DeepLTranslator translates words using the DeepL API
type DeepLTranslator struct {
	apiKey string
	url    string
	http   *resty.Client
}

// NewDeepLTranslator creates a DeepL client. An empty url selects the free-tier endpoint.
func NewDeepLTranslator(apiKey, url string) *DeepLTranslator {
	if url == "" {
		url = DefaultDeepLURL
	}
	return &DeepLTranslator{
		apiKey: apiKey,
		url:    url,
		http:   resty.New().SetTimeout(20 * time.Second),
	}
}

func (d *DeepLTranslator) Name() string {
	return "deepl"
}

type deeplRequest struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends one word to DeepL. An empty translation list yields an empty string.
func (d *DeepLTranslator) Translate(ctx context.Context, word, targetLang string) (string, error) {
	if d.apiKey == "" {
		return "", fmt.Errorf("DeepL API key not configured")
	}

	lang, err := ValidateLanguage(targetLang)
	if err != nil {
		return "", err
	}

	var resp deeplResponse
	r, err := d.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "DeepL-Auth-Key "+d.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(deeplRequest{Text: []string{word}, TargetLang: lang}).
		SetResult(&resp).
		Post(d.url)
	if err != nil {
		return "", fmt.Errorf("DeepL API request: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("DeepL API error (status %d): %s", r.StatusCode(), r.String())
	}

	if len(resp.Translations) == 0 {
		return "", nil
	}
	return resp.Translations[0].Text, nil
}
