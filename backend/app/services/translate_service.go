package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"simple-notes/backend/config"
)

// TranslateService proxies text to the Deep Translate API. Failures
// here are descriptive errors outside the domain taxonomy; the bounded
// client timeout keeps a slow upstream from hanging requests.
type TranslateService struct {
	cfg    config.Translate
	client *http.Client
}

func NewTranslateService(cfg config.Translate) *TranslateService {
	return &TranslateService{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Data struct {
		Translations struct {
			TranslatedText []string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (s *TranslateService) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{Q: text, Source: s.cfg.Source, Target: s.cfg.Target})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Host", s.cfg.APIHost)
	req.Header.Set("X-RapidAPI-Key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Translation API Error (%d)", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	texts := decoded.Data.Translations.TranslatedText
	if len(texts) == 0 {
		return "", fmt.Errorf("translate response missing translation")
	}
	return texts[0], nil
}
