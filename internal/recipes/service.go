// Package recipes proxies the recipe provider, returning dishes tied to
// a location.
package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
	"sabores_backend/platform/sanitize"
)

type Service struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

func NewService(cfg config.RecipesConfig, log *logger.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.GetRecipeAPIURL(),
		log:     log,
	}
}

// Search returns recipes associated with a location. A blank location
// short-circuits; provider failures degrade to an empty list.
func (s *Service) Search(ctx context.Context, location string) []Recipe {
	if strings.TrimSpace(location) == "" {
		return []Recipe{}
	}

	body, err := json.Marshal(SearchRequest{Location: location})
	if err != nil {
		s.log.UpstreamError("recipes", err)
		return []Recipe{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/recipes/search", bytes.NewReader(body))
	if err != nil {
		s.log.UpstreamError("recipes", err)
		return []Recipe{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("recipes", err)
		return []Recipe{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.UpstreamError("recipes", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return []Recipe{}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.log.UpstreamError("recipes", err)
		return []Recipe{}
	}
	if parsed.Recipes == nil {
		return []Recipe{}
	}
	for i := range parsed.Recipes {
		parsed.Recipes[i].Name = sanitize.Text(parsed.Recipes[i].Name)
		parsed.Recipes[i].Description = sanitize.Text(parsed.Recipes[i].Description)
	}
	return parsed.Recipes
}
