package advisor

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"agriai/internal/locale"
	"agriai/internal/logging"
	"agriai/internal/prompt"
)

// Client dispatches capability requests to the Gemini API. Independent
// requests may run concurrently; the per-locale chat sessions are the only
// shared mutable state.
type Client struct {
	genai *genai.Client
	model string

	chatMu sync.Mutex
	chats  map[locale.Locale]*chatSession
}

// New builds a Client from an API key and model name.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or gemini.apiKey in config)")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		genai: client,
		model: model,
		chats: make(map[locale.Locale]*chatSession),
	}, nil
}

// imageContents builds the request contents for an image-plus-text prompt.
func imageContents(img Image, text string) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MIMEType),
		genai.NewPartFromText(text),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// SoilAnalysis sends a soil photo and returns the model's markdown report.
func (c *Client) SoilAnalysis(ctx context.Context, img Image, l locale.Locale) (string, error) {
	text, err := prompt.Build(prompt.SoilAnalysis, l, prompt.Params{})
	if err != nil {
		return "", err
	}

	t := logging.StartTimer(logging.CategoryAPI, "soilAnalysis")
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, imageContents(img, text), nil)
	t.Stop()
	if err != nil {
		logging.APIError("soilAnalysis request failed: %v", err)
		return "", newFailure(prompt.SoilAnalysis, l, locale.MsgSoilFailed, err)
	}
	return resp.Text(), nil
}

// CropRecommendations sends a soil photo and season and returns structured
// crop picks.
func (c *Client) CropRecommendations(ctx context.Context, img Image, season string, l locale.Locale) (*CropRecommendations, error) {
	text, err := prompt.Build(prompt.CropRecommendation, l, prompt.Params{Season: season})
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   cropRecommendationSchema,
	}

	t := logging.StartTimer(logging.CategoryAPI, "cropRecommendation")
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, imageContents(img, text), cfg)
	t.Stop()
	if err != nil {
		logging.APIError("cropRecommendation request failed: %v", err)
		return nil, newFailure(prompt.CropRecommendation, l, locale.MsgCropsFailed, err)
	}

	var out CropRecommendations
	if err := decodeStrict(resp.Text(), &out); err != nil {
		logging.APIError("cropRecommendation decode failed: %v", err)
		return nil, newFailure(prompt.CropRecommendation, l, locale.MsgCropsFailed, err)
	}
	return &out, nil
}

// FertilizerRecommendations sends a leaf photo and crop name and returns a
// structured diagnosis.
func (c *Client) FertilizerRecommendations(ctx context.Context, img Image, cropName string, l locale.Locale) (*FertilizerRecommendations, error) {
	text, err := prompt.Build(prompt.FertilizerRecommendation, l, prompt.Params{Crop: cropName})
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   fertilizerRecommendationSchema,
	}

	t := logging.StartTimer(logging.CategoryAPI, "fertilizerRecommendation")
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, imageContents(img, text), cfg)
	t.Stop()
	if err != nil {
		logging.APIError("fertilizerRecommendation request failed: %v", err)
		return nil, newFailure(prompt.FertilizerRecommendation, l, locale.MsgFertilizerFailed, err)
	}

	var out FertilizerRecommendations
	if err := decodeStrict(resp.Text(), &out); err != nil {
		logging.APIError("fertilizerRecommendation decode failed: %v", err)
		return nil, newFailure(prompt.FertilizerRecommendation, l, locale.MsgFertilizerFailed, err)
	}
	return &out, nil
}

// WeatherForecast returns a structured 5-day forecast for a location.
func (c *Client) WeatherForecast(ctx context.Context, location string, l locale.Locale) (*WeatherForecast, error) {
	text, err := prompt.Build(prompt.WeatherForecast, l, prompt.Params{Location: location})
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   weatherForecastSchema,
	}

	t := logging.StartTimer(logging.CategoryAPI, "weatherForecast")
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(text), cfg)
	t.Stop()
	if err != nil {
		logging.APIError("weatherForecast request failed: %v", err)
		return nil, newFailure(prompt.WeatherForecast, l, locale.MsgWeatherFailed, err)
	}

	var out WeatherForecast
	if err := decodeStrict(resp.Text(), &out); err != nil {
		logging.APIError("weatherForecast decode failed: %v", err)
		return nil, newFailure(prompt.WeatherForecast, l, locale.MsgWeatherFailed, err)
	}
	return &out, nil
}

// MarketAnalysis returns a search-grounded price analysis. Search grounding
// and a declared response schema are mutually exclusive, so the reply is
// free-form text with the JSON defensively unwrapped from a fence.
func (c *Client) MarketAnalysis(ctx context.Context, crop, season, month string, l locale.Locale) (*MarketAnalysis, error) {
	text, err := prompt.Build(prompt.MarketAnalysis, l, prompt.Params{Crop: crop, Season: season, Month: month})
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	t := logging.StartTimer(logging.CategoryAPI, "marketAnalysis")
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(text), cfg)
	t.Stop()
	if err != nil {
		logging.APIError("marketAnalysis request failed: %v", err)
		return nil, newFailure(prompt.MarketAnalysis, l, locale.MsgMarketFailed, err)
	}

	var out MarketAnalysis
	if err := decodeStrict(unwrapFencedJSON(resp.Text()), &out); err != nil {
		logging.APIError("marketAnalysis decode failed: %v", err)
		return nil, newFailure(prompt.MarketAnalysis, l, locale.MsgMarketFailed, err)
	}
	return &out, nil
}
