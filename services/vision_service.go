package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/ram2117/Nutri-Track/config"

	openai "github.com/sashabaranov/go-openai"
)

// NutritionData is the shape the model is asked to reply with.
// Amounts stay as display strings ("250 kcal", "12g"); numeric values
// are extracted when the entry is saved.
type NutritionData struct {
	Calories    string   `json:"calories"`
	Protein     string   `json:"protein"`
	Carbs       string   `json:"carbs"`
	Fat         string   `json:"fat"`
	Ingredients []string `json:"ingredients"`
	FoodName    string   `json:"foodName"`
	Details     string   `json:"details"`
}

// DefaultNutrition is the fixed fallback record returned on any
// analysis failure.
func DefaultNutrition() NutritionData {
	return NutritionData{
		Calories:    "0",
		Protein:     "0g",
		Carbs:       "0g",
		Fat:         "0g",
		Ingredients: []string{},
		FoodName:    "Unknown Food",
		Details:     "No details available",
	}
}

const nutritionPrompt = `Analyze this food image and provide nutritional details in JSON format with the following fields:
- calories (string with number and unit like "250 kcal")
- protein (string with amount like "12g")
- carbs (string with amount like "30g")
- fat (string with amount like "8g")
- ingredients (array of strings with likely ingredients)
- foodName (string with the name of the detected food)
- details (a short paragraph describing the nutritional profile)

Be as accurate as possible. If you cannot identify the food clearly or if it's not food, respond with null values.
ONLY respond with valid JSON.`

// VisionService proxies image analysis to an OpenAI-compatible
// multimodal endpoint.
type VisionService struct {
	keys    config.KeyStore
	baseURL string
	model   string
}

func NewVisionService(keys config.KeyStore) *VisionService {
	model := os.Getenv("VISION_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return &VisionService{
		keys:    keys,
		baseURL: os.Getenv("VISION_API_BASE_URL"),
		model:   model,
	}
}

// Analyze returns a best-effort nutrition estimate for a base64 still
// frame. The boolean reports whether the estimate came from the model;
// on transport failure, non-success status, missing JSON span, or a
// parse error the fixed fallback record is returned instead. Analyze
// never returns an error past its boundary.
func (s *VisionService) Analyze(ctx context.Context, imageBase64 string) (NutritionData, bool) {
	cfg := openai.DefaultConfig(s.keys.Get())
	if s.baseURL != "" {
		cfg.BaseURL = s.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.1,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: nutritionPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    normalizeDataURL(imageBase64),
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("vision analysis failed: %v", err)
		return DefaultNutrition(), false
	}
	if len(resp.Choices) == 0 {
		log.Printf("vision analysis returned no choices")
		return DefaultNutrition(), false
	}

	span, ok := extractJSONSpan(resp.Choices[0].Message.Content)
	if !ok {
		log.Printf("vision reply contained no JSON object")
		return DefaultNutrition(), false
	}

	var nd NutritionData
	if err := json.Unmarshal([]byte(span), &nd); err != nil {
		log.Printf("vision reply JSON parse error: %v", err)
		return DefaultNutrition(), false
	}
	if nd.Ingredients == nil {
		nd.Ingredients = []string{}
	}
	return nd, true
}

// extractJSONSpan pulls the first brace-delimited span out of the
// model's free-text reply.
func extractJSONSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// normalizeDataURL tolerates callers that strip the data-URL prefix.
func normalizeDataURL(img string) string {
	if strings.HasPrefix(img, "data:") {
		return img
	}
	return "data:image/jpeg;base64," + img
}
