package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
	"voyago/internal/models/response_models"
	"voyago/pkg/jsonrepair"
	"voyago/pkg/llm"
	"voyago/pkg/utils"
)

// ParseServiceInterface extracts structured plan fields from free text, such
// as transcribed speech. All normalization (Chinese numerals, currency units,
// relative dates, preference keywords) is delegated to the model through the
// prompt; this service only parses the returned JSON.
type ParseServiceInterface interface {
	ParseTravelText(ctx context.Context, text string) (*response_models.ParsedTravelInfo, error)
}

type ParseService struct {
	chat llm.ChatClient
}

func NewParseService(chat llm.ChatClient) ParseServiceInterface {
	return &ParseService{chat: chat}
}

const parseSystemPrompt = "You are a professional information-extraction assistant that turns natural language into structured data."

func buildParsePrompt(text string, now time.Time) string {
	return fmt.Sprintf(`Extract travel-planning information from the following transcribed speech and return it as JSON.

Speech text: %q

Today is %s. Extract these fields (return null for anything the text does not mention):
1. destination: destination name (string, e.g. "Japan", "Tokyo")
2. days: trip length in days (integer; convert phrases like "five days" or "5天" to 5)
3. budget: budget amount in CNY (number; convert "ten thousand yuan" or "1万元" to 10000)
4. travelers: number of travelers (integer; "two people" or "两人" becomes 2)
5. preferences: travel preferences (string; join multiple preferences with "、", e.g. "美食、动漫文化")
6. start_date: departure date (string, format YYYY-MM-DD)

Normalization rules:
- Chinese numerals become Arabic numerals (一、二、三 -> 1, 2, 3)
- Currency units expand (万 -> 10000, 千 -> 1000)
- Preference keywords canonicalize (吃 -> 美食, 孩子 -> 亲子游)
- Dates resolve to concrete days:
  * "tomorrow" / "the day after tomorrow" compute from today's date
  * "next Monday" / "the 1st of next month" compute from today's date
  * "December 25th" becomes the nearest upcoming %d-12-25 style date
  * named holidays (New Year, Spring Festival, National Day) become their concrete dates
  * a month and day with no year defaults to the nearest upcoming year

Return only the JSON, no other explanation, shaped exactly like:
{
  "destination": "destination or null",
  "days": number or null,
  "budget": number or null,
  "travelers": number or null,
  "preferences": "preferences or null",
  "start_date": "YYYY-MM-DD or null"
}`, text, now.Format("2006-01-02"), now.Year())
}

func (p *ParseService) ParseTravelText(ctx context.Context, text string) (*response_models.ParsedTravelInfo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", utils.ErrInvalidInput)
	}

	raw, err := p.chat.Complete(ctx, llm.ChatRequest{
		System:      parseSystemPrompt,
		User:        buildParsePrompt(text, time.Now()),
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	candidate, err := jsonrepair.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelResponseInvalid, err)
	}

	// Unlike itinerary generation there is no repair fallback here: a parse
	// failure is a hard failure, not degraded output.
	var info response_models.ParsedTravelInfo
	if err := json.Unmarshal([]byte(candidate), &info); err != nil {
		log.Printf("Extraction response unparseable: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrModelResponseInvalid, err)
	}

	return &info, nil
}
