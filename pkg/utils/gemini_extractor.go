package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"tripdesk/internal/models/request_models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// InquiryExtractorInterface turns a raw customer email/message into the
// structured inquiry the matching engine consumes. The engine itself never
// calls this; only the inquiry intake path does.
type InquiryExtractorInterface interface {
	ExtractInquiry(ctx context.Context, rawText string) (*request_models.Inquiry, error)
}

type GeminiInquiryExtractor struct {
	client *genai.Client
	model  string
}

func NewGeminiInquiryExtractor(apiKey, model string) (InquiryExtractorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiInquiryExtractor{
		client: client,
		model:  model,
	}, nil
}

const inquirySchema = `
{
  "destination": "string",
  "additional_destinations": ["string"],
  "date_range": {"start": "2006-01-02", "end": "2006-01-02"},
  "travelers": {"adults": 2, "children": 0, "child_ages": [], "infants": 0},
  "budget": {"amount": 3000, "currency": "USD", "flexible": false},
  "package_type": "string",
  "accommodation": {"hotel_type": "string", "star_rating": 4, "room_category": "string"},
  "meal_plan": "string",
  "activities": ["string"]
}`

func (g *GeminiInquiryExtractor) ExtractInquiry(ctx context.Context, rawText string) (*request_models.Inquiry, error) {
	m := g.client.GenerativeModel(g.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.1)

	prompt := fmt.Sprintf(`
You are extracting a structured travel inquiry from a customer message.
Return **JSON only** matching the schema below. Omit any field the message
does not mention; never invent values. Dates must be ISO (2006-01-02).

Schema:
%s

Customer message:
%s`, inquirySchema, rawText)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini extraction failed, falling back to keywords: %v", err)
		return FallbackExtractInquiry(rawText), nil
	}

	raw := collectText(resp)
	var inquiry request_models.Inquiry
	if err := json.Unmarshal([]byte(raw), &inquiry); err != nil {
		log.Printf("Gemini returned non-JSON, falling back to keywords: %v", err)
		return FallbackExtractInquiry(rawText), nil
	}

	return &inquiry, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}

var (
	destinationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bto\s+([A-Za-z][A-Za-z\s]{1,40}?)(?:\s+in|\s+for|\s+from|\s+during|\s+\d|[.,!?]|$)`),
		regexp.MustCompile(`(?i)\bvisit(?:ing)?\s+([A-Za-z][A-Za-z\s]{1,40}?)(?:\s+in|\s+for|\s+during|\s+\d|[.,!?]|$)`),
		regexp.MustCompile(`(?i)\btrip\s+to\s+([A-Za-z][A-Za-z\s]{1,40}?)(?:\s+in|\s+for|\s+during|\s+\d|[.,!?]|$)`),
	}
	adultsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(?:adults?|people|persons|pax|travell?ers)\b`)
	budgetPattern = regexp.MustCompile(`(?i)(?:budget\s*(?:of|is|around)?\s*|[$€£])\s*(\d{3,6})`)
)

// FallbackExtractInquiry is the keyword extraction used when the model is
// unavailable or returns garbage. It only fills what it can find; the
// validator will ask the customer for the rest.
func FallbackExtractInquiry(rawText string) *request_models.Inquiry {
	inquiry := &request_models.Inquiry{}

	for _, re := range destinationPatterns {
		if m := re.FindStringSubmatch(rawText); len(m) > 1 {
			dest := strings.TrimSpace(m[1])
			if len(dest) > 2 {
				inquiry.Destination = dest
				break
			}
		}
	}

	if m := adultsPattern.FindStringSubmatch(rawText); len(m) > 1 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			inquiry.Travelers = &request_models.Travelers{Adults: n}
		}
	}

	if m := budgetPattern.FindStringSubmatch(rawText); len(m) > 1 {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil && amount > 0 {
			inquiry.Budget = &request_models.Budget{Amount: amount, Currency: "USD"}
		}
	}

	return inquiry
}
