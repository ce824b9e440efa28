package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bizpulse/backend/internal/application/adapter"
)

// GeminiService implements the InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate analyzes the business snapshot and produces an insight report.
func (s *GeminiService) Generate(ctx context.Context, request *adapter.InsightRequest) (*adapter.InsightReport, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Configure model for JSON output
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	report, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return report, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a business analyst. Analyze the company data below and produce a concise assessment of its financial health.

COMPANY PROFILE:
`)

	if request.Profile != nil {
		p := request.Profile
		sb.WriteString(fmt.Sprintf("- Name: %s\n- Industry: %s\n- Employees: %d\n", p.CompanyName, p.Industry, p.Employees))
		sb.WriteString(fmt.Sprintf("- Monthly Revenue: %s\n- Monthly Costs: %s\n", p.Revenue, p.Costs))
		sb.WriteString(fmt.Sprintf("- Assets: %s\n- Liabilities: %s\n- Cash Flow: %s\n", p.Assets, p.Liabilities, p.CashFlow))
	} else {
		sb.WriteString("(No profile data)\n")
	}

	if request.Metrics != nil {
		m := request.Metrics
		sb.WriteString("\nDERIVED METRICS:\n")
		sb.WriteString(fmt.Sprintf("- Gross Profit: %s\n- Net Profit: %s\n- Equity: %s\n", m.GrossProfit, m.NetProfit, m.Equity))
	}

	if len(request.Records) > 0 {
		sb.WriteString("\nFINANCIAL RECORDS (date, revenue, expenses, profit, cash flow):\n")
		for _, r := range request.Records {
			sb.WriteString(fmt.Sprintf("- %s: %s, %s, %s, %s\n", r.Date, r.Revenue, r.Expenses, r.Profit, r.CashFlow))
		}
	}

	if len(request.Indicators) > 0 {
		sb.WriteString("\nKEY PERFORMANCE INDICATORS:\n")
		for _, kpi := range request.Indicators {
			sb.WriteString(fmt.Sprintf("- %s: %.2f (target %.2f) %s [%s]\n",
				kpi.Metric, kpi.Value, kpi.Target, kpi.Unit, kpi.Category))
		}
	}

	if request.Focus != "" {
		sb.WriteString(fmt.Sprintf("\nFOCUS AREA REQUESTED BY THE USER: %s\n", request.Focus))
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "summary": "two or three sentence overall assessment",
  "strengths": ["list of notable strengths"],
  "risks": ["list of notable risks or weaknesses"],
  "recommendations": ["list of concrete, actionable recommendations"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiReport represents the raw response from Gemini.
type geminiReport struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// parseResponse parses the Gemini response into an InsightReport.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.InsightReport, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiReport
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	return &adapter.InsightReport{
		Summary:         raw.Summary,
		Strengths:       raw.Strengths,
		Risks:           raw.Risks,
		Recommendations: raw.Recommendations,
	}, nil
}
