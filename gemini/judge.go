package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/docjudge"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

const assessSystemPrompt = `You are an expert technical writer analyzing documentation.
Analyze the provided content and return structured feedback in the exact JSON format specified.

Focus on:
- Readability for non-technical users
- Clear structure and organization
- Completeness of information
- Adherence to documentation style guidelines

Return a JSON object with exactly four keys: "readability", "structure", "completeness", "style_guidelines".
For each category, you MUST provide:
1. A "score" that is EXACTLY one of: ["Excellent", "Good", "Fair", "Poor"]
2. An "issues" list with at least one specific issue identified
3. A "suggestions" list with at least one actionable suggestion for improvement

If the content cannot be properly analyzed (e.g., error pages, security checks), score it as "Poor" and explain why.`

const rewriteSystemPrompt = `You are an expert technical writer.
Revise the provided content based on the analysis feedback to improve its quality.
Keep the core information intact while enhancing:
- Readability
- Structure
- Completeness
- Style consistency`

// Ensure Judge implements docjudge.Judge at compile time.
var _ docjudge.Judge = (*Judge)(nil)

// Judge implements docjudge.Judge using Google Gemini.
type Judge struct {
	client *genai.Client
	model  string
}

// NewJudge creates a new Judge. An empty model selects DefaultModel.
func NewJudge(client *genai.Client, model string) *Judge {
	if model == "" {
		model = DefaultModel
	}
	return &Judge{client: client, model: model}
}

// Assess asks the model for a structured judgment of the content. The
// returned mapping is the decoded model output and may not follow the
// four-category contract; callers normalize it before use.
func (j *Judge) Assess(ctx context.Context, content, url string) (map[string]any, error) {
	if strings.TrimSpace(content) == "" {
		return nil, docjudge.Errorf(docjudge.EINVALID, "content required")
	}

	result, err := j.client.Models.GenerateContent(ctx, j.model,
		genai.Text(BuildAssessPrompt(content, url)),
		BuildAssessConfig(),
	)
	if err != nil {
		return nil, docjudge.Errorf(docjudge.EMODEL, "generating assessment: %v", err)
	}
	if result == nil {
		return nil, docjudge.Errorf(docjudge.EMODEL, "gemini returned nil result")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(StripFences(result.Text())), &raw); err != nil {
		return nil, docjudge.Errorf(docjudge.EMODEL, "decoding assessment: %v", err)
	}

	return raw, nil
}

// Rewrite asks the model for a revised version of the content based on
// formatted feedback.
func (j *Judge) Rewrite(ctx context.Context, content, feedback string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", docjudge.Errorf(docjudge.EINVALID, "content required")
	}

	result, err := j.client.Models.GenerateContent(ctx, j.model,
		genai.Text(BuildRewritePrompt(content, feedback)),
		BuildRewriteConfig(),
	)
	if err != nil {
		return "", docjudge.Errorf(docjudge.EMODEL, "generating revision: %v", err)
	}
	if result == nil {
		return "", docjudge.Errorf(docjudge.EMODEL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildAssessConfig returns the GenerateContentConfig for assessment calls.
func BuildAssessConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: assessSystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildRewriteConfig returns the GenerateContentConfig for revision calls.
func BuildRewriteConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: rewriteSystemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildAssessPrompt builds the user prompt for assessment.
func BuildAssessPrompt(content, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Documentation page: %s\n\n", url)
	fmt.Fprintf(&sb, "Content to analyze:\n%s\n\n", content)
	sb.WriteString("Provide detailed analysis with specific, actionable feedback for each category.\n")
	sb.WriteString(`Remember to use ONLY the allowed scores: "Excellent", "Good", "Fair", or "Poor".`)
	return sb.String()
}

// BuildRewritePrompt builds the user prompt for revision.
func BuildRewritePrompt(content, feedback string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original content:\n%s\n\n", content)
	fmt.Fprintf(&sb, "Analysis feedback:\n%s\n\n", feedback)
	sb.WriteString("Please provide the revised content maintaining the original information while implementing the suggested improvements.")
	return sb.String()
}

// StripFences removes a Markdown code fence wrapping from model output.
// Models sometimes fence JSON responses even when asked for raw JSON.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
