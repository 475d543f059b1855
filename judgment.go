package docjudge

// Category names, in the fixed order used for aggregation, feedback
// formatting, and display.
const (
	CategoryReadability     = "readability"
	CategoryStructure       = "structure"
	CategoryCompleteness    = "completeness"
	CategoryStyleGuidelines = "style_guidelines"
)

// CategoryNames returns the four judgment categories in canonical order.
func CategoryNames() []string {
	return []string{
		CategoryReadability,
		CategoryStructure,
		CategoryCompleteness,
		CategoryStyleGuidelines,
	}
}

// Placeholder strings substituted when a category arrives with empty issue
// or suggestion lists.
const (
	PlaceholderIssue      = "content could not be properly analyzed"
	PlaceholderSuggestion = "review and update the content with proper documentation"
)

// CategoryJudgment holds the model's judgment for one category.
type CategoryJudgment struct {
	Score       Score    `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// DocumentJudgment maps the fixed, closed set of four categories to their
// judgments. After NormalizeJudgment all four categories are present with
// valid scores and non-empty issue and suggestion lists, regardless of
// what the model returned.
type DocumentJudgment struct {
	Readability     CategoryJudgment `json:"readability"`
	Structure       CategoryJudgment `json:"structure"`
	Completeness    CategoryJudgment `json:"completeness"`
	StyleGuidelines CategoryJudgment `json:"style_guidelines"`
}

// NamedCategory pairs a category name with its judgment.
type NamedCategory struct {
	Name     string
	Judgment CategoryJudgment
}

// Categories returns the four categories in canonical order.
func (j *DocumentJudgment) Categories() []NamedCategory {
	return []NamedCategory{
		{Name: CategoryReadability, Judgment: j.Readability},
		{Name: CategoryStructure, Judgment: j.Structure},
		{Name: CategoryCompleteness, Judgment: j.Completeness},
		{Name: CategoryStyleGuidelines, Judgment: j.StyleGuidelines},
	}
}

func (j *DocumentJudgment) set(name string, c CategoryJudgment) {
	switch name {
	case CategoryReadability:
		j.Readability = c
	case CategoryStructure:
		j.Structure = c
	case CategoryCompleteness:
		j.Completeness = c
	case CategoryStyleGuidelines:
		j.StyleGuidelines = c
	}
}

// DataQualityEvent records a repair made while normalizing a raw judgment.
// Events are recoverable: they are reported for logging, never raised as
// errors.
type DataQualityEvent struct {
	Category string
	Field    string
	Value    string // offending raw value, if any
}

// NormalizeJudgment repairs a possibly-partial, untyped judgment payload
// into a valid DocumentJudgment. It is a total function: any input,
// including nil, yields all four categories with a valid score and
// non-empty issue and suggestion lists.
//
// A score that is present but not exactly one of the four levels
// (case-sensitive) is replaced with Poor and reported as a data-quality
// event. Missing categories and fields are filled with defaults silently.
//
// This is the enforcement point for the model wire contract: the
// loosely-typed payload must never leak past this function.
func NormalizeJudgment(raw map[string]any) (*DocumentJudgment, []DataQualityEvent) {
	j := &DocumentJudgment{}
	var events []DataQualityEvent

	for _, name := range CategoryNames() {
		sub, _ := raw[name].(map[string]any)
		c, evs := normalizeCategory(name, sub)
		j.set(name, c)
		events = append(events, evs...)
	}

	return j, events
}

func normalizeCategory(name string, raw map[string]any) (CategoryJudgment, []DataQualityEvent) {
	var events []DataQualityEvent

	score := ScorePoor
	if v, ok := raw["score"]; ok {
		s, _ := v.(string)
		if parsed, valid := ParseScore(s); valid {
			score = parsed
		} else {
			events = append(events, DataQualityEvent{Category: name, Field: "score", Value: s})
		}
	}

	issues := stringList(raw["issues"])
	if len(issues) == 0 {
		issues = []string{PlaceholderIssue}
	}

	suggestions := stringList(raw["suggestions"])
	if len(suggestions) == 0 {
		suggestions = []string{PlaceholderSuggestion}
	}

	return CategoryJudgment{Score: score, Issues: issues, Suggestions: suggestions}, events
}

// stringList coerces a raw JSON value into a list of non-empty strings.
// Non-list and non-string values are dropped.
func stringList(v any) []string {
	switch items := v.(type) {
	case []string:
		var out []string
		for _, s := range items {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
