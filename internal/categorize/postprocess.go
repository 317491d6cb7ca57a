package categorize

import (
	"strings"

	"github.com/flexfin/backend/internal/currency"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

// Suggestion is a categorization result after post-processing: the amount,
// date and category are resolved against the user's actual budget and
// calendar and are safe to create a transaction from.
type Suggestion struct {
	Result
	ResolvedDate     types.Date       // The calendar day the expense happened on
	MatchedCategory  *models.Category // The budget category the suggestion resolved to, nil if none matched
	IsAutoApplicable bool             // True if the confidence is high enough to apply without confirmation
}

// Process resolves a raw categorization result against a budget.
//
// The service's answers are treated as hints: a missing or unparseable
// amount is re-extracted from the original input, a missing date defaults
// to the reference date, and the suggested category name is matched
// loosely against the budget's categories.
func Process(result Result, input string, budget models.Budget, reference types.Date) Suggestion {
	suggestion := Suggestion{Result: result}

	if !suggestion.Amount.IsPositive() {
		suggestion.Amount = currency.Parse(input)
	}

	if strings.TrimSpace(suggestion.Description) == "" {
		suggestion.Description = strings.TrimSpace(input)
	}

	suggestion.ResolvedDate = ResolveDate(result.Date, reference)

	if match, ok := MatchCategory(result.SuggestedCategory, budget.Categories); ok {
		suggestion.MatchedCategory = match
	}

	suggestion.IsAutoApplicable = suggestion.MatchedCategory != nil &&
		suggestion.Amount.IsPositive() &&
		suggestion.Confidence >= MinimumConfidence

	return suggestion
}

// MatchCategory finds the budget category a suggested name refers to.
//
// Matching is case-insensitive. Exact matches win; the service may also
// answer with glob patterns or partial names ("grocer*", "Groceries & Co"),
// so glob and substring matches are accepted as fallbacks.
func MatchCategory(suggested string, categories []models.Category) (*models.Category, bool) {
	name := strings.ToLower(strings.TrimSpace(suggested))
	if name == "" {
		return nil, false
	}

	for i := range categories {
		if strings.ToLower(categories[i].Name) == name {
			return &categories[i], true
		}
	}

	for i := range categories {
		if glob.Glob(name, strings.ToLower(categories[i].Name)) {
			return &categories[i], true
		}
	}

	for i := range categories {
		candidate := strings.ToLower(categories[i].Name)
		if strings.Contains(candidate, name) || strings.Contains(name, candidate) {
			return &categories[i], true
		}
	}

	return nil, false
}

// weekdays maps spoken day names to time.Weekday values via types.Date
// weekday numbering (Sunday is 0).
var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// ResolveDate turns the service's date answer into a calendar day.
//
// The service may answer with a date key, a relative phrase ("today",
// "yesterday") or a weekday name ("on monday" means the most recent
// Monday, including the reference day itself). Anything unresolvable
// falls back to the reference date.
func ResolveDate(phrase string, reference types.Date) types.Date {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch phrase {
	case "", "today":
		return reference
	case "yesterday":
		return reference.AddDays(-1)
	}

	if date, err := types.ParseDate(phrase); err == nil {
		return date
	}

	phrase = strings.TrimPrefix(phrase, "last ")
	phrase = strings.TrimPrefix(phrase, "on ")
	if weekday, ok := weekdays[phrase]; ok {
		back := (int(reference.Weekday()) - weekday + 7) % 7
		return reference.AddDays(-back)
	}

	return reference
}
