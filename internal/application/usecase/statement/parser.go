// Package statement contains the bank statement import use cases.
package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// MaxCandidateDescriptionLength bounds the description taken from a statement line.
const MaxCandidateDescriptionLength = 100

// Candidate is a transaction extracted from one statement line, before it is
// persisted through normal transaction creation.
type Candidate struct {
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    entity.Category
}

// amountPattern matches currency amounts like $1,234.56 or 42.99. Lines
// without such an amount are discarded.
var amountPattern = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})*\.\d{2}`)

// incomeKeywords mark a line as income when present.
var incomeKeywords = []string{"deposit", "salary", "payroll", "income", "transfer in"}

// categoryRule maps keywords to a category. Rules are evaluated in order;
// the first match wins.
type categoryRule struct {
	category entity.Category
	keywords []string
}

var categoryRules = []categoryRule{
	{entity.CategoryHousing, []string{"rent", "mortgage", "lease", "hoa"}},
	{entity.CategoryTransportation, []string{"uber", "lyft", "gas", "fuel", "parking", "transit", "taxi"}},
	{entity.CategoryFood, []string{"grocery", "restaurant", "cafe", "coffee", "food", "doordash", "dining"}},
	{entity.CategoryUtilities, []string{"electric", "water", "internet", "phone", "utility", "cable"}},
	{entity.CategoryHealthcare, []string{"pharmacy", "doctor", "medical", "dental", "hospital", "clinic"}},
	{entity.CategoryEntertainment, []string{"netflix", "spotify", "movie", "cinema", "game", "concert"}},
	{entity.CategoryEducation, []string{"tuition", "course", "school", "book", "university"}},
	{entity.CategoryShopping, []string{"amazon", "store", "shop", "mall", "retail", "target", "walmart"}},
}

// Parse splits the statement text into lines and extracts a candidate
// transaction from every line carrying a currency amount. The statement's
// own dates are not parsed; the importer stamps candidates with today's date.
func Parse(text string) []Candidate {
	var candidates []Candidate

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := amountPattern.FindString(line)
		if match == "" {
			continue
		}

		raw := strings.NewReplacer("$", "", ",", "").Replace(match)
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsZero() {
			continue
		}

		candidates = append(candidates, Candidate{
			Description: descriptionFromLine(line, match),
			Amount:      amount,
			Type:        classifyType(line),
			Category:    classifyCategory(line),
		})
	}

	return candidates
}

// classifyType marks a line as income when an income keyword is present,
// expense otherwise.
func classifyType(line string) entity.TransactionType {
	lower := strings.ToLower(line)
	for _, keyword := range incomeKeywords {
		if strings.Contains(lower, keyword) {
			return entity.TransactionTypeIncome
		}
	}
	return entity.TransactionTypeExpense
}

// classifyCategory applies the fixed-priority keyword table. Income lines get
// the Income category; unmatched expense lines fall back to Other.
func classifyCategory(line string) entity.Category {
	if classifyType(line) == entity.TransactionTypeIncome {
		return entity.CategoryIncome
	}

	lower := strings.ToLower(line)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return entity.CategoryOther
}

// descriptionFromLine strips the amount token from the line and truncates the
// remainder to the bounded description length.
func descriptionFromLine(line, amountToken string) string {
	description := strings.Replace(line, amountToken, "", 1)
	description = strings.Trim(description, " \t-–:|")
	if description == "" {
		description = "Imported transaction"
	}
	if len(description) > MaxCandidateDescriptionLength {
		description = description[:MaxCandidateDescriptionLength]
	}
	return description
}
