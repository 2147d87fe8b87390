package nlp

import (
	"regexp"
	"strings"
)

// Keyword tables, trained against shopkeeper speech samples. Spelling
// variants handled by Normalize (udhaar, bechi, huyi) are stored in their
// folded forms only.
var (
	loanTakenPhrases = []string{
		"udhar liya", "udhar mila", "loan liya", "paise liye",
		"liye udhar", "liya udhar", "se udhar liya", "se liye udhar",
		"loan taken", "borrowed", "credit received",
	}

	loanGivenPhrases = []string{
		"udhar diya", "loan diya", "diya udhar", "diye udhar",
		"paise de diye", "loan given", "lent",
	}

	expenseKeywords = []string{
		"kharcha", "kharch", "bill", "kiraya", "rent",
		"petrol", "diesel", "tanki", "recharge",
		"kharida", "khareeda", "saman liya", "payment kiya",
		"expense", "paid", "spent", "spend", "cost", "purchase",
	}

	saleKeywords = []string{
		"bikri", "becha", "bech", "biki", "bik gaya",
		"aamdani", "jama hua", "paisa aaya",
		"sale", "sold", "revenue",
	}

	creditVerbs = []string{
		"mila", "mile", "jama", "aaya", "received", "got", "credited",
	}

	debitVerbs = []string{
		"bhar diya", "nikal gaya", "payment", "de diya", "outflow",
	}
)

const proximityWindow = 3

var digitToken = regexp.MustCompile(`\d`)

// ClassifyTransaction assigns a (type, direction) pair through an ordered
// cascade; the first matching stage wins. The final fallback is (expense,
// out): ambiguous speech is recorded as money spent, never as unearned
// income. Callers can detect the fallback through the second return value.
func ClassifyTransaction(lower string, partyName string) (Classification, bool) {
	// 1. Loan-specific phrases beat everything else.
	if containsAny(lower, loanTakenPhrases) {
		return Classification{TypeLoanTaken, DirectionIn}, true
	}
	if containsAny(lower, loanGivenPhrases) {
		return Classification{TypeLoanGiven, DirectionOut}, true
	}

	// 2. Generic loan mention: disambiguate by verb, then by preposition
	// context when a party is present, then fall back to loan_given. The
	// default is a conservative guess, not an inferred certainty.
	if strings.Contains(lower, "udhar") || strings.Contains(lower, "loan") {
		if containsAny(lower, []string{"liya", "liye", "lena", "mila"}) {
			return Classification{TypeLoanTaken, DirectionIn}, true
		}
		if containsAny(lower, []string{"diya", "diye", "dena"}) {
			return Classification{TypeLoanGiven, DirectionOut}, true
		}
		if partyName != "" {
			if strings.Contains(lower, " se ") || strings.HasSuffix(lower, " se") || strings.Contains(lower, "from") {
				return Classification{TypeLoanTaken, DirectionIn}, true
			}
			if strings.Contains(lower, " ko ") || strings.HasSuffix(lower, " ko") {
				return Classification{TypeLoanGiven, DirectionOut}, true
			}
		}
		return Classification{TypeLoanGiven, DirectionOut}, true
	}

	// 3. Expense keywords, unless a sale keyword sits closer to the numeral.
	if expense := firstMatch(lower, expenseKeywords); expense != "" {
		if sale := firstMatch(lower, saleKeywords); sale != "" && saleWinsProximity(lower, expense, sale) {
			return Classification{TypeSale, DirectionIn}, true
		}
		return Classification{TypeExpense, DirectionOut}, true
	}

	// 4. Sale keywords.
	if containsAny(lower, saleKeywords) {
		return Classification{TypeSale, DirectionIn}, true
	}

	// 5. Generic credit-direction verbs.
	if containsAny(lower, creditVerbs) {
		return Classification{TypeSale, DirectionIn}, true
	}

	// 6. Generic debit-direction verbs (loan wording already handled above).
	if containsAny(lower, debitVerbs) {
		return Classification{TypeExpense, DirectionOut}, true
	}

	// 7-8. Standalone giving/taking verbs without loan or inventory words.
	if containsAny(lower, []string{"diya", "diye"}) {
		return Classification{TypeExpense, DirectionOut}, true
	}
	if containsAny(lower, []string{"liya", "liye"}) &&
		!containsAny(lower, []string{"saman", "maal", "stock"}) {
		return Classification{TypeSale, DirectionIn}, true
	}

	// 9. Party preposition context.
	if partyName != "" {
		if strings.Contains(lower, " ko ") || strings.HasSuffix(lower, " ko") {
			return Classification{TypeExpense, DirectionOut}, true
		}
		if strings.Contains(lower, " se ") || strings.HasSuffix(lower, " se") {
			return Classification{TypeSale, DirectionIn}, true
		}
	}

	// 10. Passive completion markers usually describe a finished sale.
	if strings.Contains(lower, "hui") || strings.Contains(lower, "hua") {
		return Classification{TypeSale, DirectionIn}, true
	}

	// 11. Nothing matched.
	return Classification{TypeExpense, DirectionOut}, false
}

// saleWinsProximity resolves utterances matching both keyword classes: the
// sale reading wins only when the sale keyword sits within the window of a
// numeral token and the expense keyword does not. Ties keep the expense
// reading, preserving cascade order.
func saleWinsProximity(lower, expenseKeyword, saleKeyword string) bool {
	tokens := strings.Fields(lower)

	numeralIdx := -1
	for i, token := range tokens {
		if digitToken.MatchString(token) {
			numeralIdx = i
			break
		}
		if _, ok := numberWords[strings.Trim(token, ".,?!")]; ok {
			numeralIdx = i
			break
		}
	}
	if numeralIdx < 0 {
		return false
	}

	expenseIdx := tokenIndex(tokens, expenseKeyword)
	saleIdx := tokenIndex(tokens, saleKeyword)
	if saleIdx < 0 {
		return false
	}

	saleNear := abs(saleIdx-numeralIdx) <= proximityWindow
	expenseNear := expenseIdx >= 0 && abs(expenseIdx-numeralIdx) <= proximityWindow

	return saleNear && !expenseNear
}

// tokenIndex locates the token holding (the first word of) a matched keyword.
func tokenIndex(tokens []string, keyword string) int {
	head := strings.Fields(keyword)[0]
	for i, token := range tokens {
		if strings.Contains(token, head) {
			return i
		}
	}
	return -1
}

func containsAny(text string, keywords []string) bool {
	return firstMatch(text, keywords) != ""
}

func firstMatch(text string, keywords []string) string {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
