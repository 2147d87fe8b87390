package nlp

import (
	"fmt"
	"strings"
)

// Expense subtypes recognised for the notes line. Order matters only for
// readability; at most one subtype is reported.
var expenseSubtypes = []struct {
	keywords []string
	label    string
}{
	{[]string{"bijli", "electricity"}, "Electricity bill"},
	{[]string{"kiraya", "rent"}, "Rent"},
	{[]string{"chai", "tea"}, "Tea/Snacks"},
	{[]string{"petrol", "diesel", "fuel"}, "Fuel"},
	{[]string{"salary", "wages"}, "Salary/Wages"},
	{[]string{"internet"}, "Internet"},
	{[]string{"mobile", "phone"}, "Mobile"},
	{[]string{"pani", "water"}, "Water"},
}

// BuildTransactionRecord assembles the final record for a classified
// transaction. Date stays the symbolic "today"; the persistence collaborator
// resolves it to a calendar date when the row is stored.
func BuildTransactionRecord(cls Classification, amount float64, partyName, originalUtterance string) *TransactionRecord {
	record := &TransactionRecord{
		Kind:      "transaction",
		Action:    "add_transaction",
		Direction: cls.Direction,
		Type:      cls.Type,
		Amount:    amount,
		Date:      "today",
		Notes:     buildNotes(cls.Type, amount, partyName, originalUtterance),
	}
	if partyName != "" {
		record.PartyName = &partyName
	}
	return record
}

func buildNotes(txType TransactionType, amount float64, partyName, originalUtterance string) string {
	switch txType {
	case TypeLoanTaken:
		if partyName != "" {
			return "Loan from " + partyName
		}
		return "Loan received"
	case TypeLoanGiven:
		if partyName != "" {
			return "Loan to " + partyName
		}
		return "Loan given"
	case TypeSale:
		if partyName != "" {
			return "Sale to " + partyName
		}
		if amount > 0 {
			return fmt.Sprintf("Sales ₹%.0f", amount)
		}
		return "Other income"
	case TypeExpense:
		return "Expense: " + expenseSubtype(originalUtterance)
	case TypePurchase:
		return "Inventory purchase"
	case TypeOther:
		return "Unclassified: " + originalUtterance
	default:
		return originalUtterance
	}
}

func expenseSubtype(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, subtype := range expenseSubtypes {
		for _, keyword := range subtype.keywords {
			if strings.Contains(lower, keyword) {
				return subtype.label
			}
		}
	}
	return utterance
}
