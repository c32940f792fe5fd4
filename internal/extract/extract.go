// Package extract classifies mobile-money SMS bodies into transaction
// categories and parses each category's message template into typed records.
//
// Classification and extraction are driven by one ordered rule table: each
// rule binds a category to its marker substring and extractor. The table
// order is the classification order; the first marker found in a body wins
// and no later rule is tested. The order was tuned against real exports and
// is preserved as-is, not re-derived.
//
// Two extraction styles are used. Most categories match a single unanchored
// pattern with capture groups. The cash-power and agent-withdrawal templates
// are instead cut apart by a sequence of anchor phrases, because their field
// boundaries are plain prose rather than one regular shape.
package extract

import (
	"github.com/noel-odero/momo-analysis/internal/category"
)

// rule binds one category to its marker substring and extractor.
type rule struct {
	Category category.Category
	Marker   string
	Extract  func(bodies []string) []Record
}

// rules is evaluated in order for every message body. Keep the more specific
// markers ahead of the generic ones; "transferred to" and "withdrawn" are
// short enough to appear in unrelated traffic.
var rules = []rule{
	{category.IncomingMoney, "You have received", extractIncomingMoney},
	{category.PaymentToCodeHolders, "Your payment of", extractCodeHolderPayments},
	{category.TransfersToMobileNumbers, "transferred to", extractMobileTransfers},
	{category.BankTransfers, "You have transferred", extractBankTransfers},
	{category.InternetVoiceBundle, "Bundles and Packs", extractBundlePurchases},
	{category.CashPowerBillPayments, "MTN Cash Power", extractCashPowerPayments},
	{category.ThirdPartyTransactions, "Message from debit receiver", extractThirdPartyTransactions},
	{category.WithdrawalsFromAgents, "withdrawn", extractAgentWithdrawals},
	{category.Airtime, "to Airtime with token", extractAirtimePayments},
}

// Marker returns the marker substring that routes bodies to c, or "" for an
// unknown category.
func Marker(c category.Category) string {
	for _, r := range rules {
		if r.Category == c {
			return r.Marker
		}
	}
	return ""
}

// Result is one category's extraction output for a run. Matched counts the
// bodies classified into the category; Skipped counts bodies that did not
// match the category's template (an expected outcome, not an error).
type Result struct {
	Category  category.Category
	Records   []Record
	Matched   int
	Extracted int
	Skipped   int
}

// Run applies each category's extractor to its classified bodies and returns
// one Result per category in classification order. Record order within a
// category follows input message order.
func Run(batch Batch) []Result {
	results := make([]Result, 0, len(rules))
	for _, r := range rules {
		bodies := batch[r.Category]
		records := r.Extract(bodies)
		results = append(results, Result{
			Category:  r.Category,
			Records:   records,
			Matched:   len(bodies),
			Extracted: len(records),
			Skipped:   len(bodies) - len(records),
		})
	}
	return results
}
