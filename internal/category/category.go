// Package category defines the nine mobile-money transaction categories and
// their storage mapping.
//
// The enumeration order is a correctness contract: classification tests each
// category's marker against a message body in this exact order and the first
// match wins. Several markers are deliberately short ("transferred to",
// "withdrawn") to tolerate template drift, so reordering them can reroute
// messages between categories.
package category

// Category is one of the fixed transaction categories.
type Category string

const (
	IncomingMoney            Category = "incoming_money"
	PaymentToCodeHolders     Category = "payment_to_code_holders"
	TransfersToMobileNumbers Category = "transfers_to_mobile_numbers"
	BankTransfers            Category = "bank_transfers"
	InternetVoiceBundle      Category = "internet_voice_bundle"
	CashPowerBillPayments    Category = "cash_power_bill_payments"
	ThirdPartyTransactions   Category = "transtxns_initiate_by_third_parties"
	WithdrawalsFromAgents    Category = "withdrawals_from_agents"
	Airtime                  Category = "airtime"
)

// all holds every category in classification order.
var all = []Category{
	IncomingMoney,
	PaymentToCodeHolders,
	TransfersToMobileNumbers,
	BankTransfers,
	InternetVoiceBundle,
	CashPowerBillPayments,
	ThirdPartyTransactions,
	WithdrawalsFromAgents,
	Airtime,
}

// All returns the categories in classification order. Callers must not
// mutate the returned slice.
func All() []Category {
	return all
}

// tableNames maps each category to its storage table.
var tableNames = map[Category]string{
	IncomingMoney:            "incoming_money",
	PaymentToCodeHolders:     "payment_to_code_holders",
	TransfersToMobileNumbers: "transfers_to_mobile_numbers",
	BankTransfers:            "bank_transfers",
	InternetVoiceBundle:      "internet_voice_bundles",
	CashPowerBillPayments:    "cash_power_bill_payments",
	ThirdPartyTransactions:   "transactions_initiated_by_third_parties",
	WithdrawalsFromAgents:    "withdrawals_from_agents",
	Airtime:                  "airtime_payments",
}

// Table returns the storage table name for c.
func (c Category) Table() string {
	return tableNames[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := tableNames[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}
