package store

import "github.com/noel-odero/momo-analysis/internal/category"

// tableSpec describes one category table: bootstrap DDL, column order
// (matching the exported document's field order), and the natural identifier
// column used for duplicate detection. An empty key means the table has no
// transaction identifier and relies on a UNIQUE constraint over its content
// columns instead.
type tableSpec struct {
	category category.Category
	name     string
	ddl      string
	columns  []string
	key      string
}

// tables holds one spec per category, in classification order.
var tables = []tableSpec{
	{
		category: category.IncomingMoney,
		name:     "incoming_money",
		ddl: `CREATE TABLE IF NOT EXISTS incoming_money (
			txid TEXT PRIMARY KEY,
			amount_received INTEGER,
			sender TEXT,
			date TEXT,
			new_balance INTEGER
		)`,
		columns: []string{"txid", "amount_received", "sender", "date", "new_balance"},
		key:     "txid",
	},
	{
		category: category.PaymentToCodeHolders,
		name:     "payment_to_code_holders",
		ddl: `CREATE TABLE IF NOT EXISTS payment_to_code_holders (
			transaction_id TEXT PRIMARY KEY,
			amount INTEGER,
			date TEXT,
			new_balance INTEGER,
			fee INTEGER,
			recipient TEXT
		)`,
		columns: []string{"transaction_id", "amount", "date", "new_balance", "fee", "recipient"},
		key:     "transaction_id",
	},
	{
		// No transaction identifier in this template; the UNIQUE
		// constraint keeps reloads idempotent.
		category: category.TransfersToMobileNumbers,
		name:     "transfers_to_mobile_numbers",
		ddl: `CREATE TABLE IF NOT EXISTS transfers_to_mobile_numbers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			amount_transferred INTEGER,
			recipient TEXT,
			recipient_number TEXT,
			date TEXT,
			time TEXT,
			fee INTEGER,
			new_balance INTEGER,
			UNIQUE(date, time, recipient_number, amount_transferred, new_balance)
		)`,
		columns: []string{"amount_transferred", "recipient", "recipient_number", "date", "time", "fee", "new_balance"},
	},
	{
		category: category.BankTransfers,
		name:     "bank_transfers",
		ddl: `CREATE TABLE IF NOT EXISTS bank_transfers (
			transaction_id TEXT PRIMARY KEY,
			amount INTEGER,
			date TEXT,
			recipient_name TEXT,
			recipient_phone TEXT,
			sender_account TEXT
		)`,
		columns: []string{"transaction_id", "amount", "date", "recipient_name", "recipient_phone", "sender_account"},
		key:     "transaction_id",
	},
	{
		category: category.InternetVoiceBundle,
		name:     "internet_voice_bundles",
		ddl: `CREATE TABLE IF NOT EXISTS internet_voice_bundles (
			transaction_id TEXT PRIMARY KEY,
			amount INTEGER,
			service TEXT,
			date TEXT,
			new_balance INTEGER
		)`,
		columns: []string{"transaction_id", "amount", "service", "date", "new_balance"},
		key:     "transaction_id",
	},
	{
		category: category.CashPowerBillPayments,
		name:     "cash_power_bill_payments",
		ddl: `CREATE TABLE IF NOT EXISTS cash_power_bill_payments (
			transaction_id TEXT PRIMARY KEY,
			payment_amount INTEGER,
			token TEXT,
			date TEXT,
			fee INTEGER,
			new_balance INTEGER,
			provider TEXT
		)`,
		columns: []string{"transaction_id", "payment_amount", "token", "date", "fee", "new_balance", "provider"},
		key:     "transaction_id",
	},
	{
		category: category.ThirdPartyTransactions,
		name:     "transactions_initiated_by_third_parties",
		ddl: `CREATE TABLE IF NOT EXISTS transactions_initiated_by_third_parties (
			transaction_id TEXT PRIMARY KEY,
			amount INTEGER,
			date TEXT,
			sender TEXT,
			new_balance INTEGER,
			fee INTEGER,
			external_transaction_id TEXT
		)`,
		columns: []string{"transaction_id", "amount", "date", "sender", "new_balance", "fee", "external_transaction_id"},
		key:     "transaction_id",
	},
	{
		category: category.WithdrawalsFromAgents,
		name:     "withdrawals_from_agents",
		ddl: `CREATE TABLE IF NOT EXISTS withdrawals_from_agents (
			transaction_id TEXT PRIMARY KEY,
			name TEXT,
			agent_name TEXT,
			agent_number TEXT,
			account TEXT,
			amount INTEGER,
			date TEXT,
			fee INTEGER,
			new_balance INTEGER
		)`,
		columns: []string{"transaction_id", "name", "agent_name", "agent_number", "account", "amount", "date", "fee", "new_balance"},
		key:     "transaction_id",
	},
	{
		category: category.Airtime,
		name:     "airtime_payments",
		ddl: `CREATE TABLE IF NOT EXISTS airtime_payments (
			date TEXT,
			txid TEXT PRIMARY KEY,
			payment_amount INTEGER,
			fee INTEGER,
			new_balance INTEGER
		)`,
		columns: []string{"date", "txid", "payment_amount", "fee", "new_balance"},
		key:     "txid",
	},
}

// tableFor returns the spec for a category.
func tableFor(c category.Category) (tableSpec, bool) {
	for _, spec := range tables {
		if spec.category == c {
			return spec, true
		}
	}
	return tableSpec{}, false
}
