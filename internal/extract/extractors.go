package extract

import (
	"regexp"
	"strings"
)

// Template patterns, one per regex-extracted category. All are unanchored:
// a pattern may match a substring of a longer body (exports wrap the
// transaction text in USSD framing like "*162*...*S*"). Amount groups accept
// thousands separators and timestamps are matched in their one fixed shape.
var (
	airtimeRE = regexp.MustCompile(
		`(?s)TxId:(\d+).*?Your payment of ([\d,]+) RWF.*? at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?Fee was ([\d,]+) RWF.*?Your new balance: ([\d,]+) RWF`)

	// The sender's number is always masked to its last three digits; any
	// other shape means a template we do not understand.
	incomingMoneyRE = regexp.MustCompile(
		`(?s)You have received ([\d,]+) RWF from ([A-Za-z\s]+) \(\*{9}\d{3}\).*? at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?Your new balance:\s*([\d,]+) RWF.*?Financial Transaction Id: (\d+)`)

	mobileTransferRE = regexp.MustCompile(
		`([\d,]+) RWF transferred to ([A-Za-z ]+) \((\d+)\) from \d+ at (\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2})\s*\. Fee was:? ([\d,]+) RWF\. New balance:? ([\d,]+) RWF`)

	bankTransferRE = regexp.MustCompile(
		`(?s)You have transferred ([\d,]+) RWF to ([A-Za-z\s]+) \((\d+)\) from your mobile money account (\d+).*? at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?Financial Transaction Id:\s*(\d+)`)

	bundleRE = regexp.MustCompile(
		`(?s)TxId:(\d+).*?payment of ([\d,]+) RWF to (.*?) with token.*? at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?Fee was ([\d,]+) RWF.*?balance: ([\d,]+) RWF`)

	codeHolderRE = regexp.MustCompile(
		`(?s)TxId:\s*(\d+).*?payment of ([\d,]+) RWF to (.*?) has been completed at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?balance:\s*([\d,]+) RWF.*?Fee was ([\d,]+) RWF`)

	thirdPartyRE = regexp.MustCompile(
		`(?s)A transaction of ([\d,]+) RWF by (.+?) on your MOMO account was successfully completed at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}).*?Your new balance:\s*([\d,]+) RWF\. Fee was ([\d,]+) RWF\. Financial Transaction Id: (\d+)\. External Transaction Id: (\d+)`)
)

func extractAirtimePayments(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := airtimeRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[2])
		if err != nil {
			continue
		}
		fee, err := parseAmount(m[4])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[5])
		if err != nil {
			continue
		}
		records = append(records, AirtimePayment{
			Date:          normalizeTimestamp(m[3]),
			TxID:          m[1],
			PaymentAmount: amount,
			Fee:           fee,
			NewBalance:    balance,
		})
	}
	return records
}

func extractIncomingMoney(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := incomingMoneyRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[4])
		if err != nil {
			continue
		}
		records = append(records, IncomingMoney{
			TxID:           m[5],
			AmountReceived: amount,
			Sender:         strings.TrimSpace(m[2]),
			Date:           isoTimestamp(m[3]),
			NewBalance:     balance,
		})
	}
	return records
}

func extractMobileTransfers(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := mobileTransferRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		fee, err := parseAmount(m[6])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[7])
		if err != nil {
			continue
		}
		records = append(records, MobileTransfer{
			AmountTransferred: amount,
			Recipient:         strings.TrimSpace(m[2]),
			RecipientNumber:   m[3],
			Date:              m[4],
			Time:              m[5],
			Fee:               fee,
			NewBalance:        balance,
		})
	}
	return records
}

func extractBankTransfers(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := bankTransferRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		records = append(records, BankTransfer{
			TransactionID:  m[6],
			Amount:         amount,
			Date:           normalizeTimestamp(m[5]),
			RecipientName:  strings.TrimSpace(m[2]),
			RecipientPhone: m[3],
			SenderAccount:  m[4],
		})
	}
	return records
}

// extractBundlePurchases parses internet/voice bundle purchases. The
// template's fee group (m[5]) is matched but not surfaced; the bundle schema
// has no fee column.
func extractBundlePurchases(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := bundleRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[2])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[6])
		if err != nil {
			continue
		}
		records = append(records, BundlePurchase{
			TransactionID: m[1],
			Amount:        amount,
			Service:       strings.TrimSpace(m[3]),
			Date:          normalizeTimestamp(m[4]),
			NewBalance:    balance,
		})
	}
	return records
}

func extractCodeHolderPayments(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := codeHolderRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[2])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[5])
		if err != nil {
			continue
		}
		fee, err := parseAmount(m[6])
		if err != nil {
			continue
		}
		records = append(records, CodeHolderPayment{
			TransactionID: m[1],
			Amount:        amount,
			Date:          normalizeTimestamp(m[4]),
			NewBalance:    balance,
			Fee:           fee,
			Recipient:     strings.TrimSpace(m[3]),
		})
	}
	return records
}

func extractThirdPartyTransactions(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		m := thirdPartyRE.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		balance, err := parseAmount(m[4])
		if err != nil {
			continue
		}
		fee, err := parseAmount(m[5])
		if err != nil {
			continue
		}
		records = append(records, ThirdPartyTransaction{
			TransactionID:         m[6],
			Amount:                amount,
			Date:                  normalizeTimestamp(m[3]),
			Sender:                strings.TrimSpace(m[2]),
			NewBalance:            balance,
			Fee:                   fee,
			ExternalTransactionID: m[7],
		})
	}
	return records
}
