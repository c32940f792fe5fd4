package extract

import "strings"

// cursor cuts fields out of a message body by walking it left to right past
// a fixed sequence of anchor phrases. Each cut locates the next occurrence
// of its opening anchor after the current position, takes the text up to the
// following closing anchor, and leaves the position at the start of the
// closing anchor (closing anchors often overlap the next opening anchor,
// e.g. ". Fee" followed by "Fee was ").
//
// A missing anchor poisons the cursor: every later cut returns "" and ok()
// reports false. Callers treat a poisoned cursor as a miss for the whole
// message; the anchor sequence encodes the message structure, so a single
// absent anchor means the template does not apply.
type cursor struct {
	rest   string
	failed bool
}

func newCursor(body string) *cursor {
	return &cursor{rest: body}
}

// cut returns the trimmed text between the next open anchor and the closing
// anchor that follows it.
func (c *cursor) cut(open, close string) string {
	if c.failed {
		return ""
	}
	i := strings.Index(c.rest, open)
	if i < 0 {
		c.failed = true
		return ""
	}
	c.rest = c.rest[i+len(open):]
	j := strings.Index(c.rest, close)
	if j < 0 {
		c.failed = true
		return ""
	}
	field := strings.TrimSpace(c.rest[:j])
	c.rest = c.rest[j:]
	return field
}

// tail returns the trimmed text after the next open anchor up to the next
// period, or to the end of the body when none follows.
func (c *cursor) tail(open string) string {
	if c.failed {
		return ""
	}
	i := strings.Index(c.rest, open)
	if i < 0 {
		c.failed = true
		return ""
	}
	c.rest = c.rest[i+len(open):]
	field := strings.TrimSpace(c.rest)
	if j := strings.Index(field, "."); j >= 0 {
		field = field[:j]
	}
	return field
}

func (c *cursor) ok() bool {
	return !c.failed
}

// extractCashPowerPayments parses electricity token purchases by anchor
// slicing. Field order follows the message: transaction id, amount,
// provider, token, completion time, fee, balance.
func extractCashPowerPayments(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		c := newCursor(body)
		txID := c.cut("TxId:", "*")
		rawAmount := c.cut("payment of ", " RWF")
		provider := c.cut(" to ", " with")
		token := c.cut("token ", " has")
		date := c.cut("completed at ", ". Fee")
		rawFee := c.cut("Fee was ", " RWF")
		rawBalance := c.cut("new balance: ", " RWF")
		if !c.ok() {
			continue
		}
		amount, err := parseAmount(rawAmount)
		if err != nil {
			continue
		}
		fee, err := parseAmount(rawFee)
		if err != nil {
			continue
		}
		balance, err := parseAmount(rawBalance)
		if err != nil {
			continue
		}
		records = append(records, CashPowerPayment{
			TransactionID: txID,
			PaymentAmount: amount,
			Token:         token,
			Date:          normalizeTimestamp(date),
			Fee:           fee,
			NewBalance:    balance,
			Provider:      provider,
		})
	}
	return records
}

// extractAgentWithdrawals parses agent cash-outs by anchor slicing. The
// agent field is a "Name (Number)" composite that is sub-split after the
// cut; a composite without parentheses is a miss.
func extractAgentWithdrawals(bodies []string) []Record {
	var records []Record
	for _, body := range bodies {
		c := newCursor(body)
		name := c.cut("You ", " have")
		agentInfo := c.cut("via agent: ", ",")
		rawAmount := c.cut("withdrawn ", " RWF")
		account := c.cut("account: ", " at")
		date := c.cut("at ", " and")
		rawBalance := c.cut("Your new balance: ", " RWF")
		rawFee := c.cut("Fee paid: ", " RWF")
		txID := c.tail("Id: ")
		if !c.ok() {
			continue
		}
		agentName, agentNumber, ok := splitAgent(agentInfo)
		if !ok {
			continue
		}
		amount, err := parseAmount(rawAmount)
		if err != nil {
			continue
		}
		balance, err := parseAmount(rawBalance)
		if err != nil {
			continue
		}
		fee, err := parseAmount(rawFee)
		if err != nil {
			continue
		}
		records = append(records, AgentWithdrawal{
			Name:          name,
			AgentName:     agentName,
			AgentNumber:   agentNumber,
			Account:       account,
			Amount:        amount,
			Date:          normalizeTimestamp(date),
			Fee:           fee,
			NewBalance:    balance,
			TransactionID: txID,
		})
	}
	return records
}

// splitAgent splits an "Agent Name (250...)" composite into name and number.
func splitAgent(info string) (name, number string, ok bool) {
	i := strings.Index(info, "(")
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(info[:i])
	number = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(info[i+1:]), ")"))
	if name == "" || number == "" {
		return "", "", false
	}
	return name, number, true
}
