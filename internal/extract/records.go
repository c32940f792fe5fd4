package extract

// Record is one fully populated transaction record. Extractors either emit a
// record with every field of its category set, or nothing for that message;
// partial records are never produced.
//
// JSON field order matches the category's storage schema, and JSON field
// names match the storage column names so exported documents can be loaded
// without translation.
type Record interface {
	isRecord()
}

// AirtimePayment is an airtime top-up purchase.
type AirtimePayment struct {
	Date          string `json:"date"`
	TxID          string `json:"txid"`
	PaymentAmount int    `json:"payment_amount"`
	Fee           int    `json:"fee"`
	NewBalance    int    `json:"new_balance"`
}

// IncomingMoney is money received from another wallet.
type IncomingMoney struct {
	TxID           string `json:"txid"`
	AmountReceived int    `json:"amount_received"`
	Sender         string `json:"sender"`
	Date           string `json:"date"`
	NewBalance     int    `json:"new_balance"`
}

// MobileTransfer is a transfer to a mobile number.
type MobileTransfer struct {
	AmountTransferred int    `json:"amount_transferred"`
	Recipient         string `json:"recipient"`
	RecipientNumber   string `json:"recipient_number"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Fee               int    `json:"fee"`
	NewBalance        int    `json:"new_balance"`
}

// CashPowerPayment is an electricity token purchase.
type CashPowerPayment struct {
	TransactionID string `json:"transaction_id"`
	PaymentAmount int    `json:"payment_amount"`
	Token         string `json:"token"`
	Date          string `json:"date"`
	Fee           int    `json:"fee"`
	NewBalance    int    `json:"new_balance"`
	Provider      string `json:"provider"`
}

// AgentWithdrawal is a cash withdrawal via an agent.
type AgentWithdrawal struct {
	Name          string `json:"name"`
	AgentName     string `json:"agent_name"`
	AgentNumber   string `json:"agent_number"`
	Account       string `json:"account"`
	Amount        int    `json:"amount"`
	Date          string `json:"date"`
	Fee           int    `json:"fee"`
	NewBalance    int    `json:"new_balance"`
	TransactionID string `json:"transaction_id"`
}

// BundlePurchase is an internet or voice bundle purchase. The message
// template carries a fee, but the schema does not surface it.
type BundlePurchase struct {
	TransactionID string `json:"transaction_id"`
	Amount        int    `json:"amount"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	NewBalance    int    `json:"new_balance"`
}

// CodeHolderPayment is a payment to a registered code holder.
type CodeHolderPayment struct {
	TransactionID string `json:"transaction_id"`
	Amount        int    `json:"amount"`
	Date          string `json:"date"`
	NewBalance    int    `json:"new_balance"`
	Fee           int    `json:"fee"`
	Recipient     string `json:"recipient"`
}

// BankTransfer is a transfer from the wallet to a bank account holder.
type BankTransfer struct {
	TransactionID  string `json:"transaction_id"`
	Amount         int    `json:"amount"`
	Date           string `json:"date"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	SenderAccount  string `json:"sender_account"`
}

// ThirdPartyTransaction is a debit initiated by an external party. Both
// identifiers are retained; they key different systems.
type ThirdPartyTransaction struct {
	TransactionID         string `json:"transaction_id"`
	Amount                int    `json:"amount"`
	Date                  string `json:"date"`
	Sender                string `json:"sender"`
	NewBalance            int    `json:"new_balance"`
	Fee                   int    `json:"fee"`
	ExternalTransactionID string `json:"external_transaction_id"`
}

func (AirtimePayment) isRecord()        {}
func (IncomingMoney) isRecord()         {}
func (MobileTransfer) isRecord()        {}
func (CashPowerPayment) isRecord()      {}
func (AgentWithdrawal) isRecord()       {}
func (BundlePurchase) isRecord()        {}
func (CodeHolderPayment) isRecord()     {}
func (BankTransfer) isRecord()          {}
func (ThirdPartyTransaction) isRecord() {}
