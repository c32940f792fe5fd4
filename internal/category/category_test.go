package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllEnumeratesEveryCategoryInOrder(t *testing.T) {
	expected := []Category{
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
	assert.Equal(t, expected, All())
}

func TestEveryCategoryHasATable(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		table := c.Table()
		require.NotEmpty(t, table, c)
		assert.False(t, seen[table], "table %s mapped twice", table)
		seen[table] = true
	}
}

func TestTableNamesDivergeFromCategoryNamesWhereExpected(t *testing.T) {
	// Most tables share their category's name; three don't.
	assert.Equal(t, "airtime_payments", Airtime.Table())
	assert.Equal(t, "internet_voice_bundles", InternetVoiceBundle.Table())
	assert.Equal(t, "transactions_initiated_by_third_parties", ThirdPartyTransactions.Table())
	assert.Equal(t, "incoming_money", IncomingMoney.Table())
}

func TestValid(t *testing.T) {
	for _, c := range All() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("loans").Valid())
	assert.False(t, Category("").Valid())
}
