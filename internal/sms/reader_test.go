package sms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBackup = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<smses count="3" backup_date="1715351458000">
  <sms protocol="0" address="M-Money" date="1715351458724" type="1" body="You have received 2000 RWF from Jane Smith (*********013)." readable_date="10 May 2024 4:30:58 PM" />
  <sms protocol="0" address="M-Money" date="1715351520000" type="1" body="*165*S*10000 RWF transferred to Jane Smith (250791666666)" readable_date="10 May 2024 4:32:00 PM" />
  <sms protocol="0" address="AIRTEL" date="1715351600000" type="1" body="Your OTP is 1234" readable_date="10 May 2024 4:33:20 PM" />
</smses>`

func TestReadParsesMessagesInDocumentOrder(t *testing.T) {
	msgs, err := Read(strings.NewReader(sampleBackup))
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Contains(t, msgs[0].Body, "You have received 2000 RWF")
	assert.Contains(t, msgs[1].Body, "transferred to")
	assert.Contains(t, msgs[2].Body, "OTP")

	assert.Equal(t, "M-Money", msgs[0].Address)
	assert.Equal(t, "1715351458724", msgs[0].Date)
	assert.Equal(t, "10 May 2024 4:30:58 PM", msgs[0].ReadableDate)
}

func TestReadMalformedDocumentFails(t *testing.T) {
	_, err := Read(strings.NewReader(`<smses count="1"><sms body="trunc`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing sms backup")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sms.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBackup), 0644))

	msgs, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}

func TestReadFileMissingFails(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}
