// Package sms reads mobile-money SMS backup exports.
//
// The export is a single XML document whose <sms> elements carry the message
// text in a body attribute plus metadata attributes the pipeline ignores.
// A document that fails to parse is fatal to the run; there is nothing
// meaningful to recover from a truncated or corrupted export.
package sms

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Message is a single SMS from the backup. Only Body feeds classification;
// the remaining attributes are retained for provenance.
type Message struct {
	Protocol     string `xml:"protocol,attr"`
	Address      string `xml:"address,attr"`
	Date         string `xml:"date,attr"`
	Type         string `xml:"type,attr"`
	Body         string `xml:"body,attr"`
	ReadableDate string `xml:"readable_date,attr"`
}

// Backup is the root element of the export document.
type Backup struct {
	XMLName  xml.Name  `xml:"smses"`
	Count    string    `xml:"count,attr"`
	Messages []Message `xml:"sms"`
}

// Read parses an SMS backup document and returns its messages in document
// order.
func Read(r io.Reader) ([]Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sms backup: %w", err)
	}

	var backup Backup
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parsing sms backup: %w", err)
	}

	return backup.Messages, nil
}

// ReadFile parses the SMS backup at path.
func ReadFile(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sms backup: %w", err)
	}
	defer f.Close()

	return Read(f)
}
