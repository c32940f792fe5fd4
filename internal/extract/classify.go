package extract

import (
	"strings"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/sms"
)

// Batch maps each category to the message bodies assigned to it, in input
// order. A body appears in at most one category's list.
type Batch map[category.Category][]string

// Classify routes each message to the first category whose marker substring
// appears in its body. Bodies containing no marker are dropped; unrelated
// SMS traffic is expected in every export and is not an error.
//
// Classification is a pure function of the body and the fixed rule order:
// re-running it over the same input always yields the same batch.
func Classify(msgs []sms.Message) Batch {
	batch := make(Batch, len(rules))
	for _, m := range msgs {
		for _, r := range rules {
			if strings.Contains(m.Body, r.Marker) {
				batch[r.Category] = append(batch[r.Category], m.Body)
				break
			}
		}
	}
	return batch
}

// Unmatched returns how many of total messages matched no marker.
func (b Batch) Unmatched(total int) int {
	assigned := 0
	for _, bodies := range b {
		assigned += len(bodies)
	}
	return total - assigned
}
