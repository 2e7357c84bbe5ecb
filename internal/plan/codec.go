package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes a plan list for the record field. An empty list
// serializes to the empty string — records from before this feature have no
// field value at all, and "no value" must keep meaning "no plan".
func Encode(items []Item) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("plan: encode: %w", err)
	}
	return string(payload), nil
}

// Decode parses a raw plan field. Malformed JSON, non-array payloads, and
// entries without a treatment are dropped silently: older or
// externally-edited records must never break the dashboard. Missing ids
// are backfilled from the record id and the entry's position in the raw
// array, so they stay stable across reloads of the same data.
func Decode(recordID, raw string) []Item {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var decoded []Item
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}

	var out []Item
	for i, item := range decoded {
		if strings.TrimSpace(item.Treatment) == "" {
			continue
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID = fmt.Sprintf("%s-plan-%d", recordID, i)
		}
		out = append(out, item)
	}
	return out
}
