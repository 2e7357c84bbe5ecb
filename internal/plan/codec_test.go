package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyListIsEmptyString(t *testing.T) {
	got, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Encode([]Item{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := []Item{
		{ID: "a", Interest: "Fuller Lips", Findings: []string{"Thin Lips"}, Treatment: "Filler", Product: "Restylane Kysse", Region: "Lips", Timeline: "now", Notes: "n"},
		{ID: "b", Treatment: "Goal only"},
	}

	raw, err := Encode(items)
	require.NoError(t, err)

	got := Decode("rec123", raw)
	assert.Equal(t, items, got)
}

func TestDecodeToleratesGarbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not json", "plan: botox"},
		{"wrong shape", `{"treatment":"Filler"}`},
		{"number", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Decode("rec123", tt.raw))
		})
	}
}

func TestDecodeDropsEntriesWithoutTreatment(t *testing.T) {
	raw := `[{"id":"a","treatment":"Filler"},{"id":"b","treatment":"  "},{"id":"c"}]`
	got := Decode("rec123", raw)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestDecodeBackfillsStableIDs(t *testing.T) {
	raw := `[{"treatment":"Filler"},{"treatment":""},{"treatment":"Laser"}]`

	got := Decode("rec123", raw)
	require.Len(t, got, 2)
	// Ids come from the raw array position, so the dropped middle entry
	// does not shift the id of the one after it.
	assert.Equal(t, "rec123-plan-0", got[0].ID)
	assert.Equal(t, "rec123-plan-2", got[1].ID)

	// Same data decodes to the same ids on a later load.
	again := Decode("rec123", raw)
	assert.Equal(t, got, again)
}

func TestDecodeKeepsUnknownFieldsOut(t *testing.T) {
	raw := `[{"id":"a","treatment":"Filler","someFutureField":true}]`
	got := Decode("rec123", raw)
	require.Len(t, got, 1)

	// Re-encoding stays a valid array.
	encoded, err := Encode(got)
	require.NoError(t, err)
	var check []Item
	require.NoError(t, json.Unmarshal([]byte(encoded), &check))
	assert.Equal(t, got, check)
}
