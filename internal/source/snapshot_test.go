package source_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/source"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadItems_ArrayAndWrapped(t *testing.T) {
	array := writeFile(t, "list.json", `[{"id":"1","name":"Milk","quantity":1,"category":"fridge"}]`)
	items, err := source.LoadItems(array, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "fridge", items[0].Category)

	wrapped := `{"listId":"weekly","items":[{"id":"1","name":"Eggs","quantity":12,"unit":"pc"}]}`
	items, err = source.LoadItems(source.Stdin, strings.NewReader(wrapped))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Eggs", items[0].Name)
}

func TestLoadItems_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "  ", "empty snapshot"},
		{"missing key", `{"things":[]}`, `"items"`},
		{"bad item", `[{"id":"1","name":"Milk","quantity":0}]`, "Quantity must be greater than 0"},
		{"trailing", `[] {}`, "trailing JSON content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.LoadItems(source.Stdin, strings.NewReader(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := source.LoadItems(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestLoadCandidates_SkipsInvalid(t *testing.T) {
	path := writeFile(t, "pool.json", `{"candidates":[
		{"id":"c1","tier":"home","rating":4.2,"basePrices":{"family":80}},
		{"id":"c2","tier":"celebrity","rating":4.9},
		{"id":"","tier":"elite"}
	]}`)

	pool, err := source.LoadCandidates(path, nil)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, "c1", pool[0].ID)
}

func TestLoadCriteria(t *testing.T) {
	body := `{"budgetMin":80,"budgetMax":120,"cuisines":["italian"],
		"eventType":"wedding","eventDate":"2026-06-13T18:00:00Z","eventSize":40,"timeSlot":"evening"}`
	r, err := source.LoadCriteria(source.Stdin, strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 120.0, r.BudgetMax)
	assert.Equal(t, time.Saturday, r.EventDate.Weekday())
	assert.Equal(t, 40, r.EventSize)

	_, err = source.LoadCriteria(source.Stdin, strings.NewReader(`{"budgetMin":100,"budgetMax":50}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BudgetMax")
}

func TestWriteItems_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := []grocery.ListItem{{ID: "1", Name: "Milk", Quantity: 2, Unit: "l", Note: "oat"}}
	require.NoError(t, source.WriteItems(&buf, in))

	out, err := source.LoadItems(source.Stdin, &buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	buf.Reset()
	require.NoError(t, source.WriteItems(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
