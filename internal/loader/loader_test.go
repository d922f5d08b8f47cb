package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"cards": [
		{"id": "C1", "name": "Fix bug", "closed": false, "desc": "", "dueReminder": null,
		 "idList": "L1", "idLabels": ["B1"], "dueComplete": false},
		{"id": "C2", "name": "Old", "closed": true, "desc": "gone", "dueReminder": 1440,
		 "idList": "L2", "idLabels": [], "dueComplete": true}
	],
	"labels": [{"id": "B1", "name": "Bug", "board": "X", "color": "red"}],
	"lists": [
		{"id": "L1", "name": "Todo", "closed": false, "pos": 1},
		{"id": "L2", "name": "Archive", "closed": true, "pos": 2.5}
	],
	"checklists": [
		{"id": "K1", "name": "Steps", "idCard": "C1", "pos": 1,
		 "checkItems": [{"id": "I1", "idChecklist": "K1", "state": "complete", "name": "repro", "due": null}]}
	]
}`

func TestLoad(t *testing.T) {
	b, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, b.Cards, 2)
	assert.Equal(t, "Fix bug", b.Cards[0].Name)
	assert.Equal(t, []string{"B1"}, b.Cards[0].IDLabels)
	assert.Nil(t, b.Cards[0].DueReminder)
	require.NotNil(t, b.Cards[1].DueReminder)
	assert.Equal(t, 1440, *b.Cards[1].DueReminder)
	assert.True(t, b.Cards[1].Closed)

	require.Len(t, b.Lists, 2)
	assert.Equal(t, 2.5, b.Lists[1].Pos)

	require.Len(t, b.Labels, 1)
	assert.Equal(t, "red", b.Labels[0].Color)

	require.Len(t, b.Checklists, 1)
	assert.Equal(t, "complete", b.Checklists[0].CheckItems[0].State)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"cards": [`},
		{name: "empty", doc: ``},
		{name: "array document", doc: `[]`},
		{name: "null document", doc: `null`},
		{name: "missing cards", doc: `{"labels": [], "lists": [], "checklists": []}`},
		{name: "missing checklists", doc: `{"cards": [], "labels": [], "lists": []}`},
		{name: "lists not an array", doc: `{"cards": [], "labels": [], "lists": {}, "checklists": []}`},
		{name: "labels null", doc: `{"cards": [], "labels": null, "lists": [], "checklists": []}`},
		{name: "wrong field type", doc: `{"cards": [{"closed": "no"}], "labels": [], "lists": [], "checklists": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestParse_EmptyArrays(t *testing.T) {
	b, err := Parse([]byte(`{"cards": [], "labels": [], "lists": [], "checklists": [], "actions": [{}]}`))
	require.NoError(t, err)
	assert.Empty(t, b.Cards)
	assert.Empty(t, b.Lists)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, b.Cards, 2)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMalformedInput)
	})
}
