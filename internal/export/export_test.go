package export

import (
	"encoding/base64"
	"encoding/csv"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

var hrefRe = regexp.MustCompile(`^<a href="data:([^;]+);base64,([A-Za-z0-9+/=]*)" download="([^"]*)">(.*)</a>$`)

func testRows() []model.Row {
	return []model.Row{
		{Name: "Fix bug", Desc: "", Labels: []string{"Bug"}, ListName: "Todo"},
		{Name: "Quote \"me\", please", Desc: "line one\nline two", Labels: []string{"Bug", "Urgent"}, ListName: "Doing"},
		{Name: "Привет", Desc: "utf-8 ✓", Labels: []string{}, ListName: "Done"},
	}
}

func TestToCSV(t *testing.T) {
	out, err := ToCSV([]model.Row{{Name: "Fix bug", Labels: []string{"Bug", "Urgent"}, ListName: "Todo"}})
	require.NoError(t, err)

	assert.Equal(t, "name,desc,labels,listName\nFix bug,,Bug;Urgent,Todo\n", out)
}

func TestToCSV_Empty(t *testing.T) {
	out, err := ToCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "name,desc,labels,listName\n", out)
}

func TestToCSV_RoundTrip(t *testing.T) {
	rows := testRows()
	out, err := ToCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, Header, records[0])

	for i, r := range rows {
		rec := records[i+1]
		assert.Equal(t, r.Name, rec[0])
		assert.Equal(t, r.Desc, rec[1])
		assert.Equal(t, strings.Join(r.Labels, DefaultLabelSeparator), rec[2])
		assert.Equal(t, r.ListName, rec[3])
	}
}

func TestOptions_LabelSeparator(t *testing.T) {
	out, err := Options{LabelSeparator: " | "}.ToCSV([]model.Row{{Name: "a", Labels: []string{"x", "y"}, ListName: "l"}})
	require.NoError(t, err)
	assert.Contains(t, out, "a,,x | y,l\n")

	out, err = Options{}.ToCSV([]model.Row{{Name: "a", Labels: []string{"x", "y"}, ListName: "l"}})
	require.NoError(t, err)
	assert.Contains(t, out, "a,,x;y,l\n")
}

func TestTableDownloadLink(t *testing.T) {
	rows := testRows()
	link, err := TableDownloadLink(rows, "trello.csv", "Export CSV")
	require.NoError(t, err)

	m := hrefRe.FindStringSubmatch(link)
	require.NotNil(t, m, "unexpected markup: %s", link)
	assert.Equal(t, "text/csv", m[1])
	assert.Equal(t, "trello.csv", m[3])
	assert.Equal(t, "Export CSV", m[4])

	decoded, err := base64.StdEncoding.DecodeString(m[2])
	require.NoError(t, err)

	want, err := ToCSV(rows)
	require.NoError(t, err)
	assert.Equal(t, []byte(want), decoded)
}

func TestDownloadLink(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		filename     string
		text         string
		wantFilename string
		wantText     string
	}{
		{
			name:         "plain text",
			content:      "hello",
			filename:     "out.txt",
			text:         "Download",
			wantFilename: "out.txt",
			wantText:     "Download",
		},
		{
			name:         "empty content",
			content:      "",
			filename:     "empty.txt",
			text:         "Nothing",
			wantFilename: "empty.txt",
			wantText:     "Nothing",
		},
		{
			name:         "markup is escaped",
			content:      "x",
			filename:     `a"b.txt`,
			text:         "<b>go</b>",
			wantFilename: "a&#34;b.txt",
			wantText:     "&lt;b&gt;go&lt;/b&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := DownloadLink(tt.content, tt.filename, tt.text)

			m := hrefRe.FindStringSubmatch(link)
			require.NotNil(t, m, "unexpected markup: %s", link)
			assert.Equal(t, "text/plain", m[1])
			assert.Equal(t, tt.wantFilename, m[3])
			assert.Equal(t, tt.wantText, m[4])

			decoded, err := base64.StdEncoding.DecodeString(m[2])
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(decoded))
		})
	}
}
