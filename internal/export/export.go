package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

const (
	DefaultLabelSeparator = ";"

	csvMediaType  = "text/csv"
	textMediaType = "text/plain"
)

var Header = []string{"name", "desc", "labels", "listName"}

type Options struct {
	// LabelSeparator склеивает имена меток в одну ячейку CSV.
	LabelSeparator string
}

func DefaultOptions() Options {
	return Options{LabelSeparator: DefaultLabelSeparator}
}

func (o Options) separator() string {
	if o.LabelSeparator == "" {
		return DefaultLabelSeparator
	}
	return o.LabelSeparator
}

// WriteCSV пишет заголовок и строки, без колонки индекса.
func (o Options) WriteCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	sep := o.separator()
	for _, r := range rows {
		record := []string{r.Name, r.Desc, strings.Join(r.Labels, sep), r.ListName}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (o Options) ToCSV(rows []model.Row) (string, error) {
	var buf bytes.Buffer
	if err := o.WriteCSV(&buf, rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return buf.String(), nil
}

// TableDownloadLink сначала сериализует таблицу в CSV.
func (o Options) TableDownloadLink(rows []model.Row, filename, linkText string) (string, error) {
	content, err := o.ToCSV(rows)
	if err != nil {
		return "", err
	}
	return link(csvMediaType, content, filename, linkText), nil
}

func ToCSV(rows []model.Row) (string, error) {
	return DefaultOptions().ToCSV(rows)
}

func TableDownloadLink(rows []model.Row, filename, linkText string) (string, error) {
	return DefaultOptions().TableDownloadLink(rows, filename, linkText)
}

// DownloadLink заворачивает строку в data URI внутри <a download>.
// Файл на диск не пишется, все содержимое живет в возвращаемой строке.
func DownloadLink(content, filename, linkText string) string {
	return link(textMediaType, content, filename, linkText)
}

func link(mediaType, content, filename, linkText string) string {
	b64 := base64.StdEncoding.EncodeToString([]byte(content))
	return fmt.Sprintf(`<a href="data:%s;base64,%s" download="%s">%s</a>`,
		mediaType, b64, html.EscapeString(filename), html.EscapeString(linkText))
}
