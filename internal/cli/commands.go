package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/trello-export/internal/model"
	"github.com/BuzzLyutic/trello-export/internal/service"
)

type selectionFlags struct {
	lists  []string
	labels []string
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.lists, "list", "l", nil, "List id or name to include (repeatable, default: every open list)")
	cmd.Flags().StringArrayVarP(&s.labels, "label", "b", nil, "Label id or name every card must carry (repeatable)")
}

// query: без --list берутся все открытые списки, --list= не выбирает ни одного.
func (s *selectionFlags) query(cmd *cobra.Command) service.Query {
	q := service.Query{Labels: nonEmpty(s.labels)}
	if cmd.Flags().Changed("list") {
		q.Lists = nonEmpty(s.lists)
	}
	return q
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func newTable(cmd *cobra.Command, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = text.FgGreen.Sprint(h)
	}
	t.AppendHeader(row)
	return t
}

func newListsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the open lists of the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.open(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			lists, err := b.svc.Lists(cmd.Context(), b.id)
			if err != nil {
				return err
			}

			t := newTable(cmd, "List ID", "Name")
			for _, l := range lists {
				t.AppendRow(table.Row{l.IDList, l.ListName})
			}
			t.Render()
			return nil
		},
	}
}

func newLabelsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Show the labels of the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.open(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			labels, err := b.svc.Labels(cmd.Context(), b.id)
			if err != nil {
				return err
			}

			t := newTable(cmd, "Label ID", "Name", "Color")
			for _, l := range labels {
				t.AppendRow(table.Row{l.ID, l.Name, l.Color})
			}
			t.Render()
			return nil
		},
	}
}

func newCardsCmd(flags *rootFlags) *cobra.Command {
	sel := &selectionFlags{}
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Show open cards of the selected lists that carry every selected label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.open(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			rows, err := b.svc.Cards(cmd.Context(), b.id, sel.query(cmd))
			if err != nil {
				return err
			}

			renderRows(cmd, rows, flags.separator)
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func renderRows(cmd *cobra.Command, rows []model.Row, sep string) {
	t := newTable(cmd, "Name", "Description", "Labels", "List")
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Desc, strings.Join(r.Labels, sep), r.ListName})
	}
	t.AppendFooter(table.Row{"", "", "Cards", len(rows)})
	t.Render()
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	sel := &selectionFlags{}
	var (
		format   string
		output   string
		filename string
		linkText string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the selected cards as CSV or as an HTML download link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.open(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "csv":
				out, err = b.svc.ExportCSV(cmd.Context(), b.id, sel.query(cmd))
			case "link":
				out, err = b.svc.ExportLink(cmd.Context(), b.id, sel.query(cmd), filename, linkText)
				out += "\n"
			default:
				return fmt.Errorf("unknown format %q (csv, link)", format)
			}
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✅ Exported to %s\n", output)
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv, link)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&filename, "filename", "trello.csv", "download attribute of the link")
	cmd.Flags().StringVar(&linkText, "text", "Export CSV", "Visible text of the link")
	return cmd
}
