package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/trello-export/internal/export"
	"github.com/BuzzLyutic/trello-export/internal/filter"
	"github.com/BuzzLyutic/trello-export/internal/repo"
	"github.com/BuzzLyutic/trello-export/internal/service"
)

type rootFlags struct {
	file          string
	unknownLabels string
	separator     string
}

// board - загруженная доска и сервис, через который ее читают команды
type board struct {
	svc *service.BoardService
	id  string
}

func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "trello-export",
		Short: "Filter a Trello board export and dump the cards as CSV",
		Long: `Load a Trello board export (Show menu > More > Print and Export > Export as JSON),
pick lists and labels, print the matching cards as a table or export them as CSV.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "data/data.json", "Board export to read (- for stdin)")
	rootCmd.PersistentFlags().StringVar(&flags.unknownLabels, "unknown-labels", "skip", "What to do with label ids missing from the board (skip, fail)")
	rootCmd.PersistentFlags().StringVar(&flags.separator, "separator", export.DefaultLabelSeparator, "Separator for label names in a CSV cell")

	rootCmd.AddCommand(
		newListsCmd(flags),
		newLabelsCmd(flags),
		newCardsCmd(flags),
		newExportCmd(flags),
	)
	return rootCmd
}

func (f *rootFlags) open(ctx context.Context, stdin io.Reader) (*board, error) {
	policy, err := filter.ParsePolicy(f.unknownLabels)
	if err != nil {
		return nil, err
	}

	var data []byte
	if f.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(f.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.file, err)
	}

	svc := service.NewBoardService(repo.NewBoardRepo(), service.Options{
		Policy: policy,
		Export: export.Options{LabelSeparator: f.separator},
	})
	summary, err := svc.Upload(ctx, data)
	if err != nil {
		return nil, err
	}
	return &board{svc: svc, id: summary.ID}, nil
}
