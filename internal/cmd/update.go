package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/record"
)

func (a *app) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [DATA_FILE]",
		Short: "Check the data file and report the records an update would touch",
		Long: `Check every line of the data file and report how many records of
each kind it holds. The file is not modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runUpdate,
	}
}

func (a *app) runUpdate(cmd *cobra.Command, args []string) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	path := a.dataFile(args)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Updating %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open data file")
	}
	defer func() { _ = f.Close() }()

	counts := make(map[record.Kind]int)
	err = record.Scan(f, func(n int, rec record.Record) error {
		counts[rec.Kind()]++
		return nil
	})
	if err != nil {
		return err
	}

	for _, kind := range []record.Kind{record.KindNotes, record.KindInstrument, record.KindTuning, record.KindHighlight} {
		fmt.Fprintf(out, "  %-10s %d\n", kind.String(), counts[kind])
	}
	if counts[record.KindNotes] == 0 {
		return errors.NewNotFoundError(path).WithCorrupt(record.KindNotes.String())
	}
	return nil
}
