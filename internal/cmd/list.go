package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/listing"
)

type listOptions struct {
	filter string
	output string
}

func (a *app) newListCmd() *cobra.Command {
	opts := &listOptions{}

	listCmd := &cobra.Command{
		Use:   "list KIND [DATA_FILE]",
		Short: "List records from the data file",
		Long: `List records of one kind from the data file.

KIND is one of: ` + strings.Join(listing.Kinds(), ", ") + `.
"datafile" lists every record in the file.

Examples:
  # All tunings
  fretsmart list tunings

  # Chords and scales whose name starts with "min", as YAML
  fretsmart list highlights --filter 'min*' -o yaml`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: listing.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, args, opts)
		},
	}

	listCmd.Flags().StringVar(&opts.filter, "filter", "", "only list records whose name matches this glob")
	listCmd.Flags().StringVarP(&opts.output, "output", "o", listing.FormatText, "output format: text or yaml")

	return listCmd
}

func (a *app) runList(cmd *cobra.Command, args []string, opts *listOptions) error {
	kind, err := listing.ParseKind(args[0])
	if err != nil {
		return err
	}
	if err := a.load(cmd); err != nil {
		return err
	}

	path := a.dataFile(args[1:])
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open data file")
	}
	defer func() { _ = f.Close() }()

	a.logger.Debug("listing records", "kind", string(kind), "path", path, "filter", opts.filter)
	return listing.List(cmd.OutOrStdout(), f, listing.Options{
		Kind:   kind,
		Filter: opts.filter,
		Format: opts.output,
	})
}
