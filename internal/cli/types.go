package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"value-synth/internal/catalog"
	"value-synth/internal/codec"
)

// ModelInfo describes one catalog model.
type ModelInfo struct {
	Name     string   `json:"name"`
	Members  int      `json:"members"`
	Excluded []string `json:"excluded,omitempty"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the models that can be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(rootOpts, cmd)
		},
	}
}

func runTypes(opts *RootOptions, cmd *cobra.Command) error {
	format, err := codec.ParseFormat(opts.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	models := catalog.Models()
	infos := make([]ModelInfo, 0, len(models))
	for _, m := range models {
		infos = append(infos, ModelInfo{Name: m.Name, Members: m.Members(), Excluded: m.Excluded()})
	}

	if format != codec.FormatText {
		return codec.Encode(cmd.OutOrStdout(), format, infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		excluded := "-"
		if len(info.Excluded) > 0 {
			excluded = strings.Join(info.Excluded, ",")
		}
		rows = append(rows, []string{info.Name, strconv.Itoa(info.Members), excluded})
	}

	return table(cmd.OutOrStdout(), []string{"model", "members", "excluded"}, rows)
}
