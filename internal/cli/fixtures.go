package cli

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"value-synth/internal/catalog"
	"value-synth/internal/codec"
	"value-synth/internal/fixture"
)

// FixturesOptions holds flags for the fixtures command.
type FixturesOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// FixtureView is the printed form of a stored fixture.
type FixtureView struct {
	ID        int64           `json:"id"`
	Seed      uint64          `json:"seed"`
	Seq       int             `json:"seq"`
	CreatedAt string          `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// NewFixturesCommand creates the fixtures command.
func NewFixturesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FixturesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fixtures <model>",
		Short: "List stored fixtures of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show only the most recent fixtures")

	return cmd
}

func runFixtures(opts *FixturesOptions, cmd *cobra.Command, name string) error {
	format, err := codec.ParseFormat(opts.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	model, err := catalog.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown model", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := fixture.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	stored, err := st.List(ctx, model.Name, opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list fixtures", err)
	}

	views := make([]FixtureView, 0, len(stored))
	for _, f := range stored {
		views = append(views, FixtureView{
			ID:        f.ID,
			Seed:      f.Seed,
			Seq:       f.Seq,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
			Payload:   json.RawMessage(f.Payload),
		})
	}

	if format != codec.FormatText {
		return codec.Encode(cmd.OutOrStdout(), format, views)
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.FormatInt(v.ID, 10),
			strconv.FormatUint(v.Seed, 10),
			strconv.Itoa(v.Seq),
			v.CreatedAt,
			string(v.Payload),
		})
	}

	return table(cmd.OutOrStdout(), []string{"id", "seed", "seq", "created", "payload"}, rows)
}
