package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"value-synth/internal/catalog"
	"value-synth/internal/codec"
	"value-synth/internal/config"
	"value-synth/internal/fixture"
	"value-synth/synth"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Count    int
	Repeat   bool
	Seed     uint64
	Config   string
	Database string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <model>",
		Short: "Generate random values of a model",
		Long: `Generate fully populated random values of a catalog model.

Without --seed every run differs; the seed used is reported in verbose mode.
Values can be kept in a SQLite database with --db and listed later with
the fixtures command.

Examples:
  synth generate store.Person
  synth generate store.Order -n 3 --seed 42 --format json
  synth generate warehouse.Shipment --config synth.yaml --db fixtures.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of values")
	cmd.Flags().BoolVar(&opts.Repeat, "repeat", false, "produce one value and repeat it")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (overrides the config file)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "store the values in this SQLite database")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command, name string) error {
	format, err := codec.ParseFormat(opts.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	model, err := catalog.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown model", err)
	}

	engine, err := newEngine(opts, cmd)
	if err != nil {
		return err
	}

	var batch []synth.BatchOption
	if opts.Repeat {
		batch = append(batch, synth.WithRepeat())
	}

	values, err := engine.ProduceManyType(model.Type, opts.Count, batch...)
	if err != nil {
		return WrapExitError(ExitFailure, "generation failed", err)
	}

	errOut := cmd.ErrOrStderr()
	if opts.Verbose {
		fmt.Fprintf(errOut, "seed: %d\n", engine.Seed())
		diags := engine.Diagnostics()
		for _, d := range diags.Warnings {
			fmt.Fprintln(errOut, d.String())
		}
	}

	if opts.Database != "" {
		if err := saveFixtures(cmd.Context(), opts.Database, model.Name, engine.Seed(), values); err != nil {
			return err
		}
		if opts.Verbose {
			fmt.Fprintf(errOut, "saved %d fixtures to %s\n", values.Len(), opts.Database)
		}
	}

	return codec.Encode(cmd.OutOrStdout(), format, encodable(values))
}

func newEngine(opts *GenerateOptions, cmd *cobra.Command) (*synth.Engine, error) {
	var engineOpts []synth.Option

	if opts.Config != "" {
		f, err := config.LoadFile(opts.Config)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}

		fileOpts, err := f.Options()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid config", err)
		}
		engineOpts = append(engineOpts, fileOpts...)
	}

	if cmd.Flags().Changed("seed") {
		engineOpts = append(engineOpts, synth.WithSeed(opts.Seed))
	}

	engineOpts = append(engineOpts, synth.WithLogger(newLogger(opts.RootOptions, cmd.ErrOrStderr())))

	engine, err := synth.New(engineOpts...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid engine options", err)
	}

	if err := catalog.Setup(engine); err != nil {
		return nil, WrapExitError(ExitFailure, "catalog setup failed", err)
	}

	return engine, nil
}

// encodable returns a single value for a batch of one and the slice otherwise,
// always addressable so pointer receiver marshalers apply.
func encodable(values reflect.Value) any {
	if values.Len() == 1 {
		return values.Index(0).Addr().Interface()
	}

	return values.Interface()
}

func saveFixtures(ctx context.Context, path, typeName string, seed uint64, values reflect.Value) error {
	if ctx == nil {
		ctx = context.Background()
	}

	payloads := make([]string, values.Len())
	for i := range payloads {
		data, err := json.Marshal(values.Index(i).Addr().Interface())
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode fixture", err)
		}
		payloads[i] = string(data)
	}

	st, err := fixture.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if err := st.Save(ctx, typeName, seed, payloads); err != nil {
		return WrapExitError(ExitFailure, "failed to save fixtures", err)
	}

	return nil
}
