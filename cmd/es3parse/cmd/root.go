package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/t14raptor/es3parse/internal/config"
)

// options is shared by every command. Flags override the values read from
// the config file.
type options struct {
	cfgFile string
	verbose bool
	strict  bool
	noFold  bool
	format  string
	quiet   bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the es3parse command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "es3parse",
		Short: "Parse ES3 scripts into syntax trees",
		Long: `es3parse parses ECMAScript 3 scripts, folds constant arithmetic and
prints the resulting syntax tree as an S-expression, as regenerated
script source or as YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every parsed file")
	flags.BoolVar(&opts.strict, "strict", false, "parse as strict mode code")
	flags.BoolVar(&opts.noFold, "no-fold", false, "do not fold constant expressions")
	flags.StringVar(&opts.format, "format", config.FormatSexp, "output format: sexp, js or yaml")
	flags.BoolVar(&opts.quiet, "no-warnings", false, "do not print warnings")

	root.AddCommand(newParseCmd(opts), newCheckCmd(opts), newWatchCmd(opts))
	return root
}

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Parser.Strict = o.strict
	}
	if flags.Changed("no-fold") {
		cfg.Parser.Fold = !o.noFold
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("no-warnings") {
		cfg.Output.Warnings = !o.quiet
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}
