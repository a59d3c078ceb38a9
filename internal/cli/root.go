// Package cli implements the regequiv command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"regequiv/internal/config"
	"regequiv/regexlib"
)

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Normalize  bool

	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the regequiv command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "regequiv",
		Short: "Decide whether two regular expressions are equivalent",
		Long: `regequiv compiles regular expressions over literals, |, * and parentheses
into minimal DFAs and compares them.

Settings come from defaults, the --config YAML file, REGEQUIV_FORMAT,
REGEQUIV_VERBOSE, REGEQUIV_WITNESS and REGEQUIV_NORMALIZE, and finally
explicit flags.

Every code point of a regex is one symbol, so a decomposed é is two.
--normalize applies Unicode NFC to regexes and inputs first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.Normalize, "normalize", false, "NFC-normalize regexes and inputs")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewSuiteCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))

	return cmd
}

// resolve layers explicitly set flags over the loaded configuration,
// validates the merged settings and installs the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if flags.Changed("normalize") {
		cfg.Normalize = o.Normalize
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.Config = cfg
	o.Format, o.Verbose, o.Normalize = cfg.Format, cfg.Verbose, cfg.Normalize

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// witness reports whether a command should search distinguishing words:
// its own --witness flag when given, else the configured default.
func (o *RootOptions) witness(cmd *cobra.Command, flag bool) bool {
	if cmd.Flags().Changed("witness") {
		return flag
	}
	return o.Config.Witness
}

// text returns s in NFC when normalization is on, else unchanged.
func (o *RootOptions) text(s string) string {
	if o.Normalize {
		return norm.NFC.String(s)
	}
	return s
}

// compile runs the pipeline on pattern and logs the size of every stage.
func (o *RootOptions) compile(pattern string) (*regexlib.Regex, error) {
	re, err := regexlib.Compile(o.text(pattern))
	if err != nil {
		return nil, err
	}
	o.logger().Debug("regex compiled",
		slog.String("regex", pattern),
		slog.Int("nfa_states", re.NFA().NumStates()),
		slog.Int("dfa_states", re.RawDFA().NumStates()),
		slog.Int("min_states", re.DFA().NumStates()),
	)
	return re, nil
}
