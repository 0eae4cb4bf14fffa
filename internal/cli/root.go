package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	seximal "github.com/shabbyrobe/go-seximal"
)

// RootOptions holds global flags and the state every command shares once the
// configuration is loaded.
type RootOptions struct {
	Format     string // "json" | "text"
	ConfigDir  string
	Kind       string
	FracDigits int
	Verbose    bool

	config Config
	log    *slog.Logger
	out    *OutputFormatter
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the seximal CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seximal",
		Short: "Base-6 numerals for Go's native number types",
		Long: `Read, write, convert and compute with base-6 (seximal) numerals.

Every value has a kind named after its bit width written in base 6: su12 is
an unsigned 8-bit integer, si332 a signed 128-bit integer, sf144 a 64-bit
float. Negative operands must follow "--" so they are not taken as flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "directory holding seximal.yaml")
	flags.StringVarP(&opts.Kind, "kind", "k", defaultKind, "numeral kind (su12 ... sf144)")
	flags.IntVar(&opts.FracDigits, "frac-digits", 0, "fractional digits of float output (0: kind default)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewRuleCommand(opts))
	cmd.AddCommand(NewKindsCommand(opts))

	return cmd
}

// setup validates the global flags, resolves the configuration and builds
// the logger and output formatter for cmd.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	v, err := loadConfig(o.ConfigDir)
	if err != nil {
		return WrapExitError(ExitUsage, "load config", err)
	}

	for key, name := range map[string]string{
		cfgKeyKind:       "kind",
		cfgKeyFracDigits: "frac-digits",
		cfgKeyVerbose:    "verbose",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return WrapExitError(ExitUsage, "bind flag", err)
		}
	}

	if o.config, err = decodeConfig(v); err != nil {
		return WrapExitError(ExitUsage, "config", err)
	}

	level := slog.LevelWarn
	if o.config.Verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.out = &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}

	o.log.Debug("config resolved",
		"file", v.ConfigFileUsed(),
		"kind", o.config.Kind,
		"frac_digits", o.config.FracDigits)
	return nil
}

// text returns the base-6 text of n, honouring the configured fractional
// digit budget for floats.
func (o *RootOptions) text(n seximal.Numeral) string {
	if f, ok := n.(interface{ Text(int) string }); ok && o.config.FracDigits > 0 {
		return f.Text(o.config.FracDigits)
	}
	return n.String()
}

// Execute runs the CLI with args, writes any error in the selected output
// format and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	code := GetExitCode(err)
	format := opts.Format
	if !slices.Contains(ValidFormats, format) {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr}
	_ = f.Error(code, err)
	return code
}
