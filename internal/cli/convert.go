package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	seximal "github.com/shabbyrobe/go-seximal"
)

// kindValue is a pflag.Value holding a kind by name.
type kindValue seximal.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string { return seximal.Kind(*k).String() }
func (k *kindValue) Type() string   { return "kind" }

func (k *kindValue) Set(s string) error {
	v, err := seximal.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(v)
	return nil
}

// ConvertResult is the payload of convert.
type ConvertResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Rule   string `json:"rule"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func (r ConvertResult) String() string { return r.Output }

// NewConvertCommand creates the convert command. The source kind defaults to
// the configured kind.
func NewConvertCommand(opts *RootOptions) *cobra.Command {
	var from, to kindValue

	cmd := &cobra.Command{
		Use:   "convert <base6>",
		Short: "Convert a numeral to another kind",
		Long: `Convert a base-6 numeral from one kind to another following the
conversion matrix. Narrowing fails when the value does not fit; conversions
between signed and unsigned kinds keep the bit pattern.`,
		Example: `  seximal convert --from su24 --to su12 532
  seximal convert --from su12 --to si12 1103`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := opts.config.Kind
			if cmd.Flags().Changed("from") {
				src = seximal.Kind(from)
			}
			dst := seximal.Kind(to)

			n, err := seximal.Parse(src, args[0])
			if err != nil {
				return numericError("convert", err)
			}

			rule := seximal.RuleFor(src, dst)
			opts.log.Debug("converting", "from", src, "to", dst, "rule", rule)

			out, err := seximal.Convert(n, dst)
			if err != nil {
				return numericError("convert", err)
			}
			if before, after := seximal.Decimal(n), seximal.Decimal(out); before != after {
				opts.log.Warn("conversion changed the value",
					"rule", rule, "before", before, "after", after)
			}

			return opts.out.Success(ConvertResult{
				From:   src.String(),
				To:     dst.String(),
				Rule:   rule.String(),
				Input:  n.String(),
				Output: opts.text(out),
			})
		},
	}

	cmd.Flags().Var(&from, "from", "source kind (default: --kind)")
	cmd.Flags().Var(&to, "to", "target kind")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
