package cli

import (
	"github.com/spf13/cobra"

	seximal "github.com/shabbyrobe/go-seximal"
)

// NumberResult is the payload of encode and decode.
type NumberResult struct {
	Kind    string `json:"kind"`
	Decimal string `json:"decimal"`
	Base6   string `json:"base6"`

	text string
}

func (r NumberResult) String() string { return r.text }

func numberResult(opts *RootOptions, n seximal.Numeral) NumberResult {
	return NumberResult{
		Kind:    n.Kind().String(),
		Decimal: seximal.Decimal(n),
		Base6:   opts.text(n),
	}
}

// NewEncodeCommand creates the encode command, which writes a decimal number
// in base 6.
func NewEncodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Write a decimal number in base 6",
		Example: `  seximal encode --kind su12 37
  seximal encode --kind sf144 -- -2.25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := seximal.New(opts.config.Kind, args[0])
			if err != nil {
				return numericError("encode", err)
			}
			res := numberResult(opts, n)
			res.text = res.Base6
			return opts.out.Success(res)
		},
	}
}

// NewDecodeCommand creates the decode command, which reads base-6 text and
// prints its decimal value.
func NewDecodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <base6>",
		Short: "Read base-6 text and print its decimal value",
		Example: `  seximal decode --kind su12 101
  seximal decode --kind sf52 0.3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := seximal.Parse(opts.config.Kind, args[0])
			if err != nil {
				return numericError("decode", err)
			}
			res := numberResult(opts, n)
			res.text = res.Decimal
			return opts.out.Success(res)
		},
	}
}
