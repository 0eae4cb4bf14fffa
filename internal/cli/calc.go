package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	seximal "github.com/shabbyrobe/go-seximal"
)

// CalcResult is the payload of calc.
type CalcResult struct {
	Kind    string `json:"kind"`
	Expr    string `json:"expr"`
	Result  string `json:"result"`
	Decimal string `json:"decimal"`
}

func (r CalcResult) String() string { return r.Result }

// NewCalcCommand creates the calc command, which applies one arithmetic
// operation to two numerals of the configured kind.
func NewCalcCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Add, subtract, multiply, divide or take the remainder",
		Long: `Apply one operation to two base-6 numerals of the same kind.

Operators: + - * / % (or add sub mul quo rem). Integer results that do not
fit the kind fail, as does integer division by zero. Float arithmetic never
fails.`,
		Example: `  seximal calc --kind su12 101 + 5
  seximal calc --kind sf144 1 / 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := seximal.ParseOp(args[1])
			if err != nil {
				return WrapExitError(ExitUsage, "calc", err)
			}

			kind := opts.config.Kind
			a, err := seximal.Parse(kind, args[0])
			if err != nil {
				return numericError("calc", err)
			}
			b, err := seximal.Parse(kind, args[2])
			if err != nil {
				return numericError("calc", err)
			}

			n, err := seximal.Apply(op, a, b)
			if err != nil {
				return numericError("calc", err)
			}
			opts.log.Debug("calc", "kind", kind, "a", seximal.Decimal(a), "op", op, "b", seximal.Decimal(b), "result", seximal.Decimal(n))

			return opts.out.Success(CalcResult{
				Kind:    kind.String(),
				Expr:    fmt.Sprintf("%s %s %s", a, op, b),
				Result:  opts.text(n),
				Decimal: seximal.Decimal(n),
			})
		},
	}
}
