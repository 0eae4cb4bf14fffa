package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	seximal "github.com/shabbyrobe/go-seximal"
)

// RuleResult is the payload of rule.
type RuleResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Rule     string `json:"rule"`
	Checked  bool   `json:"checked"`
	Lossless bool   `json:"lossless"`
}

func (r RuleResult) String() string {
	return fmt.Sprintf("%s checked=%t lossless=%t", r.Rule, r.Checked, r.Lossless)
}

// NewRuleCommand creates the rule command, which prints the conversion rule
// between two kinds.
func NewRuleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rule <from> <to>",
		Short:   "Show how one kind converts to another",
		Example: `  seximal rule su144 su12`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := seximal.ParseKind(args[0])
			if err != nil {
				return WrapExitError(ExitUsage, "rule", err)
			}
			to, err := seximal.ParseKind(args[1])
			if err != nil {
				return WrapExitError(ExitUsage, "rule", err)
			}

			rule := seximal.RuleFor(from, to)
			return opts.out.Success(RuleResult{
				From:     from.String(),
				To:       to.String(),
				Rule:     rule.String(),
				Checked:  rule.Checked(),
				Lossless: seximal.Lossless(from, to),
			})
		},
	}
}

// KindInfo describes one kind in the output of kinds.
type KindInfo struct {
	Name   string `json:"name"`
	Bits   int    `json:"bits"`
	Signed bool   `json:"signed"`
	Float  bool   `json:"float"`
}

// KindList is the payload of kinds.
type KindList []KindInfo

func (l KindList) String() string {
	var sb strings.Builder
	row := func(name, bits, signed, float string) {
		fmt.Fprintf(&sb, "%-8s%-6s%-8s%s\n", name, bits, signed, float)
	}
	row("KIND", "BITS", "SIGNED", "FLOAT")
	for _, k := range l {
		row(k.Name, strconv.Itoa(k.Bits), strconv.FormatBool(k.Signed), strconv.FormatBool(k.Float))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the numeral kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list KindList
			for _, k := range seximal.Kinds() {
				list = append(list, KindInfo{Name: k.String(), Bits: k.Bits(), Signed: k.Signed(), Float: k.Float()})
			}
			return opts.out.Success(list)
		},
	}
}
