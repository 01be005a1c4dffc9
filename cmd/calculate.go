package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/report"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Score both pilots and print the recommendation",
	Long: `Score the customer-facing bot (option A) against the internal
advisor-assist tool (option B) and print the recommended pilot, its
investment tier and the risk profile of the winner.

Every driver has a flag named <option>-<driver>; omitted flags keep the
catalog default.

Examples:
  # Score the default slider values
  navigator calculate

  # Raise the customer bot's revenue lift and export the verdict
  navigator calculate --customer-new-revenue 18 --xlsx verdict.xlsx

  # Adjust the sliders in a form
  navigator calculate --interactive`,
	RunE: runCalculate,
}

func init() {
	addCalculateFlags(calculateCmd.Flags())
	rootCmd.AddCommand(calculateCmd)
}

func addCalculateFlags(f *pflag.FlagSet) {
	for _, o := range scorer.Options() {
		for _, d := range o.Drivers {
			f.Int(driverFlag(o.ID, d.Key), d.Default, driverUsage(d))
		}
	}
	f.Bool("interactive", false, "adjust the drivers in an interactive form")
	f.String("format", report.FormatHuman, "output format: human, json or yaml")
	f.Bool("verdict", false, "print the full verdict instead of the recommendation")
	f.String("xlsx", "", "also write the verdict workbook to this path")
}

func driverFlag(id model.OptionID, key string) string {
	return string(id) + "-" + strings.ReplaceAll(key, "_", "-")
}

func driverUsage(d model.DriverSpec) string {
	return fmt.Sprintf("%s (%s to %s)", d.Label, report.DriverValue(d, d.Min), report.DriverValue(d, d.Max))
}

// inputsFromFlags returns both options' inputs, with flag values layered
// over the catalog defaults.
func inputsFromFlags(flags *pflag.FlagSet) (a, b model.OptionInput, err error) {
	a, b = scorer.DefaultInputs()
	for _, in := range []model.OptionInput{a, b} {
		spec, _ := scorer.Option(in.ID)
		for _, d := range spec.Drivers {
			v, ferr := flags.GetInt(driverFlag(in.ID, d.Key))
			if ferr != nil {
				return a, b, eris.Wrapf(ferr, "calculate: read flag %s", driverFlag(in.ID, d.Key))
			}
			in.Drivers[d.Key] = v
		}
	}
	return a, b, nil
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate("calculate"); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	interactive, _ := cmd.Flags().GetBool("interactive")
	showVerdict, _ := cmd.Flags().GetBool("verdict")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	a, b, err := inputsFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if interactive {
		if err := promptDrivers(&a, &b); err != nil {
			return err
		}
	}

	rec, err := scorer.ComputeRecommendation(a, b)
	if err != nil {
		return err
	}

	zap.L().Debug("computed recommendation",
		zap.String("winner", string(rec.Winner)),
		zap.String("tier", string(rec.Tier)),
		zap.Float64("priority_customer", rec.Scores[model.OptionCustomer].PriorityScore),
		zap.Float64("priority_internal", rec.Scores[model.OptionInternal].PriorityScore),
	)

	var verdict *report.Verdict
	if showVerdict || xlsxPath != "" {
		verdict, err = report.BuildVerdict(rec, nil)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if showVerdict {
		err = report.RenderVerdict(out, verdict, format)
	} else {
		err = report.Render(out, rec, format)
	}
	if err != nil {
		return err
	}

	if xlsxPath != "" {
		if err := writeVerdictFile(xlsxPath, verdict); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "verdict written to %s\n", xlsxPath)
	}
	return nil
}

func writeVerdictFile(path string, v *report.Verdict) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "calculate: create %s", path)
	}
	if err := report.WriteXLSX(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "calculate: close %s", path)
}

// promptDrivers runs one form group per option, prefilled with the
// current values, and writes the answers back into a and b.
func promptDrivers(a, b *model.OptionInput) error {
	var groups []*huh.Group
	answers := make(map[string]*string)

	for _, in := range []*model.OptionInput{a, b} {
		spec, _ := scorer.Option(in.ID)
		var fields []huh.Field
		for _, d := range spec.Drivers {
			val := strconv.Itoa(in.Drivers[d.Key])
			answers[driverFlag(in.ID, d.Key)] = &val
			fields = append(fields, huh.NewInput().
				Title(d.Label).
				Description(driverUsage(d)).
				Value(&val).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number")
					}
					if !d.InRange(n) {
						return fmt.Errorf("must be between %d and %d", d.Min, d.Max)
					}
					return nil
				}))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(spec.Label).Description(spec.Tagline))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return eris.Wrap(err, "calculate: interactive form")
	}

	for _, in := range []*model.OptionInput{a, b} {
		spec, _ := scorer.Option(in.ID)
		for _, d := range spec.Drivers {
			n, err := strconv.Atoi(strings.TrimSpace(*answers[driverFlag(in.ID, d.Key)]))
			if err != nil {
				return eris.Wrapf(err, "calculate: parse %s", d.Label)
			}
			in.Drivers[d.Key] = n
		}
	}
	return nil
}
