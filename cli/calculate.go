package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invest-agent/domain"
	"invest-agent/service"
)

type calcFlags struct {
	rate      float64
	years     int
	frequency string
	asJSON    bool
}

func (f *calcFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", 0, "annual interest rate in percent (8 = 8%)")
	cmd.Flags().IntVarP(&f.years, "years", "y", 0, "investment duration in whole years")
	cmd.Flags().StringVarP(&f.frequency, "frequency", "f", "monthly", "compounding: yearly, monthly, weekly, daily or periods per year")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the full report as JSON")
}

func newLumpSumCommand(opts *rootOptions) *cobra.Command {
	var flags calcFlags
	var principal float64

	cmd := &cobra.Command{
		Use:   "lump-sum",
		Short: "Future value of a single deposit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			investments, _ := newServices(cfg, nil, log)

			report, err := investments.CalculateLumpSum(cmd.Context(), domain.LumpSumInput{
				Principal:   principal,
				RatePercent: flags.rate,
				Years:       flags.years,
				Frequency:   domain.NamedFrequency(flags.frequency),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				return writeJSON(out, report)
			}
			printSummary(out, "Principal", report.Result.Frequency, report.Formatted)
			printSeries(out, report.Series, cfg.CurrencySymbol)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&principal, "principal", "p", 0, "initial deposit")
	flags.register(cmd)
	return cmd
}

func newRegularCommand(opts *rootOptions) *cobra.Command {
	var flags calcFlags
	var payment float64

	cmd := &cobra.Command{
		Use:     "regular",
		Aliases: []string{"monthly", "sip"},
		Short:   "Future value of a fixed monthly contribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			investments, _ := newServices(cfg, nil, log)

			report, err := investments.CalculateRegularContribution(cmd.Context(), domain.RegularContributionInput{
				MonthlyPayment: payment,
				RatePercent:    flags.rate,
				Years:          flags.years,
				Frequency:      domain.NamedFrequency(flags.frequency),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				return writeJSON(out, report)
			}
			printSummary(out, "Total contributed", report.Result.Frequency, report.Formatted)
			printSeries(out, report.Series, cfg.CurrencySymbol)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&payment, "payment", "m", 0, "monthly contribution")
	flags.register(cmd)
	return cmd
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var flags calcFlags
	var principal, payment float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a lump sum against a monthly contribution year by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			_, comparison := newServices(cfg, nil, log)

			result, err := comparison.Compare(cmd.Context(), domain.ComparisonInput{
				Principal:      principal,
				MonthlyPayment: payment,
				RatePercent:    flags.rate,
				Years:          flags.years,
				Frequency:      domain.NamedFrequency(flags.frequency),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				return writeJSON(out, result)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Year\tLump sum\tMonthly\tDifference\t")
			for _, p := range result.Points {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
					p.Year,
					service.FormatCurrency(p.LumpSumValue, cfg.CurrencySymbol),
					service.FormatCurrency(p.ContributionValue, cfg.CurrencySymbol),
					service.FormatCurrency(p.Difference, cfg.CurrencySymbol),
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nHigher final value: %s\n", result.Winner)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&principal, "principal", "p", 0, "initial deposit for the lump-sum strategy")
	cmd.Flags().Float64VarP(&payment, "payment", "m", 0, "monthly contribution for the regular strategy")
	flags.register(cmd)
	return cmd
}

func newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the named compounding frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tPER YEAR\tDESCRIPTION")
			for _, m := range domain.CompoundMethods() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Key, m.Frequency, m.Description)
			}
			return tw.Flush()
		},
	}
}

func printSummary(out io.Writer, principalLabel string, freq domain.CompoundFrequency, f domain.FormattedResult) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Compounding:\t%s (%d/year)\n", freq, int(freq))
	fmt.Fprintf(tw, "%s:\t%s\n", principalLabel, f.Principal)
	fmt.Fprintf(tw, "Future value:\t%s\n", f.FutureValue)
	fmt.Fprintf(tw, "Interest:\t%s\n", f.Interest)
	fmt.Fprintf(tw, "Total return:\t%s\n", f.ReturnRate)
	_ = tw.Flush()
	fmt.Fprintln(out)
}

func printSeries(out io.Writer, series []domain.AnnualSnapshot, symbol string) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tValue\tPrincipal\tInterest\t")
	for _, s := range series {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			s.Year,
			service.FormatCurrency(s.Value, symbol),
			service.FormatCurrency(s.PrincipalToDate, symbol),
			service.FormatCurrency(s.InterestToDate, symbol),
		)
	}
	_ = tw.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
