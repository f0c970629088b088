package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invest-agent/calculator"
	"invest-agent/config"
	"invest-agent/logger"
	"invest-agent/repository"
	"invest-agent/service"
)

type rootOptions struct {
	logLevel string
	pretty   bool
}

// NewRootCommand builds the invest-agent command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "invest-agent",
		Short: "Compound interest calculator for lump-sum and monthly investments",
		Long: `invest-agent computes the future value, principal and interest of a
single lump-sum deposit and of a fixed monthly contribution under annual,
monthly, weekly, daily or any custom compounding frequency.

Rates are given in whole percent (8 means 8% per year).

Examples:
  invest-agent lump-sum --principal 10000 --rate 8 --years 10 --frequency yearly
  invest-agent regular --payment 1000 --rate 8 --years 10 --frequency weekly
  invest-agent compare --principal 120000 --payment 1000 --rate 8 --years 10
  invest-agent serve`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "human-readable log output")

	root.AddCommand(
		newServeCommand(opts),
		newLumpSumCommand(opts),
		newRegularCommand(opts),
		newCompareCommand(opts),
		newMethodsCommand(),
	)
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.pretty {
		cfg.LogPretty = true
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)
	return cfg, log, nil
}

func newServices(cfg *config.Config, cache repository.CacheRepository, log zerolog.Logger) (*service.InvestmentService, *service.ComparisonService) {
	calc := &calculator.Calculator{AnnuityShortcut: cfg.AnnuityShortcut}
	investments := service.NewInvestmentService(calc, cache, log, service.Options{
		UseDefaults:    cfg.ApplyDefaults,
		CacheTTL:       cfg.CacheTTL,
		CurrencySymbol: cfg.CurrencySymbol,
	})
	return investments, service.NewComparisonService(investments)
}
