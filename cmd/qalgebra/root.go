package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qalgebra/internal/config"
	"github.com/katalvlaran/qalgebra/internal/logger"
	"github.com/katalvlaran/qalgebra/quantum"
)

// app carries the state resolved once per invocation by the root command.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	opts   []quantum.Option
	asJSON bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	var (
		envFile   string
		rtol      float64
		atol      float64
		exact     bool
		logLevel  string
		logPretty bool
	)

	rootCmd := &cobra.Command{
		Use:          "qalgebra",
		Short:        "Bra-ket algebra on the command line",
		Long:         `Evaluate Ket, Bra and Operator expressions: application, scalar arithmetic, adjoints and commutators.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("rtol") {
				cfg.RelTol = rtol
			}
			if flags.Changed("atol") {
				cfg.AbsTol = atol
			}
			if flags.Changed("exact") {
				cfg.Exact = exact
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-pretty") {
				cfg.LogPretty = logPretty
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.log = logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: cmd.ErrOrStderr()})
			logger.SetGlobalLogger(a.log)
			a.opts = []quantum.Option{quantum.WithTolerance(cfg.RelTol, cfg.AbsTol)}
			if cfg.Exact {
				a.opts = append(a.opts, quantum.WithExactEquality())
			}
			a.log.Debug().
				Float64("rtol", cfg.RelTol).
				Float64("atol", cfg.AbsTol).
				Bool("exact", cfg.Exact).
				Str("command", cmd.Name()).
				Msg("configuration resolved")

			return nil
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "Environment file to load instead of ./.env")
	pf.Float64Var(&rtol, "rtol", quantum.DefaultRelTol, "Relative tolerance for approximate comparisons")
	pf.Float64Var(&atol, "atol", quantum.DefaultAbsTol, "Absolute tolerance for approximate comparisons")
	pf.BoolVar(&exact, "exact", false, "Compare A·A† with the identity exactly in unitarity checks")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug/info/warn/error/disabled)")
	pf.BoolVar(&logPretty, "log-pretty", true, "Human-readable log output")
	pf.BoolVar(&a.asJSON, "json", false, "Print matrices and scalars as JSON")

	rootCmd.AddCommand(
		newApplyCmd(a),
		newScalarCmd(a, "mul", "Multiply a Ket, Bra or Operator by a scalar", quantum.Mul),
		newScalarCmd(a, "div", "Divide a Ket or Bra by a scalar", quantum.Div),
		newScalarCmd(a, "pow", "Raise every amplitude of a Ket or Bra to a real power", quantum.Pow),
		newDaggerCmd(a),
		newCheckCmd(a),
		newCommutatorCmd(a),
		newExpectCmd(a),
		newConvertCmd(a),
	)

	return rootCmd
}
