package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecc/internal/config"
	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/logging"
)

// env is shared by all subcommands once the root pre-run has loaded the
// configuration.
type env struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Config
	curve      curves.Curve
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "ecc",
		Short:         "Prime-field elliptic curve key derivation and agreement",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configFile, "config", "", "path to a YAML config file")
	flags.String("curve", config.CurveSecp256k1, "curve name: secp256k1 or custom")
	flags.String("backend", config.BackendGeneric, "arithmetic backend: generic or decred")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "emit JSON log records")

	root.AddCommand(
		newParamsCmd(e),
		newKeygenCmd(e),
		newExchangeCmd(e),
		newMultiplyCmd(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	v, err := config.NewViper(e.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	bindings := map[string]string{
		"curve":     "curve",
		"backend":   "backend",
		"log.level": "log-level",
		"log.json":  "log-json",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag %s", name)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	curve, err := cfg.BuildCurve()
	if err != nil {
		return errors.WithMessage(err, "building curve")
	}
	logger.Debug("curve ready",
		zap.String("curve", curve.Params().Name),
		zap.String("backend", cfg.Backend),
	)

	e.v, e.cfg, e.curve, e.logger = v, cfg, curve, logger
	return nil
}
