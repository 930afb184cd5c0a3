// Package cli wires the quotactl command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quotactl/internal/azcli"
	"quotactl/internal/config"
)

type options struct {
	configPath     string
	logLevel       string
	nonInteractive bool
	subscription   string
	azdEnv         string

	log zerolog.Logger
}

// Execute runs the root command. Errors exit with status 1.
func Execute() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildRootCmd constructs the Cobra command tree.
func buildRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "quotactl",
		Short:         "Scan Azure OpenAI quota and configure the deployment environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (.yaml|.json|.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail on invalid selection instead of prompting")
	root.PersistentFlags().StringVar(&opts.subscription, "subscription", "", "Azure subscription id for az calls")
	root.PersistentFlags().StringVar(&opts.azdEnv, "azd-env", "", "azd environment name to write into")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		opts.log = newLogger(opts.logLevel)
	}

	root.AddCommand(newScanCmd(opts))
	root.AddCommand(newConfigureCmd(opts))
	root.AddCommand(newEnvCmd(opts))
	root.AddCommand(newServeCmd(opts))
	return root
}

// loadConfig merges the config file (or defaults) with the persistent flags.
func (o *options) loadConfig() (config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.subscription != "" {
		cfg.SubscriptionID = o.subscription
	}
	if o.azdEnv != "" {
		cfg.AzdEnvName = o.azdEnv
	}
	return cfg, nil
}

func (o *options) az(cfg config.Config) azcli.AZ {
	return azcli.AZ{Runner: azcli.ExecRunner{}, SubscriptionID: cfg.SubscriptionID}
}

func (o *options) azd(cfg config.Config) azcli.AZD {
	return azcli.AZD{Runner: azcli.ExecRunner{}, EnvName: cfg.AzdEnvName}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(lvl).With().Timestamp().Logger()
}
