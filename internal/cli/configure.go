package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotactl/internal/config"
	"quotactl/internal/envout"
	"quotactl/internal/quota"
	"quotactl/internal/selector"
	"quotactl/pkg/types"
)

func newConfigureCmd(opts *options) *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Scan quota, select region/models/capacity and write the azd environment",
		Example: "  quotactl configure\n" +
			"  quotactl configure --non-interactive -c deploy.yaml\n" +
			"  quotactl configure --env-file .azure/selection.env",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			scanner := quota.NewScanner(opts.az(cfg), cfg.Catalog, opts.log)
			report, err := scanner.Scan(cmd.Context(), cfg.Regions)
			if err != nil {
				return err
			}

			var sel *types.Selection
			if opts.nonInteractive {
				sel, err = selectionFromConfig(report, cfg)
			} else {
				sel, err = selectionFromPrompts(report, cfg)
			}
			if err != nil {
				return err
			}
			envout.Finalize(sel, cfg.EmbedDimensions)

			if err := envout.Emit(cmd.Context(), opts.azd(cfg), sel); err != nil {
				return err
			}
			if envFile != "" {
				if err := envout.WriteSnapshot(envFile, sel); err != nil {
					return err
				}
			}
			opts.log.Info().
				Str("region", sel.Region).
				Str("chat_model", sel.ChatModel.Name).
				Str("embed_model", sel.EmbedModel.Name).
				Msg("environment configured")
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "Also write the selection as a dotenv snapshot")
	return cmd
}

// selectionFromPrompts runs the interactive flow on the process terminal.
func selectionFromPrompts(report *types.AvailabilityReport, cfg config.Config) (*types.Selection, error) {
	p := selector.New(os.Stdin, os.Stdout)
	sel, err := p.Select(report)
	if err != nil {
		return nil, err
	}
	sel.ACAEnvironmentName, sel.ACAResourceGroup, err = p.PromptEnvironment(cfg.ACAEnvironmentName, cfg.ACAResourceGroup)
	if err != nil {
		return nil, err
	}
	sel.Endpoints, err = p.PromptEndpoints(cfg.Endpoints)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// selectionFromConfig validates the config-supplied selection against the
// scan. Any invalid value is a hard error so automation never hangs.
func selectionFromConfig(report *types.AvailabilityReport, cfg config.Config) (*types.Selection, error) {
	sc := cfg.Selection
	if sc == nil {
		return nil, fmt.Errorf("non-interactive run requires a selection block in the config file")
	}
	sel, err := selector.Validate(report, sc.Region, sc.ChatModel, sc.ChatCapacity, sc.EmbedModel, sc.EmbedCapacity)
	if err != nil {
		return nil, err
	}
	sel.ACAEnvironmentName = cfg.ACAEnvironmentName
	sel.ACAResourceGroup = cfg.ACAResourceGroup
	if sel.ACAEnvironmentName == "" || sel.ACAResourceGroup == "" {
		return nil, fmt.Errorf("non-interactive run requires aca_environment_name and aca_resource_group")
	}
	sel.Endpoints, err = endpointsFromConfig(cfg.Endpoints)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

func endpointsFromConfig(eps types.ZoneEndpoints) (types.ZoneEndpoints, error) {
	if eps.ECFR == "" {
		eps.ECFR = selector.DeriveECFR(eps.Recordability)
	}
	for name, u := range map[string]string{
		"recordability": eps.Recordability,
		"ecfr":          eps.ECFR,
		"analytics":     eps.Analytics,
		"incidents":     eps.Incidents,
		"documents":     eps.Documents,
	} {
		if u == "" {
			return eps, fmt.Errorf("endpoint %s is required in non-interactive runs", name)
		}
		if err := selector.ValidateURL(u); err != nil {
			return eps, fmt.Errorf("endpoint %s: %w", name, err)
		}
	}
	return eps, nil
}
