package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"quotactl/internal/config"
	"quotactl/internal/envout"
	"quotactl/pkg/types"
)

func newEnvCmd(opts *options) *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect or export the variables derived from a selection file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("env requires a subcommand: show|export")
		},
	}

	show := &cobra.Command{
		Use:     "show",
		Short:   "Print the variables the selection in the config file would emit",
		Example: "  quotactl env show -c deploy.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := opts.offlineSelection()
			if err != nil {
				return err
			}
			vars := envout.Vars(sel)
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, vars[k])
			}
			return nil
		},
	}

	var out string
	export := &cobra.Command{
		Use:     "export",
		Short:   "Write the selection as a dotenv file without touching azd",
		Example: "  quotactl env export -c deploy.yaml --out selection.env",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			sel, err := opts.offlineSelection()
			if err != nil {
				return err
			}
			return envout.WriteSnapshot(out, sel)
		},
	}
	export.Flags().StringVar(&out, "out", "", "Destination dotenv file")

	envCmd.AddCommand(show, export)
	return envCmd
}

// offlineSelection materializes the config's selection block without a quota
// scan. Capacity bounds cannot be checked offline; membership in the catalog
// still is.
func (o *options) offlineSelection() (*types.Selection, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	sel, err := selectionFromCatalog(cfg)
	if err != nil {
		return nil, err
	}
	envout.Finalize(sel, cfg.EmbedDimensions)
	return sel, nil
}

func selectionFromCatalog(cfg config.Config) (*types.Selection, error) {
	sc := cfg.Selection
	if sc == nil {
		return nil, fmt.Errorf("config file has no selection block")
	}
	chat, ok := catalogLookup(cfg.Catalog, sc.ChatModel, types.KindChat)
	if !ok {
		return nil, fmt.Errorf("chat model %q is not in the catalog", sc.ChatModel)
	}
	embed, ok := catalogLookup(cfg.Catalog, sc.EmbedModel, types.KindEmbedding)
	if !ok {
		return nil, fmt.Errorf("embedding model %q is not in the catalog", sc.EmbedModel)
	}
	if sc.Region == "" || sc.ChatCapacity <= 0 || sc.EmbedCapacity <= 0 {
		return nil, fmt.Errorf("selection block needs region and positive capacities")
	}
	eps, err := endpointsFromConfig(cfg.Endpoints)
	if err != nil {
		return nil, err
	}
	return &types.Selection{
		Region:             sc.Region,
		ChatModel:          chat,
		ChatCapacity:       sc.ChatCapacity,
		EmbedModel:         embed,
		EmbedCapacity:      sc.EmbedCapacity,
		ACAEnvironmentName: cfg.ACAEnvironmentName,
		ACAResourceGroup:   cfg.ACAResourceGroup,
		Endpoints:          eps,
	}, nil
}

func catalogLookup(catalog []types.CatalogModel, usageName string, kind types.ModelKind) (types.CatalogModel, bool) {
	for _, m := range catalog {
		if m.UsageName == usageName && m.Kind == kind {
			return m, true
		}
	}
	return types.CatalogModel{}, false
}
