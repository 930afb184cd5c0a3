package azcli

import (
	"context"
	"encoding/json"
	"fmt"

	"quotactl/pkg/types"
)

// AZ wraps the Azure CLI commands the tool depends on.
type AZ struct {
	Runner Runner
	// SubscriptionID, when set, is passed as --subscription on every call.
	SubscriptionID string
}

// UsageList fetches the cognitive services usage/limit records for a region.
func (a AZ) UsageList(ctx context.Context, region string) ([]types.Usage, error) {
	args := []string{"cognitiveservices", "usage", "list", "--location", region, "--output", "json"}
	if a.SubscriptionID != "" {
		args = append(args, "--subscription", a.SubscriptionID)
	}
	out, err := a.Runner.Output(ctx, Cmd{Path: "az", Args: args})
	if err != nil {
		return nil, err
	}
	var usages []types.Usage
	if err := json.Unmarshal(out, &usages); err != nil {
		return nil, fmt.Errorf("decode usage list for %s: %w", region, err)
	}
	return usages, nil
}
