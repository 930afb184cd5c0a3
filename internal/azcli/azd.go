package azcli

import "context"

// AZD wraps the Azure Developer CLI environment commands.
type AZD struct {
	Runner Runner
	// EnvName selects the azd environment; empty uses the current default.
	EnvName string
}

// EnvSet writes one key/value into the azd environment.
func (d AZD) EnvSet(ctx context.Context, key, value string) error {
	args := []string{"env", "set", key, value}
	if d.EnvName != "" {
		args = append(args, "-e", d.EnvName)
	}
	return d.Runner.Run(ctx, Cmd{Path: "azd", Args: args})
}
