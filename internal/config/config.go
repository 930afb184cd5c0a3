package config

import (
	"os"
	"strconv"

	"quotactl/pkg/types"
)

// Config holds runtime parameters for the tool.
// Zero values mean "unspecified" and fall back to defaults in Default().
type Config struct {
	// SubscriptionID optionally pins az calls to a subscription.
	SubscriptionID string `json:"subscription_id" yaml:"subscription_id" toml:"subscription_id"`
	// AzdEnvName selects the azd environment to write into ("" = current default).
	AzdEnvName string `json:"azd_env_name" yaml:"azd_env_name" toml:"azd_env_name"`
	// Regions are the candidate Azure locations to scan.
	Regions []string `json:"regions" yaml:"regions" toml:"regions"`
	// Catalog is the list of model SKUs the scanner queries quota for.
	Catalog []types.CatalogModel `json:"catalog" yaml:"catalog" toml:"catalog"`
	// EmbedDimensions overrides the built-in model→dimension lookup.
	EmbedDimensions map[string]int `json:"embed_dimensions" yaml:"embed_dimensions" toml:"embed_dimensions"`

	ACAEnvironmentName string `json:"aca_environment_name" yaml:"aca_environment_name" toml:"aca_environment_name"`
	ACAResourceGroup   string `json:"aca_resource_group" yaml:"aca_resource_group" toml:"aca_resource_group"`

	// Endpoints are defaults offered at the URL prompts.
	Endpoints types.ZoneEndpoints `json:"endpoints" yaml:"endpoints" toml:"endpoints"`

	// Selection, when present, drives non-interactive runs.
	Selection *SelectionConfig `json:"selection,omitempty" yaml:"selection,omitempty" toml:"selection,omitempty"`

	Serve ServeConfig `json:"serve" yaml:"serve" toml:"serve"`
}

// SelectionConfig is a pre-made selection for --non-interactive runs.
type SelectionConfig struct {
	Region string `json:"region" yaml:"region" toml:"region"`
	// ChatModel and EmbedModel are quota usage names from the catalog.
	ChatModel     string `json:"chat_model" yaml:"chat_model" toml:"chat_model"`
	ChatCapacity  int    `json:"chat_capacity" yaml:"chat_capacity" toml:"chat_capacity"`
	EmbedModel    string `json:"embed_model" yaml:"embed_model" toml:"embed_model"`
	EmbedCapacity int    `json:"embed_capacity" yaml:"embed_capacity" toml:"embed_capacity"`
}

// ServeConfig configures the availability report server.
type ServeConfig struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// ScanIntervalSec is how often the server re-scans quota (seconds).
	ScanIntervalSec int      `json:"scan_interval_sec" yaml:"scan_interval_sec" toml:"scan_interval_sec"`
	CORSEnabled     bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins     []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// DefaultRegions are the Azure locations commonly offering OpenAI capacity.
var DefaultRegions = []string{
	"eastus", "eastus2", "westus", "westus3",
	"northcentralus", "southcentralus", "canadaeast",
	"swedencentral", "uksouth", "francecentral",
	"japaneast", "australiaeast",
}

// DefaultCatalog covers the gpt-4o chat family and the text-embedding-3 family
// on both Standard and GlobalStandard SKUs.
func DefaultCatalog() []types.CatalogModel {
	return []types.CatalogModel{
		{UsageName: "OpenAI.Standard.gpt-4o", Name: "gpt-4o", Kind: types.KindChat, DeploymentType: "Standard"},
		{UsageName: "OpenAI.GlobalStandard.gpt-4o", Name: "gpt-4o", Kind: types.KindChat, DeploymentType: "GlobalStandard"},
		{UsageName: "OpenAI.Standard.gpt-4o-mini", Name: "gpt-4o-mini", Kind: types.KindChat, DeploymentType: "Standard"},
		{UsageName: "OpenAI.GlobalStandard.gpt-4o-mini", Name: "gpt-4o-mini", Kind: types.KindChat, DeploymentType: "GlobalStandard"},
		{UsageName: "OpenAI.Standard.text-embedding-3-small", Name: "text-embedding-3-small", Kind: types.KindEmbedding, DeploymentType: "Standard"},
		{UsageName: "OpenAI.GlobalStandard.text-embedding-3-small", Name: "text-embedding-3-small", Kind: types.KindEmbedding, DeploymentType: "GlobalStandard"},
		{UsageName: "OpenAI.Standard.text-embedding-3-large", Name: "text-embedding-3-large", Kind: types.KindEmbedding, DeploymentType: "Standard"},
	}
}

// Default returns a ready-to-use configuration.
func Default() Config {
	return Config{
		Regions: append([]string(nil), DefaultRegions...),
		Catalog: DefaultCatalog(),
		Serve: ServeConfig{
			Addr:            ":8080",
			ScanIntervalSec: 300,
		},
	}
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if len(c.Regions) == 0 {
		c.Regions = append([]string(nil), DefaultRegions...)
	}
	if len(c.Catalog) == 0 {
		c.Catalog = DefaultCatalog()
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Serve.ScanIntervalSec <= 0 {
		c.Serve.ScanIntervalSec = 300
	}
}

// ApplyEnv overlays common knobs from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("QUOTACTL_SUBSCRIPTION_ID"); v != "" {
		c.SubscriptionID = v
	}
	if v := os.Getenv("QUOTACTL_AZD_ENV"); v != "" {
		c.AzdEnvName = v
	}
	if v := os.Getenv("QUOTACTL_SERVE_ADDR"); v != "" {
		c.Serve.Addr = v
	}
	if v := os.Getenv("QUOTACTL_SCAN_INTERVAL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Serve.ScanIntervalSec = n
		}
	}
	if v := os.Getenv("ACA_ENVIRONMENT_NAME"); v != "" && c.ACAEnvironmentName == "" {
		c.ACAEnvironmentName = v
	}
	if v := os.Getenv("ACA_RESOURCE_GROUP"); v != "" && c.ACAResourceGroup == "" {
		c.ACAResourceGroup = v
	}
}
