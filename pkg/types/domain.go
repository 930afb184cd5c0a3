package types

// ModelKind classifies a catalog entry by what the deployment is used for.
type ModelKind string

const (
	// KindChat marks completion/chat models (e.g. gpt-4o).
	KindChat ModelKind = "chat"
	// KindEmbedding marks embedding models (e.g. text-embedding-3-small).
	KindEmbedding ModelKind = "embedding"
)

// CatalogModel describes one deployable model SKU the scanner knows about.
type CatalogModel struct {
	// UsageName is the quota usage name reported by the usages API.
	// example: OpenAI.Standard.gpt-4o
	UsageName string `json:"usage_name" yaml:"usage_name" toml:"usage_name" example:"OpenAI.Standard.gpt-4o"`
	// Name is the bare model name used for the deployment.
	// example: gpt-4o
	Name string `json:"name" yaml:"name" toml:"name" example:"gpt-4o"`
	// Kind is "chat" or "embedding".
	// example: chat
	Kind ModelKind `json:"kind" yaml:"kind" toml:"kind" example:"chat"`
	// DeploymentType is the SKU tier, "Standard" or "GlobalStandard".
	// example: Standard
	DeploymentType string `json:"deployment_type" yaml:"deployment_type" toml:"deployment_type" example:"Standard"`
}

// UsageName is the nested name object in a usage record.
type UsageName struct {
	// Value is the quota usage identifier.
	// example: OpenAI.Standard.gpt-4o
	Value string `json:"value" example:"OpenAI.Standard.gpt-4o"`
}

// Usage is a single usage/limit record as returned by
// `az cognitiveservices usage list`.
type Usage struct {
	Name UsageName `json:"name"`
	// CurrentValue is the capacity already consumed in the region.
	// example: 8
	CurrentValue float64 `json:"currentValue" example:"8"`
	// Limit is the subscription quota ceiling in the region.
	// example: 30
	Limit float64 `json:"limit" example:"30"`
}

// ModelAvailability is the computed headroom for one catalog model in one region.
type ModelAvailability struct {
	Model CatalogModel `json:"model"`
	// Used is the consumed capacity, truncated to integer.
	// example: 8
	Used int `json:"used" example:"8"`
	// Limit is the quota ceiling, truncated to integer.
	// example: 30
	Limit int `json:"limit" example:"30"`
	// Available is limit minus used, never negative.
	// example: 22
	Available int `json:"available" example:"22"`
}

// RegionAvailability lists availability for every catalog model the region offers.
type RegionAvailability struct {
	// Region is the Azure location identifier.
	// example: eastus
	Region string              `json:"region" example:"eastus"`
	Models []ModelAvailability `json:"models"`
}

// Model returns the availability entry for a usage name, if the region offers it.
func (r RegionAvailability) Model(usageName string) (ModelAvailability, bool) {
	for _, m := range r.Models {
		if m.Model.UsageName == usageName {
			return m, true
		}
	}
	return ModelAvailability{}, false
}

// Kind filters the region's models by kind, keeping only positive availability.
func (r RegionAvailability) Kind(kind ModelKind) []ModelAvailability {
	var out []ModelAvailability
	for _, m := range r.Models {
		if m.Model.Kind == kind && m.Available > 0 {
			out = append(out, m)
		}
	}
	return out
}

// ZoneEndpoints holds the external zone service URLs wired into the backend.
// Zone 1 services handle non-PII traffic, Zone 2 services handle PII.
type ZoneEndpoints struct {
	Recordability string `json:"recordability" yaml:"recordability" toml:"recordability"`
	ECFR          string `json:"ecfr" yaml:"ecfr" toml:"ecfr"`
	Analytics     string `json:"analytics" yaml:"analytics" toml:"analytics"`
	Incidents     string `json:"incidents" yaml:"incidents" toml:"incidents"`
	Documents     string `json:"documents" yaml:"documents" toml:"documents"`
}

// Selection is a validated deployment choice, frozen before emission.
type Selection struct {
	// Region is the chosen Azure location.
	// example: eastus
	Region    string       `json:"region" example:"eastus"`
	ChatModel CatalogModel `json:"chat_model"`
	// ChatCapacity is the deployment capacity for the chat model, in 1K TPM units.
	// example: 10
	ChatCapacity int          `json:"chat_capacity" example:"10"`
	EmbedModel   CatalogModel `json:"embed_model"`
	// EmbedCapacity is the deployment capacity for the embedding model.
	// example: 5
	EmbedCapacity int `json:"embed_capacity" example:"5"`
	// EmbedDimensions is derived from the embedding model name.
	// example: 1536
	EmbedDimensions int `json:"embed_dimensions" example:"1536"`
	// ACAEnvironmentName is the Container Apps environment hosting the zone services.
	// example: cae-svo-dev
	ACAEnvironmentName string `json:"aca_environment_name" example:"cae-svo-dev"`
	// ACAResourceGroup is the resource group of that environment.
	// example: rg-svo-dev
	ACAResourceGroup string        `json:"aca_resource_group" example:"rg-svo-dev"`
	Endpoints        ZoneEndpoints `json:"endpoints"`
}
