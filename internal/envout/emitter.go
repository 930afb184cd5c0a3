// Package envout freezes a validated selection into the azd environment
// consumed by the provisioning step.
package envout

import (
	"context"
	"sort"
	"strconv"

	"github.com/joho/godotenv"

	"quotactl/pkg/types"
)

// Environment variable names consumed by the infra templates and the backend.
const (
	KeyLocation        = "AZURE_AI_LOCATION"
	KeyChatModel       = "AZURE_AI_CHAT_MODEL_NAME"
	KeyChatCapacity    = "AZURE_AI_CHAT_MODEL_CAPACITY"
	KeyChatDeployType  = "AZURE_AI_CHAT_DEPLOYMENT_TYPE"
	KeyEmbedModel      = "AZURE_AI_EMBED_MODEL_NAME"
	KeyEmbedCapacity   = "AZURE_AI_EMBED_MODEL_CAPACITY"
	KeyEmbedDeployType = "AZURE_AI_EMBED_DEPLOYMENT_TYPE"
	KeyEmbedDimensions = "AZURE_AI_EMBED_DIMENSIONS"
	KeyACAEnvName      = "ACA_ENVIRONMENT_NAME"
	KeyACAResourceGrp  = "ACA_RESOURCE_GROUP"
	KeyRecordability   = "IRIS_ZONE1_RECORDABILITY_URL"
	KeyECFR            = "IRIS_ZONE1_ECFR_URL"
	KeyAnalytics       = "IRIS_ZONE1_ANALYTICS_URL"
	KeyIncidents       = "IRIS_ZONE2_INCIDENTS_URL"
	KeyDocuments       = "IRIS_ZONE2_DOCUMENTS_URL"
)

const defaultEmbedDimensions = 1536

// builtinDimensions maps embedding model names to their vector width.
var builtinDimensions = map[string]int{
	"text-embedding-3-large": 3072,
	"text-embedding-3-small": 1536,
}

// EmbedDimensions resolves the vector width for an embedding model name.
// Overrides win over the builtin table; unknown models get the default 1536.
func EmbedDimensions(model string, overrides map[string]int) int {
	if n, ok := overrides[model]; ok && n > 0 {
		return n
	}
	if n, ok := builtinDimensions[model]; ok {
		return n
	}
	return defaultEmbedDimensions
}

// Vars derives the full variable set for a completed selection.
// Pure and deterministic; EmbedDimensions on the selection must be resolved
// by the caller (see Finalize).
func Vars(sel *types.Selection) map[string]string {
	return map[string]string{
		KeyLocation:        sel.Region,
		KeyChatModel:       sel.ChatModel.Name,
		KeyChatCapacity:    strconv.Itoa(sel.ChatCapacity),
		KeyChatDeployType:  sel.ChatModel.DeploymentType,
		KeyEmbedModel:      sel.EmbedModel.Name,
		KeyEmbedCapacity:   strconv.Itoa(sel.EmbedCapacity),
		KeyEmbedDeployType: sel.EmbedModel.DeploymentType,
		KeyEmbedDimensions: strconv.Itoa(sel.EmbedDimensions),
		KeyACAEnvName:      sel.ACAEnvironmentName,
		KeyACAResourceGrp:  sel.ACAResourceGroup,
		KeyRecordability:   sel.Endpoints.Recordability,
		KeyECFR:            sel.Endpoints.ECFR,
		KeyAnalytics:       sel.Endpoints.Analytics,
		KeyIncidents:       sel.Endpoints.Incidents,
		KeyDocuments:       sel.Endpoints.Documents,
	}
}

// Finalize fills the derived fields on a selection.
func Finalize(sel *types.Selection, dimensionOverrides map[string]int) {
	sel.EmbedDimensions = EmbedDimensions(sel.EmbedModel.Name, dimensionOverrides)
}

// EnvSetter writes one key/value into the target environment store.
type EnvSetter interface {
	EnvSet(ctx context.Context, key, value string) error
}

// Emit writes every derived variable through the setter in sorted key order,
// so repeated runs produce identical azd history.
func Emit(ctx context.Context, setter EnvSetter, sel *types.Selection) error {
	vars := Vars(sel)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := setter.EnvSet(ctx, k, vars[k]); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot writes the variable set as a dotenv file.
func WriteSnapshot(path string, sel *types.Selection) error {
	return godotenv.Write(Vars(sel), path)
}
