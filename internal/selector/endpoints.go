package selector

import (
	"fmt"
	"net/url"
	"strings"

	"quotactl/pkg/types"
)

// DeriveECFR derives the eCFR service URL from the recordability one. All
// zone services share a Container Apps environment domain and the
// ca-<app>-<service>-<env> host naming scheme, so swapping the service
// segment of the first host label yields the sibling URL. Returns "" when the
// host does not follow the scheme.
func DeriveECFR(recordabilityURL string) string {
	u, err := url.Parse(recordabilityURL)
	if err != nil || u.Host == "" {
		return ""
	}
	labels := strings.SplitN(u.Host, ".", 2)
	if !strings.Contains(labels[0], "recordability") {
		return ""
	}
	labels[0] = strings.Replace(labels[0], "recordability", "ecfr", 1)
	u.Host = strings.Join(labels, ".")
	return u.String()
}

// PromptEndpoints collects the zone service URLs. Four are prompted; the eCFR
// URL is derived from the recordability URL when possible, otherwise prompted
// as a fallback.
func (p *Prompter) PromptEndpoints(defaults types.ZoneEndpoints) (types.ZoneEndpoints, error) {
	var eps types.ZoneEndpoints
	var err error
	if eps.Recordability, err = p.promptURL("Zone 1 recordability service URL", defaults.Recordability); err != nil {
		return eps, err
	}
	if eps.Analytics, err = p.promptURL("Zone 1 analytics service URL", defaults.Analytics); err != nil {
		return eps, err
	}
	if eps.Incidents, err = p.promptURL("Zone 2 incidents service URL", defaults.Incidents); err != nil {
		return eps, err
	}
	if eps.Documents, err = p.promptURL("Zone 2 documents service URL", defaults.Documents); err != nil {
		return eps, err
	}
	if eps.ECFR = DeriveECFR(eps.Recordability); eps.ECFR == "" {
		if eps.ECFR, err = p.promptURL("Zone 1 eCFR service URL", defaults.ECFR); err != nil {
			return eps, err
		}
	}
	return eps, nil
}

// PromptEnvironment collects the Container Apps environment name and its
// resource group.
func (p *Prompter) PromptEnvironment(defName, defGroup string) (name, group string, err error) {
	if name, err = p.askString("Container Apps environment name", defName); err != nil {
		return "", "", err
	}
	if group, err = p.askString("Container Apps resource group", defGroup); err != nil {
		return "", "", err
	}
	return name, group, nil
}

func (p *Prompter) promptURL(label, def string) (string, error) {
	for {
		answer, err := p.askString(label, def)
		if err != nil {
			return "", err
		}
		if err := ValidateURL(answer); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return answer, nil
	}
}

// ValidateURL accepts absolute http(s) URLs only.
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidSelection("url", fmt.Sprintf("%q is not an absolute http(s) URL", s))
	}
	return nil
}
