package selector

import (
	"bytes"
	"strings"
	"testing"

	"quotactl/pkg/types"
)

func TestDeriveECFR(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{
			"https://ca-svo-recordability-dev.kindcliff-8012a32c.centralus.azurecontainerapps.io",
			"https://ca-svo-ecfr-dev.kindcliff-8012a32c.centralus.azurecontainerapps.io",
		},
		{"https://recordability.internal", "https://ecfr.internal"},
		{"https://ca-svo-other-dev.example.io", ""}, // no service segment
		{"not a url", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := DeriveECFR(c.in); got != c.want {
			t.Fatalf("DeriveECFR(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPromptEndpoints_DerivesECFR(t *testing.T) {
	input := strings.Join([]string{
		"https://ca-svo-recordability-dev.example.io",
		"https://ca-svo-analytics-dev.example.io",
		"https://ca-svo-incidents-dev.example.io",
		"https://ca-svo-documents-dev.example.io",
	}, "\n") + "\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)
	eps, err := p.PromptEndpoints(types.ZoneEndpoints{})
	if err != nil {
		t.Fatalf("prompt endpoints: %v", err)
	}
	if eps.ECFR != "https://ca-svo-ecfr-dev.example.io" {
		t.Fatalf("ecfr not derived: %q", eps.ECFR)
	}
	if eps.Documents != "https://ca-svo-documents-dev.example.io" {
		t.Fatalf("unexpected documents url: %q", eps.Documents)
	}
}

func TestPromptEndpoints_FallsBackToECFRPrompt(t *testing.T) {
	input := strings.Join([]string{
		"https://zone1.example.io", // not derivable
		"https://analytics.example.io",
		"https://incidents.example.io",
		"https://documents.example.io",
		"https://ecfr.example.io",
	}, "\n") + "\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)
	eps, err := p.PromptEndpoints(types.ZoneEndpoints{})
	if err != nil {
		t.Fatalf("prompt endpoints: %v", err)
	}
	if eps.ECFR != "https://ecfr.example.io" {
		t.Fatalf("expected prompted ecfr, got %q", eps.ECFR)
	}
}

func TestPromptEndpoints_RejectsBadURLThenAccepts(t *testing.T) {
	input := strings.Join([]string{
		"nope",
		"ftp://recordability.example.io",
		"https://recordability.example.io",
		"https://analytics.example.io",
		"https://incidents.example.io",
		"https://documents.example.io",
	}, "\n") + "\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)
	eps, err := p.PromptEndpoints(types.ZoneEndpoints{})
	if err != nil {
		t.Fatalf("prompt endpoints: %v", err)
	}
	if eps.Recordability != "https://recordability.example.io" {
		t.Fatalf("unexpected recordability url: %q", eps.Recordability)
	}
	if !strings.Contains(out.String(), "not an absolute http(s) URL") {
		t.Fatalf("missing rejection message: %s", out.String())
	}
}

func TestPromptEndpoints_EmptyInputUsesDefault(t *testing.T) {
	defaults := types.ZoneEndpoints{
		Recordability: "https://recordability.example.io",
		Analytics:     "https://analytics.example.io",
		Incidents:     "https://incidents.example.io",
		Documents:     "https://documents.example.io",
	}
	input := "\n\n\n\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)
	eps, err := p.PromptEndpoints(defaults)
	if err != nil {
		t.Fatalf("prompt endpoints: %v", err)
	}
	if eps.Analytics != defaults.Analytics {
		t.Fatalf("default not applied: %q", eps.Analytics)
	}
	if eps.ECFR != "https://ecfr.example.io" {
		t.Fatalf("ecfr not derived from defaulted recordability: %q", eps.ECFR)
	}
}

func TestPromptEnvironment(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\nrg-custom\n"), &out)
	name, group, err := p.PromptEnvironment("cae-svo-dev", "rg-svo-dev")
	if err != nil {
		t.Fatalf("prompt environment: %v", err)
	}
	if name != "cae-svo-dev" {
		t.Fatalf("default name not applied: %q", name)
	}
	if group != "rg-custom" {
		t.Fatalf("unexpected group: %q", group)
	}
}
