package selector

import (
	"bytes"
	"strings"
	"testing"

	"quotactl/pkg/types"
)

func testReport() *types.AvailabilityReport {
	chat := types.CatalogModel{UsageName: "OpenAI.Standard.gpt-4o", Name: "gpt-4o", Kind: types.KindChat, DeploymentType: "Standard"}
	embed := types.CatalogModel{UsageName: "OpenAI.Standard.text-embedding-3-small", Name: "text-embedding-3-small", Kind: types.KindEmbedding, DeploymentType: "Standard"}
	return &types.AvailabilityReport{
		Candidates: []types.RegionAvailability{
			{
				Region: "eastus",
				Models: []types.ModelAvailability{
					{Model: chat, Used: 20, Limit: 30, Available: 10},
					{Model: embed, Used: 0, Limit: 5, Available: 5},
				},
			},
		},
	}
}

// runSelect feeds scripted answers, one per line, through the full flow.
func runSelect(t *testing.T, answers ...string) (*types.Selection, string, error) {
	t.Helper()
	var out bytes.Buffer
	p := New(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out)
	sel, err := p.Select(testReport())
	return sel, out.String(), err
}

func TestSelect_HappyPath(t *testing.T) {
	sel, _, err := runSelect(t,
		"eastus",
		"OpenAI.Standard.gpt-4o", "10",
		"OpenAI.Standard.text-embedding-3-small", "5",
	)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Region != "eastus" || sel.ChatCapacity != 10 || sel.EmbedCapacity != 5 {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if sel.ChatModel.Name != "gpt-4o" || sel.EmbedModel.Name != "text-embedding-3-small" {
		t.Fatalf("unexpected models: %+v", sel)
	}
}

func TestSelect_InvalidRegionReprompts(t *testing.T) {
	sel, out, err := runSelect(t,
		"mars", "eastus",
		"OpenAI.Standard.gpt-4o", "1",
		"OpenAI.Standard.text-embedding-3-small", "1",
	)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Region != "eastus" {
		t.Fatalf("unexpected region: %q", sel.Region)
	}
	if !strings.Contains(out, `"mars" is not a selectable region`) {
		t.Fatalf("missing rejection message, got: %s", out)
	}
}

func TestSelect_CapacityAboveAvailableReprompts(t *testing.T) {
	// embedding has available=5: 6 must be rejected, 5 accepted.
	sel, out, err := runSelect(t,
		"eastus",
		"OpenAI.Standard.gpt-4o", "10",
		"OpenAI.Standard.text-embedding-3-small", "6", "5",
	)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.EmbedCapacity != 5 {
		t.Fatalf("expected capacity 5, got %d", sel.EmbedCapacity)
	}
	if !strings.Contains(out, "between 1 and 5") {
		t.Fatalf("missing bound message, got: %s", out)
	}
}

func TestSelect_ZeroAndJunkCapacityReprompt(t *testing.T) {
	sel, _, err := runSelect(t,
		"eastus",
		"OpenAI.Standard.gpt-4o", "0", "-3", "lots", "10",
		"OpenAI.Standard.text-embedding-3-small", "5",
	)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.ChatCapacity != 10 {
		t.Fatalf("expected capacity 10, got %d", sel.ChatCapacity)
	}
}

func TestSelect_EOFAborts(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("eastus\n"), &out)
	if _, err := p.Select(testReport()); err == nil {
		t.Fatalf("expected EOF error when input runs dry")
	}
}

func TestSelect_EmptyReportFails(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Select(&types.AvailabilityReport{})
	if err == nil || !IsInvalidSelection(err) {
		t.Fatalf("expected invalid selection error, got %v", err)
	}
}

func TestValidate_AcceptsValidSelection(t *testing.T) {
	sel, err := Validate(testReport(), "eastus", "OpenAI.Standard.gpt-4o", 10, "OpenAI.Standard.text-embedding-3-small", 5)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if sel.ChatCapacity != 10 || sel.EmbedCapacity != 5 {
		t.Fatalf("unexpected selection: %+v", sel)
	}
}

func TestValidate_Rejections(t *testing.T) {
	report := testReport()
	cases := []struct {
		name                string
		region, chat, embed string
		chatCap, embedCap   int
	}{
		{"unknown region", "mars", "OpenAI.Standard.gpt-4o", "OpenAI.Standard.text-embedding-3-small", 1, 1},
		{"unknown chat model", "eastus", "OpenAI.Standard.gpt-5", "OpenAI.Standard.text-embedding-3-small", 1, 1},
		{"embedding model as chat", "eastus", "OpenAI.Standard.text-embedding-3-small", "OpenAI.Standard.text-embedding-3-small", 1, 1},
		{"chat capacity zero", "eastus", "OpenAI.Standard.gpt-4o", "OpenAI.Standard.text-embedding-3-small", 0, 1},
		{"chat capacity above available", "eastus", "OpenAI.Standard.gpt-4o", "OpenAI.Standard.text-embedding-3-small", 11, 1},
		{"embed capacity above available", "eastus", "OpenAI.Standard.gpt-4o", "OpenAI.Standard.text-embedding-3-small", 10, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Validate(report, c.region, c.chat, c.chatCap, c.embed, c.embedCap)
			if err == nil || !IsInvalidSelection(err) {
				t.Fatalf("expected invalid selection, got %v", err)
			}
		})
	}
}
