package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quotactl/pkg/types"
)

// Prompter runs the interactive selection flow over a terminal-like stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a Prompter reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Select walks the strictly linear flow: region, chat model, chat capacity,
// embedding model, embedding capacity. Invalid answers re-prompt; there is no
// backtracking. Input EOF aborts with an error.
func (p *Prompter) Select(report *types.AvailabilityReport) (*types.Selection, error) {
	if len(report.Candidates) == 0 {
		return nil, ErrInvalidSelection("region", "no region has both chat and embedding quota available")
	}

	p.printAvailability(report)

	region, err := p.promptRegion(report)
	if err != nil {
		return nil, err
	}
	ra, _ := report.Region(region)

	chat, err := p.promptModel("chat model", ra.Kind(types.KindChat))
	if err != nil {
		return nil, err
	}
	chatCap, err := p.promptCapacity("chat capacity", chat.Available)
	if err != nil {
		return nil, err
	}
	embed, err := p.promptModel("embedding model", ra.Kind(types.KindEmbedding))
	if err != nil {
		return nil, err
	}
	embedCap, err := p.promptCapacity("embedding capacity", embed.Available)
	if err != nil {
		return nil, err
	}

	return &types.Selection{
		Region:        region,
		ChatModel:     chat.Model,
		ChatCapacity:  chatCap,
		EmbedModel:    embed.Model,
		EmbedCapacity: embedCap,
	}, nil
}

func (p *Prompter) printAvailability(report *types.AvailabilityReport) {
	fmt.Fprintln(p.out, "Regions with available quota:")
	for _, ra := range report.Candidates {
		fmt.Fprintf(p.out, "  %s\n", ra.Region)
		for _, m := range ra.Models {
			fmt.Fprintf(p.out, "    %-50s available=%d (used %d of %d)\n",
				m.Model.UsageName, m.Available, m.Used, m.Limit)
		}
	}
}

func (p *Prompter) promptRegion(report *types.AvailabilityReport) (string, error) {
	ids := report.RegionIDs()
	for {
		answer, err := p.ask(fmt.Sprintf("Region [%s]: ", strings.Join(ids, ", ")))
		if err != nil {
			return "", err
		}
		if _, ok := report.Region(answer); ok {
			return answer, nil
		}
		fmt.Fprintf(p.out, "%q is not a selectable region\n", answer)
	}
}

func (p *Prompter) promptModel(label string, options []types.ModelAvailability) (types.ModelAvailability, error) {
	names := make([]string, len(options))
	for i, m := range options {
		names[i] = m.Model.UsageName
	}
	for {
		answer, err := p.ask(fmt.Sprintf("Select %s [%s]: ", label, strings.Join(names, ", ")))
		if err != nil {
			return types.ModelAvailability{}, err
		}
		for _, m := range options {
			if answer == m.Model.UsageName {
				return m, nil
			}
		}
		fmt.Fprintf(p.out, "%q is not an available %s\n", answer, label)
	}
}

func (p *Prompter) promptCapacity(label string, available int) (int, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("Enter %s (1-%d): ", label, available))
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n <= 0 || n > available {
			fmt.Fprintf(p.out, "%s must be a whole number between 1 and %d\n", label, available)
			continue
		}
		return n, nil
	}
}

// askString prompts for a non-empty free-form value, offering a default.
func (p *Prompter) askString(label, def string) (string, error) {
	for {
		prompt := label
		if def != "" {
			prompt = fmt.Sprintf("%s [%s]", label, def)
		}
		answer, err := p.ask(prompt + ": ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			if def != "" {
				return def, nil
			}
			fmt.Fprintf(p.out, "%s is required\n", label)
			continue
		}
		return answer, nil
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Validate builds a Selection from pre-supplied values, rejecting anything the
// interactive flow would re-prompt on. Used by non-interactive runs, which
// must fail fast instead of looping.
func Validate(report *types.AvailabilityReport, region, chatUsage string, chatCap int, embedUsage string, embedCap int) (*types.Selection, error) {
	ra, ok := report.Region(region)
	if !ok {
		return nil, ErrInvalidSelection("region", fmt.Sprintf("%q is not a selectable region", region))
	}
	chat, ok := ra.Model(chatUsage)
	if !ok || chat.Model.Kind != types.KindChat || chat.Available <= 0 {
		return nil, ErrInvalidSelection("chat model", fmt.Sprintf("%q is not available in %s", chatUsage, region))
	}
	if chatCap <= 0 || chatCap > chat.Available {
		return nil, ErrInvalidSelection("chat capacity", fmt.Sprintf("%d is outside 1-%d", chatCap, chat.Available))
	}
	embed, ok := ra.Model(embedUsage)
	if !ok || embed.Model.Kind != types.KindEmbedding || embed.Available <= 0 {
		return nil, ErrInvalidSelection("embedding model", fmt.Sprintf("%q is not available in %s", embedUsage, region))
	}
	if embedCap <= 0 || embedCap > embed.Available {
		return nil, ErrInvalidSelection("embedding capacity", fmt.Sprintf("%d is outside 1-%d", embedCap, embed.Available))
	}
	return &types.Selection{
		Region:        region,
		ChatModel:     chat.Model,
		ChatCapacity:  chatCap,
		EmbedModel:    embed.Model,
		EmbedCapacity: embedCap,
	}, nil
}
