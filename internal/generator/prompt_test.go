package generator

import (
	"strings"
	"testing"

	"smartsite/internal/scraper"
)

func TestSystemPromptIsDeterministic(t *testing.T) {
	if systemPrompt() != systemPrompt() {
		t.Error("systemPrompt: consecutive calls differ")
	}
}

func TestSystemPromptNamesInvariants(t *testing.T) {
	prompt := systemPrompt()

	// Section ordering appears verbatim.
	wantOrder := "navigation, hero, about, services, stats, projects, testimonials, cta, contact, footer"
	if !strings.Contains(prompt, wantOrder) {
		t.Errorf("systemPrompt missing section ordering %q", wantOrder)
	}

	for _, fragment := range []string{
		`"services" has exactly 6 items`,
		`"stats" exactly 4`,
		`"projects" exactly 6`,
		`"testimonials" exactly 3`,
		`"websiteName"`,
		`"isHomepage"`,
		`keyword phrase`,
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("systemPrompt missing %q", fragment)
		}
	}
}

func TestUserPromptEmbedsInputs(t *testing.T) {
	req := GenerateRequest{
		Description:  "modern plumbing company",
		Category:     "plumbing",
		BusinessName: "Acme Plumbing",
	}

	prompt := userPrompt(req, nil)

	for _, fragment := range []string{"modern plumbing company", "plumbing", "Acme Plumbing"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("userPrompt missing %q", fragment)
		}
	}
	if strings.Contains(prompt, "reference website") {
		t.Error("userPrompt mentions reference content without any")
	}
}

func TestUserPromptEmbedsReferenceContext(t *testing.T) {
	req := GenerateRequest{Description: "like this site", Category: "plumbing"}
	ref := &scraper.PageContent{
		Title:       "Competitor Plumbing",
		Description: "Best pipes in town",
		MainContent: "We install boilers and fix leaks.",
	}

	prompt := userPrompt(req, ref)

	for _, fragment := range []string{"Competitor Plumbing", "Best pipes in town", "We install boilers"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("userPrompt missing reference fragment %q", fragment)
		}
	}
}

func TestUserPromptIsDeterministic(t *testing.T) {
	req := GenerateRequest{Description: "d", Category: "c"}
	if userPrompt(req, nil) != userPrompt(req, nil) {
		t.Error("userPrompt: consecutive calls differ")
	}
}
