package models

import "testing"

// TestTemplateHomepage verifies that Homepage returns the page flagged as
// homepage regardless of its position, and nil when none is flagged.
func TestTemplateHomepage(t *testing.T) {
	tests := []struct {
		name      string
		pages     []TemplatePage
		wantTitle string
		wantNil   bool
	}{
		{
			name: "homepage first",
			pages: []TemplatePage{
				{Title: "Home", IsHomepage: true},
				{Title: "About"},
			},
			wantTitle: "Home",
		},
		{
			name: "homepage last",
			pages: []TemplatePage{
				{Title: "Services"},
				{Title: "Start", IsHomepage: true},
			},
			wantTitle: "Start",
		},
		{
			name:    "no homepage",
			pages:   []TemplatePage{{Title: "About"}},
			wantNil: true,
		},
		{
			name:    "no pages",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := &Template{Pages: tt.pages}
			got := tpl.Homepage()
			if tt.wantNil {
				if got != nil {
					t.Errorf("Homepage() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Homepage() = nil, want page")
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Homepage().Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

// TestPageHasSection verifies section type lookup on a page.
func TestPageHasSection(t *testing.T) {
	p := &TemplatePage{Sections: []Section{
		{Type: SectionHero},
		{Type: SectionContact},
	}}

	if !p.HasSection(SectionHero) {
		t.Error("HasSection(hero) = false, want true")
	}
	if p.HasSection(SectionFooter) {
		t.Error("HasSection(footer) = true, want false")
	}
}

// TestRequiredHomepageSections pins the expected section ordering so the
// prompt and the validator stay in sync with the renderer.
func TestRequiredHomepageSections(t *testing.T) {
	want := []SectionType{
		SectionNavigation, SectionHero, SectionAbout, SectionServices,
		SectionStats, SectionProjects, SectionTestimonials, SectionCTA,
		SectionContact, SectionFooter,
	}
	if len(RequiredHomepageSections) != len(want) {
		t.Fatalf("RequiredHomepageSections length = %d, want %d",
			len(RequiredHomepageSections), len(want))
	}
	for i, st := range want {
		if RequiredHomepageSections[i] != st {
			t.Errorf("RequiredHomepageSections[%d] = %q, want %q",
				i, RequiredHomepageSections[i], st)
		}
	}
}

// TestItemCardinality pins the per-section item counts the prompt requests.
func TestItemCardinality(t *testing.T) {
	tests := []struct {
		section SectionType
		want    int
	}{
		{SectionServices, 6},
		{SectionStats, 4},
		{SectionProjects, 6},
		{SectionTestimonials, 3},
	}
	for _, tt := range tests {
		if got := ItemCardinality[tt.section]; got != tt.want {
			t.Errorf("ItemCardinality[%s] = %d, want %d", tt.section, got, tt.want)
		}
	}
}
