// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SectionType identifies a typed content block within a generated page.
type SectionType string

const (
	SectionNavigation   SectionType = "navigation"
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionServices     SectionType = "services"
	SectionStats        SectionType = "stats"
	SectionProjects     SectionType = "projects"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionContact      SectionType = "contact"
	SectionFooter       SectionType = "footer"
)

// RequiredHomepageSections lists the section types every generated homepage
// is expected to carry, in rendering order. Missing entries are soft
// violations: the site renders with gaps but remains usable.
var RequiredHomepageSections = []SectionType{
	SectionNavigation,
	SectionHero,
	SectionAbout,
	SectionServices,
	SectionStats,
	SectionProjects,
	SectionTestimonials,
	SectionCTA,
	SectionContact,
	SectionFooter,
}

// ItemCardinality maps section types to the item count the renderer lays
// out best with. Also soft: fewer items degrade the layout, not the site.
var ItemCardinality = map[SectionType]int{
	SectionServices:     6,
	SectionStats:        4,
	SectionProjects:     6,
	SectionTestimonials: 3,
}

// MinHomepageSections is the hard floor for homepage section count.
// Below this the generated site is too sparse to persist at all.
const MinHomepageSections = 9

// Template is the in-memory representation of a generated multi-page site.
// It exists only for the duration of a single generation request: parsed
// from the completion output, enriched with photo URLs, then decomposed
// into one website row plus page rows at persistence time.
type Template struct {
	WebsiteName string            `json:"websiteName"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors,omitempty"`
	Pages       []TemplatePage    `json:"pages"`
}

// TemplatePage is a single page of a generated Template.
type TemplatePage struct {
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	IsHomepage bool      `json:"isHomepage"`
	Sections   []Section `json:"sections"`
}

// Section is a typed content block. Which optional fields are populated
// depends on the section type; the generator's prompt pins the shape per
// type and the renderer tolerates absent fields.
type Section struct {
	Type            SectionType `json:"type"`
	ID              string      `json:"id,omitempty"`
	Heading         string      `json:"heading,omitempty"`
	Subheading      string      `json:"subheading,omitempty"`
	Content         string      `json:"content,omitempty"`
	Image           string      `json:"image,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	TextColor       string      `json:"textColor,omitempty"`
	Items           []Item      `json:"items,omitempty"`
	Buttons         []Button    `json:"buttons,omitempty"`
	Fields          []FormField `json:"fields,omitempty"`
}

// Item is a repeated entry inside a section. The populated fields depend
// on the owning section: services use title/description/icon, stats use
// value/label, testimonials use quote/author/role, projects use
// title/description/image.
type Item struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Value       string `json:"value,omitempty"`
	Label       string `json:"label,omitempty"`
	Quote       string `json:"quote,omitempty"`
	Author      string `json:"author,omitempty"`
	Role        string `json:"role,omitempty"`
}

// Button is a call-to-action link within a section.
type Button struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Style string `json:"style,omitempty"`
}

// FormField describes one input of a contact form section.
type FormField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
}

// Homepage returns the page flagged as homepage, or nil if none exists.
func (t *Template) Homepage() *TemplatePage {
	for i := range t.Pages {
		if t.Pages[i].IsHomepage {
			return &t.Pages[i]
		}
	}
	return nil
}

// HasSection reports whether the page contains a section of the given type.
func (p *TemplatePage) HasSection(st SectionType) bool {
	for i := range p.Sections {
		if p.Sections[i].Type == st {
			return true
		}
	}
	return false
}

// SectionByType returns the first section of the given type, or nil.
func (p *TemplatePage) SectionByType(st SectionType) *Section {
	for i := range p.Sections {
		if p.Sections[i].Type == st {
			return &p.Sections[i]
		}
	}
	return nil
}
