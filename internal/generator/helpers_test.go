package generator

import (
	"encoding/json"
	"testing"

	"smartsite/internal/models"
)

// validTemplate builds a minimal template satisfying every hard and soft
// invariant: one homepage carrying all ten required section types with
// target item counts, plus one extra page.
func validTemplate() *models.Template {
	sections := []models.Section{
		{Type: models.SectionNavigation, ID: "nav", Buttons: []models.Button{
			{Label: "Services", Href: "#services"},
			{Label: "Contact", Href: "#contact"},
		}},
		{Type: models.SectionHero, ID: "hero", Heading: "Acme Plumbing",
			Subheading: "Fast and reliable", Image: "plumber fixing sink"},
		{Type: models.SectionAbout, ID: "about", Heading: "About Us",
			Content: "Serving the city since 1980."},
		{Type: models.SectionServices, ID: "services", Heading: "Services",
			Items: nItems(6, func(i int) models.Item {
				return models.Item{Title: "Service", Description: "Desc", Icon: "wrench"}
			})},
		{Type: models.SectionStats, ID: "stats",
			Items: nItems(4, func(i int) models.Item {
				return models.Item{Value: "100+", Label: "Jobs done"}
			})},
		{Type: models.SectionProjects, ID: "projects", Heading: "Projects",
			Items: nItems(6, func(i int) models.Item {
				return models.Item{Title: "Project", Image: "bathroom renovation"}
			})},
		{Type: models.SectionTestimonials, ID: "testimonials",
			Items: nItems(3, func(i int) models.Item {
				return models.Item{Quote: "Great work", Author: "J. Doe", Role: "Homeowner"}
			})},
		{Type: models.SectionCTA, ID: "cta", Heading: "Get a quote"},
		{Type: models.SectionContact, ID: "contact", Fields: []models.FormField{
			{Name: "name", Type: "text"},
			{Name: "email", Type: "email"},
			{Name: "message", Type: "textarea"},
		}},
		{Type: models.SectionFooter, ID: "footer", Content: "© Acme Plumbing"},
	}

	return &models.Template{
		WebsiteName: "Acme Plumbing",
		Description: "A modern plumbing company website.",
		Colors: map[string]string{
			"primary":    "#0a3d62",
			"secondary":  "#3c6382",
			"accent":     "#f6b93b",
			"background": "#ffffff",
			"text":       "#1e272e",
		},
		Pages: []models.TemplatePage{
			{Title: "Home", Slug: "home", IsHomepage: true, Sections: sections},
			{Title: "About", Slug: "about", Sections: []models.Section{
				{Type: models.SectionAbout, ID: "about", Content: "More about us."},
			}},
		},
	}
}

func nItems(n int, build func(i int) models.Item) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = build(i)
	}
	return items
}

// templateJSON serializes a template for use as stubbed completion text.
func templateJSON(t *testing.T, tpl *models.Template) string {
	t.Helper()
	b, err := json.Marshal(tpl)
	if err != nil {
		t.Fatalf("marshal template: %v", err)
	}
	return string(b)
}
