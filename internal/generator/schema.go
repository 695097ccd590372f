// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"encoding/json"
	"fmt"
	"regexp"

	"smartsite/internal/models"
)

// fencedBlock matches a markdown code fence with an optional language tag.
// Models wrap JSON in fences despite instructions; tolerate it.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// outerBraces greedily matches from the first { to the last }.
var outerBraces = regexp.MustCompile(`(?s)\{.*\}`)

// locatePayload finds the JSON object inside extracted completion text:
// fenced code block first, then greedy outer braces, else the whole
// string.
func locatePayload(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := outerBraces.FindString(text); m != "" {
		return m
	}
	return text
}

// ParseTemplate locates and parses the generated JSON. A parse failure is
// a hard *SchemaError — without a template there is nothing to persist.
func ParseTemplate(text string) (*models.Template, error) {
	payload := locatePayload(text)

	var tpl models.Template
	if err := json.Unmarshal([]byte(payload), &tpl); err != nil {
		return nil, &SchemaError{Reason: fmt.Sprintf("output is not valid JSON: %v", err)}
	}
	return &tpl, nil
}

// ValidationResult separates hard failures from soft ones. Missing
// optional richness degrades the rendered site but does not make it
// unusable, whereas a malformed top-level shape makes persistence
// meaningless — so warnings flow through while Fatal aborts.
type ValidationResult struct {
	Warnings []string
	Fatal    error
}

// ValidateTemplate checks the parsed template against its structural
// invariants.
//
// Hard (Fatal set, nothing persisted): missing websiteName or
// description, absent or empty pages, no homepage, homepage with fewer
// than models.MinHomepageSections sections.
//
// Soft (warning only): a required homepage section type absent, or a
// section's item count differing from its target cardinality.
func ValidateTemplate(tpl *models.Template) ValidationResult {
	var result ValidationResult

	if tpl.WebsiteName == "" {
		result.Fatal = &SchemaError{Reason: "websiteName is missing"}
		return result
	}
	if tpl.Description == "" {
		result.Fatal = &SchemaError{Reason: "description is missing"}
		return result
	}
	if len(tpl.Pages) == 0 {
		result.Fatal = &SchemaError{Reason: "pages is missing or empty"}
		return result
	}

	home := tpl.Homepage()
	if home == nil {
		result.Fatal = &SchemaError{Reason: "no page has isHomepage set"}
		return result
	}
	if len(home.Sections) < models.MinHomepageSections {
		result.Fatal = &SchemaError{Reason: fmt.Sprintf(
			"homepage has %d sections, need at least %d",
			len(home.Sections), models.MinHomepageSections)}
		return result
	}

	for _, st := range models.RequiredHomepageSections {
		if !home.HasSection(st) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("homepage is missing a %s section", st))
		}
	}

	for i := range home.Sections {
		sec := &home.Sections[i]
		want, ok := models.ItemCardinality[sec.Type]
		if !ok {
			continue
		}
		if got := len(sec.Items); got != want {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s section has %d items, expected %d", sec.Type, got, want))
		}
	}

	return result
}
