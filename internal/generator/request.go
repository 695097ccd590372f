// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation limits for generation request fields.
const (
	maxDescriptionLen  = 4000
	maxCategoryLen     = 100
	maxBusinessNameLen = 200
)

// GenerateRequest is the inbound payload for one website generation.
// OwnerID is the trusted batch-mode path: it is honored only when no
// authenticated caller identity is present.
type GenerateRequest struct {
	Description  string `json:"description"`
	Category     string `json:"category"`
	BusinessName string `json:"businessName,omitempty"`
	OwnerID      string `json:"ownerId,omitempty"`
}

// Validate checks required fields and length bounds. Returns a
// *ValidationError describing the first problem found.
func (r *GenerateRequest) Validate() error {
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.BusinessName = strings.TrimSpace(r.BusinessName)

	if r.Description == "" {
		return &ValidationError{Msg: "description is required"}
	}
	if r.Category == "" {
		return &ValidationError{Msg: "category is required"}
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		return &ValidationError{Msg: "description is too long (max 4000 characters)"}
	}
	if utf8.RuneCountInString(r.Category) > maxCategoryLen {
		return &ValidationError{Msg: "category is too long (max 100 characters)"}
	}
	if utf8.RuneCountInString(r.BusinessName) > maxBusinessNameLen {
		return &ValidationError{Msg: "business name is too long (max 200 characters)"}
	}
	return nil
}

// ResolveOwner determines which account owns the generated website.
// An authenticated caller always wins; the explicit OwnerID covers the
// batch-mode path where no session exists. With neither, generation
// cannot proceed.
func (r *GenerateRequest) ResolveOwner(callerID uuid.UUID) (uuid.UUID, error) {
	if callerID != uuid.Nil {
		return callerID, nil
	}
	if r.OwnerID != "" {
		id, err := uuid.Parse(r.OwnerID)
		if err != nil {
			return uuid.Nil, &AuthError{Msg: "ownerId is not a valid identifier"}
		}
		return id, nil
	}
	return uuid.Nil, &AuthError{Msg: "no authenticated identity and no ownerId supplied"}
}
