// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "fmt"

// Stage identifies where in the pipeline a fatal error occurred.
type Stage string

const (
	StageValidating      Stage = "validating"
	StageContext         Stage = "context_enriching"
	StageComposing       Stage = "composing"
	StageGenerating      Stage = "generating"
	StageExtracting      Stage = "extracting"
	StageSchema          Stage = "validating_schema"
	StageEnrichingImages Stage = "enriching_images"
	StagePersisting      Stage = "persisting"
)

// StageError annotates a fatal pipeline error with the stage that raised
// it, so callers can name the failing stage in responses and logs.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ValidationError reports missing or rejected request inputs. Surfaces
// as HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthError reports that no owner could be resolved for the request.
// Surfaces as HTTP 401.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// GenerationError reports a non-2xx answer from the completion service.
type GenerationError struct {
	Status int
	Body   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("completion service error (status %d): %s", e.Status, e.Body)
}

// EmptyGenerationError reports a completion response that contained no
// usable text after extraction.
type EmptyGenerationError struct{}

func (e *EmptyGenerationError) Error() string {
	return "completion response contained no usable text"
}

// SchemaError reports unparsable generation output or a hard structural
// invariant violation. Nothing is persisted when it occurs.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "generated content failed schema validation: " + e.Reason
}

// PersistenceError reports a datastore write failure. When page insertion
// fails after the parent website row was written, the parent row remains
// orphaned; see the design notes.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
