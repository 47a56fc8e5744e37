package services

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError rejects input before any persistence call is made,
// so bad input never produces partial writes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidSlotError rejects a slot key outside the fixed full-course set.
type InvalidSlotError struct {
	SlotKey string
}

func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("unknown full course slot %q", e.SlotKey)
}

// RecalcFailure records one category whose rank or representative
// image refresh did not fully apply.
type RecalcFailure struct {
	CategoryID uuid.UUID
	Err        error
}

// PartialRecalcError means the item itself was durably saved but one
// or more follow-on rank/image updates failed, so ranking metadata may
// be stale. Callers must treat this differently from a failed save.
type PartialRecalcError struct {
	Failures []RecalcFailure
}

func (e *PartialRecalcError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("ranking recalculation incomplete for category %s: %v", e.Failures[0].CategoryID, e.Failures[0].Err)
	}
	return fmt.Sprintf("ranking recalculation incomplete for %d categories", len(e.Failures))
}
