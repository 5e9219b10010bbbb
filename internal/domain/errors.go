package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a property cannot be located by slug or id.
// Read paths translate it into an explicit absent result; the update path
// surfaces it so the operator knows the target id does not exist.
var ErrNotFound = errors.New("estate: not found")

const minTitleLen = 3

// ValidationError enumerates every violated field of an update payload,
// not just the first one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidatePatch checks an update payload before any write is attempted.
// Returns nil or a *ValidationError listing all violations.
func ValidatePatch(p UpdatePatch) error {
	fields := map[string]string{}
	if p.Title != nil && len([]rune(*p.Title)) < minTitleLen {
		fields["title"] = fmt.Sprintf("must be at least %d characters", minTitleLen)
	}
	if p.Description != nil && len([]rune(*p.Description)) < minTitleLen {
		fields["description"] = fmt.Sprintf("must be at least %d characters", minTitleLen)
	}
	if p.Price != nil && *p.Price < 0 {
		fields["price"] = "must be zero or positive"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
