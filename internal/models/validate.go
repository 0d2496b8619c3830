package models

import (
	"fmt"
	"strings"
)

// validateID rejects negative identifiers. Zero is allowed because the
// in-memory store hands out ids starting at zero.
func validateID(id int) error {
	if id < 0 {
		return fmt.Errorf("id must be a non-negative integer, got %d", id)
	}
	return nil
}

// validateNonEmpty rejects strings that are empty after trimming.
func validateNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must be a non-empty string", field)
	}
	return nil
}
