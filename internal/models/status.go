package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the numeric status code of a task. The code is the position of
// its label in the fixed label sequence.
type Status int

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

const (
	StatusAll      Status = 0
	StatusPending  Status = 1
	StatusFinished Status = 2
)

// StatusCount is the number of known status codes
const StatusCount = 3

// statusLabels is ordered by status code and must never be modified
var statusLabels = [StatusCount]string{
	"All",
	"Pending",
	"Finished",
}

// StatusLabels returns a copy of the status labels in code order
func StatusLabels() []string {
	labels := make([]string, StatusCount)
	copy(labels, statusLabels[:])
	return labels
}

// Valid reports whether s indexes into the label sequence
func (s Status) Valid() bool {
	return s >= 0 && s < StatusCount
}

// Label returns the display label for s, or ErrInvalidStatus when s is out of range
func (s Status) Label() (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return statusLabels[s], nil
}

// String implements fmt.Stringer
func (s Status) String() string {
	if label, err := s.Label(); err == nil {
		return label
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// StatusLabel looks up the label for a raw status code
func StatusLabel(code int) (string, error) {
	return Status(code).Label()
}

// ParseStatus accepts either a label (case-insensitive) or a decimal code
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)

	for i, label := range statusLabels {
		if strings.EqualFold(trimmed, label) {
			return Status(i), nil
		}
	}

	if isDigits(trimmed) {
		if code, err := strconv.Atoi(trimmed); err == nil {
			if status := Status(code); status.Valid() {
				return status, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q (must be one of: %s)",
		ErrInvalidStatus, s, strings.ToLower(strings.Join(statusLabels[:], ", ")))
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
