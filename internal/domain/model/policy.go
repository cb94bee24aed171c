package model

import (
	"fmt"
	"unicode"
)

// Default policy values, applied at startup and restored by reset.
const (
	DefaultMinLength = 8
	DefaultMaxLength = 20
)

// Policy is the set of rules a secret must satisfy to be accepted.
type Policy struct {
	MinLength      int
	MaxLength      int
	RequireSpecial bool
	RequireCapital bool
	RequireNumber  bool
}

// DefaultPolicy returns the built-in policy: length 8–20 with all three
// character classes required.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:      DefaultMinLength,
		MaxLength:      DefaultMaxLength,
		RequireSpecial: true,
		RequireCapital: true,
		RequireNumber:  true,
	}
}

// ValidateBounds checks the policy's own invariants. Violations are reported
// as ErrInvalidInput and must be rejected before the policy is stored.
func (p Policy) ValidateBounds() error {
	if p.MinLength < 1 {
		return fmt.Errorf("min length must be at least 1, got %d: %w", p.MinLength, ErrInvalidInput)
	}
	if p.MaxLength < p.MinLength {
		return fmt.Errorf("max length %d is less than min length %d: %w", p.MaxLength, p.MinLength, ErrInvalidInput)
	}
	return nil
}

// ViolationKind identifies one policy rule a candidate secret failed.
type ViolationKind string

const (
	ViolationTooShort       ViolationKind = "too_short"
	ViolationTooLong        ViolationKind = "too_long"
	ViolationMissingSpecial ViolationKind = "missing_special"
	ViolationMissingCapital ViolationKind = "missing_capital"
	ViolationMissingNumber  ViolationKind = "missing_number"
)

// ValidationResult carries every rule the candidate failed, in rule order.
// Checks do not short-circuit: callers need the full set to produce
// actionable feedback.
type ValidationResult struct {
	Violations []ViolationKind
}

// OK reports whether the candidate passed every active rule.
func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

// Validate checks a candidate secret against the policy. Length is measured
// in characters, not bytes. A special character is any rune outside the
// letter and digit classes. Pure: no store state, no side effects.
func (p Policy) Validate(secret string) ValidationResult {
	var (
		length     int
		hasSpecial bool
		hasCapital bool
		hasNumber  bool
	)
	for _, r := range secret {
		length++
		switch {
		case unicode.IsUpper(r):
			hasCapital = true
		case unicode.IsDigit(r):
			hasNumber = true
		case !unicode.IsLetter(r):
			hasSpecial = true
		}
	}

	var res ValidationResult
	if length < p.MinLength {
		res.Violations = append(res.Violations, ViolationTooShort)
	}
	if length > p.MaxLength {
		res.Violations = append(res.Violations, ViolationTooLong)
	}
	if p.RequireSpecial && !hasSpecial {
		res.Violations = append(res.Violations, ViolationMissingSpecial)
	}
	if p.RequireCapital && !hasCapital {
		res.Violations = append(res.Violations, ViolationMissingCapital)
	}
	if p.RequireNumber && !hasNumber {
		res.Violations = append(res.Violations, ViolationMissingNumber)
	}
	return res
}
