package types

import (
	"fmt"
	"strings"
)

// Check identifies one validator category.
type Check string

// Check constants, in canonical execution order.
const (
	CheckReferences Check = "references"
	CheckMaterials  Check = "materials"
	CheckRender     Check = "render"
	CheckAttributes Check = "attributes"
)

// CheckOrder is the fixed execution order of validators. Error sequences
// are deterministic only because this order never varies.
var CheckOrder = []Check{
	CheckReferences,
	CheckMaterials,
	CheckRender,
	CheckAttributes,
}

// ParseCheck parses a check name.
func ParseCheck(s string) (Check, error) {
	switch Check(strings.ToLower(s)) {
	case CheckReferences, CheckMaterials, CheckRender, CheckAttributes:
		return Check(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown check %q (must be references, materials, render, or attributes)", s)
	}
}

// CheckSet is a validator selection. The zero value has nothing enabled,
// which is a distinguishable scan outcome ("all checks disabled"), not the
// same as a scan that found no errors.
type CheckSet map[Check]bool

// AllChecks returns a set with every validator enabled, the default state.
func AllChecks() CheckSet {
	set := make(CheckSet, len(CheckOrder))
	for _, c := range CheckOrder {
		set[c] = true
	}
	return set
}

// ParseCheckSet parses a comma-separated check list. "all" enables every
// validator. An empty string yields an empty set.
func ParseCheckSet(s string) (CheckSet, error) {
	set := make(CheckSet)
	if s == "" {
		return set, nil
	}
	if strings.EqualFold(s, "all") {
		return AllChecks(), nil
	}
	for _, part := range strings.Split(s, ",") {
		c, err := ParseCheck(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		set[c] = true
	}
	return set, nil
}

// Enabled reports whether c is selected.
func (s CheckSet) Enabled(c Check) bool { return s[c] }

// Empty reports whether no validator is selected.
func (s CheckSet) Empty() bool {
	for _, on := range s {
		if on {
			return false
		}
	}
	return true
}

// Ordered returns the enabled checks in canonical execution order.
func (s CheckSet) Ordered() []Check {
	var out []Check
	for _, c := range CheckOrder {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}
