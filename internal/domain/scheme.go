package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// CaseOption selects the case transform applied to a base name.
type CaseOption string

const (
	CasePreserve CaseOption = "preserve"
	CaseLower    CaseOption = "lower"
	CaseUpper    CaseOption = "upper"
	CaseTitle    CaseOption = "title"
)

// NumberPosition selects where a sequential number is attached.
type NumberPosition string

const (
	NumberPrefix NumberPosition = "prefix"
	NumberSuffix NumberPosition = "suffix"
)

// Numbering configures sequential-number injection.
type Numbering struct {
	Enabled   bool
	Padding   int // zero-pad width; 0 means no padding
	Start     int
	Step      int
	Position  NumberPosition
	Separator string
}

// Scheme is the composed set of transformation rules used to compute a new
// name from an original one. The zero value is a valid identity scheme.
type Scheme struct {
	Prefix  string
	Suffix  string
	Find    string
	Replace string
	Case    CaseOption
	Number  Numbering

	// NameTemplate, when set, replaces the whole base name before the rest
	// of the pipeline runs. If the template carries its own extension it
	// overrides the original one.
	NameTemplate string
}

// Validate checks the scheme's fields before any name is generated.
func (s Scheme) Validate() error {
	switch s.Case {
	case "", CasePreserve, CaseLower, CaseUpper, CaseTitle:
	default:
		return &SchemeError{Field: "case", Message: fmt.Sprintf("unknown case option: %q", s.Case)}
	}
	if s.Number.Padding < 0 {
		return &SchemeError{Field: "padding", Message: "padding must not be negative"}
	}
	if s.Number.Start < 0 {
		return &SchemeError{Field: "start", Message: "start must not be negative"}
	}
	if s.Number.Step < 0 {
		return &SchemeError{Field: "step", Message: "step must not be negative"}
	}
	switch s.Number.Position {
	case "", NumberPrefix, NumberSuffix:
	default:
		return &SchemeError{Field: "position", Message: fmt.Sprintf("unknown number position: %q", s.Number.Position)}
	}
	return nil
}

// IsIdentity reports whether the scheme changes nothing at all.
func (s Scheme) IsIdentity() bool {
	return s.Prefix == "" && s.Suffix == "" && s.Find == "" &&
		(s.Case == "" || s.Case == CasePreserve) &&
		!s.Number.Enabled && s.NameTemplate == ""
}

// Render computes the new name for the file at originalPath occupying the
// given batch position. Pure and deterministic; performs no I/O.
//
// Pipeline order is fixed: template substitution, find/replace, case
// transform, prefix/suffix, sequential number, extension reattachment.
func (s Scheme) Render(originalPath string, index int) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	name := filepath.Base(originalPath)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	if s.NameTemplate != "" {
		base = s.NameTemplate
		if tmplExt := filepath.Ext(s.NameTemplate); tmplExt != "" {
			base = strings.TrimSuffix(base, tmplExt)
			ext = tmplExt
		}
	}

	if s.Find != "" {
		base = strings.ReplaceAll(base, s.Find, s.Replace)
	}

	switch s.Case {
	case CaseLower:
		base = strings.ToLower(base)
	case CaseUpper:
		base = strings.ToUpper(base)
	case CaseTitle:
		base = titleCase(base)
	}

	base = s.Prefix + base + s.Suffix

	if s.Number.Enabled {
		number := formatNumber(s.Number.Start+index*s.Number.Step, s.Number.Padding)
		sep := s.Number.Separator
		if s.Number.Position == NumberPrefix {
			base = number + sep + base
		} else {
			base = base + sep + number
		}
	}

	return base + ext, nil
}

// formatNumber zero-pads n to width digits. Values wider than the padding
// are never truncated.
func formatNumber(n, width int) string {
	digits := strconv.Itoa(n)
	if pad := width - len(digits); pad > 0 {
		return strings.Repeat("0", pad) + digits
	}
	return digits
}
