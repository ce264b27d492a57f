package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardforge/internal/checklist"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks the structure of a keyword checklist file
type Validator struct {
	Path    string
	Results ValidationResults

	checklist *checklist.Checklist
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate returns an error only when the file cannot be read or parsed.
// Problems with its content are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateGroups()
	v.validateKeywords()
	v.validateDuplicates()

	return v.Results, nil
}

func (v *Validator) decode() error {
	data, err := os.ReadFile(v.Path)
	if err != nil {
		return fmt.Errorf("error reading checklist: %w", err)
	}

	var c checklist.Checklist
	meta, err := toml.Decode(string(data), &c)
	if err != nil {
		return fmt.Errorf("error parsing checklist: %w", err)
	}

	for _, key := range meta.Undecoded() {
		v.warn("unknown key: %s", key.String())
	}

	v.checklist = &c
	return nil
}

func (v *Validator) validateGroups() {
	if len(v.checklist.Groups) == 0 {
		v.fail("checklist has no groups")
		return
	}

	for i, g := range v.checklist.Groups {
		if strings.TrimSpace(g.Name) == "" {
			v.fail("group %d: name is required", i+1)
		}
		if len(g.Keywords) == 0 {
			v.warn("group %q has no keywords", g.Name)
		}
	}
}

func (v *Validator) validateKeywords() {
	for _, g := range v.checklist.Groups {
		for i, k := range g.Keywords {
			if strings.TrimSpace(k.Name) == "" {
				v.fail("group %q, keyword %d: name is required", g.Name, i+1)
				continue
			}
			if k.Status == "" {
				v.fail("keyword %q: status is required", k.Name)
			} else if !k.Status.Valid() {
				v.fail("keyword %q: unknown status %q (expected done, wip or todo)", k.Name, k.Status)
			}
			if k.Status != checklist.StatusDone && k.Status.Valid() && k.Note == "" {
				v.warn("keyword %q is not done and has no note", k.Name)
			}
		}
	}
}

// validateDuplicates warns about keywords listed more than once, ignoring case
func (v *Validator) validateDuplicates() {
	seen := make(map[string]string)
	for _, g := range v.checklist.Groups {
		for _, k := range g.Keywords {
			key := strings.ToLower(strings.TrimSpace(k.Name))
			if key == "" {
				continue
			}
			if first, ok := seen[key]; ok {
				v.warn("keyword %q is listed in both %q and %q", k.Name, first, g.Name)
				continue
			}
			seen[key] = g.Name
		}
	}
}

func (v *Validator) fail(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warn(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
