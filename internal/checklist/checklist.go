package checklist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultChecklist []byte

// Status of a keyword in the engine
type Status string

const (
	StatusDone Status = "done"
	StatusWIP  Status = "wip"
	StatusTodo Status = "todo"
)

// Statuses lists every known status in display order
var Statuses = []Status{StatusDone, StatusWIP, StatusTodo}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human readable form of the status
func (s Status) Label() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusWIP:
		return "WIP"
	case StatusTodo:
		return "Not Implemented"
	default:
		return string(s)
	}
}

// Keyword is a single tracked mechanic
type Keyword struct {
	Name   string `toml:"name"`
	Status Status `toml:"status"`
	Note   string `toml:"note"`
}

// Group is a titled section of the checklist
type Group struct {
	Name     string    `toml:"name"`
	Note     string    `toml:"note"`
	Keywords []Keyword `toml:"keyword"`
}

// Checklist tracks which keywords the engine implements
type Checklist struct {
	Groups []Group `toml:"group"`
	Source string  `toml:"-"`
}

// Default returns the built-in checklist
func Default() (*Checklist, error) {
	return Parse(defaultChecklist, "built-in")
}

// Load reads a checklist file, or the built-in one when path is empty
func Load(path string) (*Checklist, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading checklist: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a checklist from TOML
func Parse(data []byte, source string) (*Checklist, error) {
	var c Checklist
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("error parsing checklist %s: %w", source, err)
	}
	c.Source = source
	return &c, nil
}

// Find looks up a keyword by name, ignoring case and surrounding spaces
func (c *Checklist) Find(name string) (*Keyword, error) {
	name = strings.TrimSpace(name)
	for gi := range c.Groups {
		for ki := range c.Groups[gi].Keywords {
			k := &c.Groups[gi].Keywords[ki]
			if strings.EqualFold(k.Name, name) {
				return k, nil
			}
		}
	}
	return nil, fmt.Errorf("keyword not found: %s", name)
}

// Filter returns a copy holding only keywords with the given status.
// Groups left empty are dropped.
func (c *Checklist) Filter(status Status) *Checklist {
	out := &Checklist{Source: c.Source}
	for _, g := range c.Groups {
		var kept []Keyword
		for _, k := range g.Keywords {
			if k.Status == status {
				kept = append(kept, k)
			}
		}
		if len(kept) > 0 {
			out.Groups = append(out.Groups, Group{Name: g.Name, Note: g.Note, Keywords: kept})
		}
	}
	return out
}

// Counts returns the number of keywords per status
func (c *Checklist) Counts() map[Status]int {
	counts := make(map[Status]int)
	for _, g := range c.Groups {
		for _, k := range g.Keywords {
			counts[k.Status]++
		}
	}
	return counts
}

// Unimplemented returns the entered keywords that the checklist does not
// mark as done. Unknown keywords are not reported.
func (c *Checklist) Unimplemented(names []string) []Keyword {
	var out []Keyword
	for _, name := range names {
		k, err := c.Find(name)
		if err != nil {
			continue
		}
		if k.Status != StatusDone {
			out = append(out, *k)
		}
	}
	return out
}

// ParseStatus accepts a status name or its label
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, known := range Statuses {
		if strings.EqualFold(s, string(known)) || strings.EqualFold(s, known.Label()) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown status: %s (expected done, wip or todo)", s)
}
