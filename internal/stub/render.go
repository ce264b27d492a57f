package stub

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/arcanaland/cardforge/internal/card"
)

// CallbackParams are the positional parameters of every generated callback:
// the player, the game state and the card instance.
const CallbackParams = "plr, game, card"

const indent = "    "

var (
	// No leading zeros: "010" would load as the octal literal 8.
	numberPattern     = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// field is one optional-or-required line of the stub
type field struct {
	key    string
	when   func(d *card.Draft) bool
	render func(d *card.Draft) string
}

func always(*card.Draft) bool { return true }

// fields lists every line in output order
var fields = []field{
	{"name", always, func(d *card.Draft) string { return quote(d.Name) }},
	{"displayName",
		func(d *card.Draft) bool { return d.DisplayName != d.Name },
		func(d *card.Draft) string { return quote(d.DisplayName) }},
	{"stats",
		func(d *card.Draft) bool { return d.HasStats() },
		func(d *card.Draft) string { return list(d.Stats, number) }},
	{"desc", always, func(d *card.Draft) string { return quote(d.Description) }},
	{"mana", always, func(d *card.Draft) string { return number(d.ManaCost) }},
	{"tribe",
		func(d *card.Draft) bool { return d.IsMinionOrWeapon() && d.Tribe != "" },
		func(d *card.Draft) string { return quote(d.Tribe) }},
	{"class", always, func(d *card.Draft) string { return quote(d.Class) }},
	{"rarity", always, func(d *card.Draft) string { return quote(d.Rarity) }},
	{"set", always, func(d *card.Draft) string { return quote(d.Set) }},
	{"runes",
		func(d *card.Draft) bool { return d.HasRunes() && d.Runes != "" },
		func(d *card.Draft) string { return quote(d.Runes) }},
	{"spellClass",
		func(d *card.Draft) bool { return !d.IsMinionOrWeapon() && d.SpellClass != "" },
		func(d *card.Draft) string { return quote(d.SpellClass) }},
	{"keywords",
		func(d *card.Draft) bool { return d.IsMinionOrWeapon() && len(d.Keywords) > 0 },
		func(d *card.Draft) string { return list(d.Keywords, quote) }},
	{"hpDesc",
		func(d *card.Draft) bool { return d.IsHero() },
		func(d *card.Draft) string { return quote(d.HeroPowerDescription) }},
	{"hpCost",
		func(d *card.Draft) bool { return d.IsHero() },
		func(d *card.Draft) string { return number(d.HeroPowerCost) }},
	{"cooldown",
		func(d *card.Draft) bool { return d.IsLocation() },
		func(d *card.Draft) string { return number(d.Cooldown) }},
	{"uncollectible",
		func(d *card.Draft) bool { return d.Uncollectible },
		func(*card.Draft) string { return "true" }},
}

// Render returns the stub source for a draft
func Render(d *card.Draft) string {
	var b strings.Builder

	b.WriteString("module.exports = {\n")
	for _, f := range fields {
		if !f.when(d) {
			continue
		}
		b.WriteString(indent + f.key + ": " + f.render(d) + ",\n")
	}

	if d.FunctionName != "" {
		b.WriteString("\n")
		b.WriteString(indent + methodKey(d.FunctionName) + "(" + CallbackParams + ") {\n")
		b.WriteString(indent + indent + "\n")
		b.WriteString(indent + "}\n")
	}
	b.WriteString("}\n")

	return b.String()
}

// quote returns s as a double-quoted string literal
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// number returns s as a bare numeric literal, or quoted when it is not one
func number(s string) string {
	trimmed := strings.TrimSpace(s)
	if numberPattern.MatchString(trimmed) {
		return trimmed
	}
	return quote(s)
}

func list(items []string, render func(string) string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = render(item)
	}
	return "[" + strings.Join(out, ", ") + "]"
}

func methodKey(name string) string {
	if identifierPattern.MatchString(name) {
		return name
	}
	return quote(name)
}
