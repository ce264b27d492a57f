package card

import (
	"path/filepath"
	"strings"
)

// DefaultClass is used when the class prompt is left blank
const DefaultClass = "Neutral"

// DefaultAbilityCost is used for hero power costs and location cooldowns left blank
const DefaultAbilityCost = "2"

// Extension is appended to every stub filename. The engine loads cards as JS modules.
const Extension = ".js"

// Draft represents a card being described by the operator
type Draft struct {
	Type         string   // minion, weapon, spell, ...
	Name         string   // Canonical name, also used for the filename
	DisplayName  string   // Defaults to Name
	Stats        []string // Attack/health, minions and weapons only
	Description  string
	ManaCost     string // Raw text, also a path segment
	Tribe        string // Minions and weapons only
	SpellClass   string // Everything else
	Class        string // Defaults to Neutral
	Rarity       string
	Set          string
	Runes        string // Death Knight only
	Keywords     []string
	FunctionName string // Name of the callback to stub out

	HeroPowerDescription string // Heroes only
	HeroPowerCost        string // Heroes only, defaults to 2
	Cooldown             string // Locations only, defaults to 2
	Uncollectible        bool
}

// IsMinionOrWeapon reports whether the draft carries stats and a tribe
func (d *Draft) IsMinionOrWeapon() bool {
	return isMinionOrWeapon(d.Type)
}

// IsHero reports whether the draft describes a hero card
func (d *Draft) IsHero() bool {
	return strings.EqualFold(d.Type, "hero")
}

// IsLocation reports whether the draft describes a location card
func (d *Draft) IsLocation() bool {
	return strings.EqualFold(d.Type, "location")
}

// HasStats reports whether a stats line belongs in the stub.
// Locations store their durability as [0, durability].
func (d *Draft) HasStats() bool {
	return (d.IsMinionOrWeapon() || d.IsLocation()) && len(d.Stats) > 0
}

// IsNeutral reports whether the card belongs to no class
func (d *Draft) IsNeutral() bool {
	return strings.EqualFold(d.Class, DefaultClass)
}

// HasRunes reports whether the class uses runes
func (d *Draft) HasRunes() bool {
	return usesRunes(d.Class)
}

// Directory returns the folder the stub is written to, below root
func (d *Draft) Directory(root string) string {
	typeDir := d.Type + "s"
	costDir := d.ManaCost + " Cost"

	if d.IsNeutral() {
		return filepath.Join(root, "Neutral", typeDir, costDir)
	}
	return filepath.Join(root, "Classes", d.Class, typeDir, costDir)
}

// Filename returns the stub filename derived from the card name
func (d *Draft) Filename() string {
	return strings.ToLower(strings.ReplaceAll(d.Name, " ", "_")) + Extension
}

// Path returns the full path of the stub below root
func (d *Draft) Path(root string) string {
	return filepath.Join(d.Directory(root), d.Filename())
}

func isMinionOrWeapon(cardType string) bool {
	switch strings.ToLower(cardType) {
	case "minion", "weapon":
		return true
	}
	return false
}

func usesRunes(class string) bool {
	return strings.EqualFold(class, "Death Knight")
}
