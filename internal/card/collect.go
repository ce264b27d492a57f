package card

import "strings"

// Asker asks the operator a single question and returns the raw answer
type Asker interface {
	Ask(label string) (string, error)
}

// Collect asks for every field of a draft in a fixed order.
// Only blankness is checked; answers are kept verbatim otherwise.
func Collect(a Asker) (*Draft, error) {
	d := &Draft{}
	var err error

	ask := func(label string, dst *string) {
		if err != nil {
			return
		}
		*dst, err = a.Ask(label)
	}

	ask("Type", &d.Type)
	mw := isMinionOrWeapon(d.Type)

	ask("Name", &d.Name)
	ask("Display Name", &d.DisplayName)
	if err == nil && d.DisplayName == "" {
		d.DisplayName = d.Name
	}

	if mw {
		var stats string
		ask("Stats", &stats)
		d.Stats = splitList(stats, "/")
	} else {
		ask("Spell Class", &d.SpellClass)
	}

	ask("Description", &d.Description)
	ask("Mana", &d.ManaCost)

	if mw {
		ask("Tribe", &d.Tribe)
	}

	ask("Class", &d.Class)
	if err == nil && d.Class == "" {
		d.Class = DefaultClass
	}

	ask("Rarity", &d.Rarity)
	ask("Set", &d.Set)

	var keywords string
	ask("Keywords", &keywords)
	d.Keywords = splitList(keywords, ",")

	if err == nil && usesRunes(d.Class) {
		ask("Runes", &d.Runes)
	}

	// Type specific questions
	switch {
	case d.IsHero():
		ask("Hero Power Description", &d.HeroPowerDescription)
		ask("Hero Power Cost (Default: 2)", &d.HeroPowerCost)
		d.HeroPowerCost = withDefault(d.HeroPowerCost, DefaultAbilityCost)
	case d.IsLocation():
		var durability string
		ask("Durability", &durability)
		if durability != "" {
			d.Stats = []string{"0", durability}
		}
		ask("Cooldown (Default: 2)", &d.Cooldown)
		d.Cooldown = withDefault(d.Cooldown, DefaultAbilityCost)
	}

	ask("Function", &d.FunctionName)
	d.FunctionName = strings.ToLower(d.FunctionName)

	if err != nil {
		return nil, err
	}
	return d, nil
}

func withDefault(answer, def string) string {
	if answer == "" {
		return def
	}
	return answer
}

// splitList splits a non-blank answer verbatim, keeping empty entries
func splitList(answer, sep string) []string {
	if answer == "" {
		return nil
	}
	return strings.Split(answer, sep)
}
