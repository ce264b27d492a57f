package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardforge/internal/card"
)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
			continue
		}
		result = append(result, currentLine)
		currentLine = word
	}
	return append(result, currentLine)
}

// displayDraft prints a short summary of the written card
func displayDraft(w io.Writer, d *card.Draft, path string, width int) {
	label := func(name string) string {
		return colorize.CyanString("%-12s", name+":")
	}
	value := func(s string) string {
		return colorize.HiWhiteString("%s", s)
	}

	var lines []string
	add := func(name, v string) {
		lines = append(lines, label(name)+value(v))
	}

	name := d.Name
	if d.DisplayName != d.Name {
		name = fmt.Sprintf("%s (%s)", d.Name, d.DisplayName)
	}
	add("Card", name)
	add("Type", d.Type)
	if d.IsMinionOrWeapon() && len(d.Stats) > 0 {
		add("Stats", strings.Join(d.Stats, "/"))
	}
	add("Mana", d.ManaCost)
	add("Class", d.Class)
	if d.IsMinionOrWeapon() && d.Tribe != "" {
		add("Tribe", d.Tribe)
	}
	if !d.IsMinionOrWeapon() && d.SpellClass != "" {
		add("Spell Class", d.SpellClass)
	}
	add("Rarity", d.Rarity)
	add("Set", d.Set)
	if d.HasRunes() && d.Runes != "" {
		add("Runes", d.Runes)
	}
	if d.IsMinionOrWeapon() && len(d.Keywords) > 0 {
		add("Keywords", strings.Join(d.Keywords, ","))
	}
	if d.IsHero() {
		add("Hero Power", fmt.Sprintf("%s (%s)", d.HeroPowerDescription, d.HeroPowerCost))
	}
	if d.IsLocation() {
		if d.HasStats() {
			add("Durability", d.Stats[len(d.Stats)-1])
		}
		add("Cooldown", d.Cooldown)
	}
	if d.Uncollectible {
		add("Flags", "uncollectible")
	}
	if d.FunctionName != "" {
		add("Callback", d.FunctionName)
	}
	add("File", path)

	if d.Description != "" {
		lines = append(lines, "", colorize.CyanString("Description:"))
		lines = append(lines, wrapText(d.Description, width-4)...)
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}
