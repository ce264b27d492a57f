package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	colorize.NoColor = true
	os.Exit(m.Run())
}

type fakeEditor struct {
	opened []string
	err    error
}

func (f *fakeEditor) Open(ctx context.Context, path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func testCardAnswers() *strings.Reader {
	return answers("Minion", "Test Card", "", "3/4", "Deal 1 damage.", "2", "", "", "Common", "Test", "Taunt", "battlecry")
}

func newTestGenerator(t *testing.T, in *strings.Reader, ed opener) (*generator, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return &generator{
		cardsDir: filepath.Join(t.TempDir(), "cards"),
		editor:   ed,
		in:       in,
		out:      &out,
		errOut:   &errOut,
		width:    80,
	}, &out, &errOut
}

func TestGenerator_Run(t *testing.T) {
	t.Run("writes the stub and opens it", func(t *testing.T) {
		ed := &fakeEditor{}
		g, out, _ := newTestGenerator(t, testCardAnswers(), ed)

		require.NoError(t, g.run(context.Background()))

		dir := filepath.Join(g.cardsDir, "Neutral", "Minions", "2 Cost")
		path := filepath.Join(dir, "test_card.js")
		assert.Equal(t, []string{path}, ed.opened)
		assert.Contains(t, out.String(), dir+string(filepath.Separator)+"\n")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		stub := string(data)
		assert.Contains(t, stub, "    stats: [3, 4],\n")
		assert.Contains(t, stub, "    class: \"Neutral\",\n")
		assert.Contains(t, stub, "    keywords: [\"Taunt\"],\n")
		assert.Contains(t, stub, "    battlecry(plr, game, card) {\n")
		assert.NotContains(t, stub, "displayName")
	})

	t.Run("prints the prompts in order", func(t *testing.T) {
		g, out, _ := newTestGenerator(t, testCardAnswers(), nil)

		require.NoError(t, g.run(context.Background()))
		assert.True(t, strings.HasPrefix(out.String(),
			"Type: Name: Display Name: Stats: Description: Mana: Tribe: Class: Rarity: Set: Keywords: Function: "))
	})

	t.Run("class cards", func(t *testing.T) {
		in := answers("Spell", "Holy Nova", "", "Holy", "Deal 2 damage.", "5", "Priest", "Common", "Classic", "", "cast")
		g, _, _ := newTestGenerator(t, in, nil)

		require.NoError(t, g.run(context.Background()))
		assert.FileExists(t, filepath.Join(g.cardsDir, "Classes", "Priest", "Spells", "5 Cost", "holy_nova.js"))
	})

	t.Run("cancel writes nothing", func(t *testing.T) {
		ed := &fakeEditor{}
		g, out, _ := newTestGenerator(t, answers("Minion", "Test Card", "back"), ed)

		require.NoError(t, g.run(context.Background()))
		assert.Contains(t, out.String(), "Cancelled, nothing was written.")
		assert.Empty(t, ed.opened)
		assert.NoDirExists(t, g.cardsDir)
	})

	t.Run("truncated input fails", func(t *testing.T) {
		g, _, _ := newTestGenerator(t, answers("Minion", "Test Card"), nil)

		assert.Error(t, g.run(context.Background()))
		assert.NoDirExists(t, g.cardsDir)
	})

	t.Run("editor failure is returned after writing", func(t *testing.T) {
		ed := &fakeEditor{err: errors.New("editor crashed")}
		g, _, _ := newTestGenerator(t, testCardAnswers(), ed)

		err := g.run(context.Background())
		assert.EqualError(t, err, "editor crashed")
		assert.FileExists(t, ed.opened[0])
	})

	t.Run("warns about unimplemented keywords", func(t *testing.T) {
		in := answers("Minion", "Test Card", "", "3/4", "", "2", "Mech", "", "Common", "Test", "Taunt, Magnetic", "")
		g, _, errOut := newTestGenerator(t, in, nil)

		require.NoError(t, g.run(context.Background()))
		assert.Contains(t, errOut.String(), "warning: keyword Magnetic is not implemented yet (Not Implemented)")
		assert.NotContains(t, errOut.String(), "Taunt")
	})

	t.Run("dry run prints instead of writing", func(t *testing.T) {
		ed := &fakeEditor{}
		g, out, _ := newTestGenerator(t, testCardAnswers(), ed)
		g.dryRun = true

		require.NoError(t, g.run(context.Background()))

		path := filepath.Join(g.cardsDir, "Neutral", "Minions", "2 Cost", "test_card.js")
		assert.Contains(t, out.String(), "Would be path: "+path+"\n")
		assert.Contains(t, out.String(), "Content:\nmodule.exports = {\n    name: \"Test Card\",\n")
		assert.Empty(t, ed.opened)
		assert.NoDirExists(t, g.cardsDir)
	})

	t.Run("uncollectible cards", func(t *testing.T) {
		g, _, _ := newTestGenerator(t, testCardAnswers(), nil)
		g.uncollectible = true

		require.NoError(t, g.run(context.Background()))
		data, err := os.ReadFile(filepath.Join(g.cardsDir, "Neutral", "Minions", "2 Cost", "test_card.js"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "    uncollectible: true,\n")
	})

	t.Run("hero power prompts", func(t *testing.T) {
		in := answers("Hero", "Lich King", "", "", "Battlecry: Gain 5 Armor.", "7", "Death Knight", "Legendary", "Core", "", "BBB", "Summon a 2/2 Ghoul.", "", "battlecry")
		g, out, _ := newTestGenerator(t, in, nil)

		require.NoError(t, g.run(context.Background()))
		assert.True(t, strings.HasPrefix(out.String(),
			"Type: Name: Display Name: Spell Class: Description: Mana: Class: Rarity: Set: Keywords: Runes: "+
				"Hero Power Description: Hero Power Cost (Default: 2): Function: "))

		data, err := os.ReadFile(filepath.Join(g.cardsDir, "Classes", "Death Knight", "Heros", "7 Cost", "lich_king.js"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "    runes: \"BBB\",\n")
		assert.Contains(t, string(data), "    hpDesc: \"Summon a 2/2 Ghoul.\",\n    hpCost: 2,\n")
	})

	t.Run("location prompts", func(t *testing.T) {
		in := answers("Location", "Sunwell", "", "", "Restore 3 Health.", "3", "", "Rare", "Core", "", "4", "3", "use")
		g, out, _ := newTestGenerator(t, in, nil)

		require.NoError(t, g.run(context.Background()))
		assert.True(t, strings.HasPrefix(out.String(),
			"Type: Name: Display Name: Spell Class: Description: Mana: Class: Rarity: Set: Keywords: "+
				"Durability: Cooldown (Default: 2): Function: "))

		data, err := os.ReadFile(filepath.Join(g.cardsDir, "Neutral", "Locations", "3 Cost", "sunwell.js"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "    stats: [0, 4],\n")
		assert.Contains(t, string(data), "    cooldown: 3,\n")
	})

	t.Run("same answers give the same file", func(t *testing.T) {
		g, _, _ := newTestGenerator(t, testCardAnswers(), nil)
		require.NoError(t, g.run(context.Background()))
		path := filepath.Join(g.cardsDir, "Neutral", "Minions", "2 Cost", "test_card.js")
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		g.in = testCardAnswers()
		require.NoError(t, g.run(context.Background()))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 40))
	assert.Equal(t, []string{"Deal 1 damage."}, wrapText("Deal 1 damage.", 40))
	assert.Equal(t, []string{"Battlecry: Deal", "1 damage to all", "enemies."},
		wrapText("Battlecry: Deal 1 damage to all enemies.", 15))
}

func TestDisplayDraft(t *testing.T) {
	g, out, _ := newTestGenerator(t, answers("Minion", "Test Card", "Tester", "3/4", "Deal 1 damage.", "2", "Beast", "", "Common", "Test", "Taunt", "battlecry"), nil)
	require.NoError(t, g.run(context.Background()))

	summary := out.String()
	assert.Contains(t, summary, "Card:       Test Card (Tester)")
	assert.Contains(t, summary, "Stats:      3/4")
	assert.Contains(t, summary, "Tribe:      Beast")
	assert.Contains(t, summary, "Callback:   battlecry")
	assert.Contains(t, summary, "Description:\n  Deal 1 damage.")
}

func TestDisplayDraft_TypeSpecific(t *testing.T) {
	in := answers("Location", "Sunwell", "", "", "Restore 3 Health.", "3", "", "Rare", "Core", "", "4", "", "use")
	g, out, _ := newTestGenerator(t, in, nil)
	g.uncollectible = true
	require.NoError(t, g.run(context.Background()))

	summary := out.String()
	assert.Contains(t, summary, "Durability: 4")
	assert.Contains(t, summary, "Cooldown:   2")
	assert.Contains(t, summary, "Flags:      uncollectible")
	assert.NotContains(t, summary, "Stats:")
}
