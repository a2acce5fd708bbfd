package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultLookup(t *testing.T) {
	b := Default()

	tests := []struct {
		name string
		lang language.Tag
		key  string
		want string
	}{
		{"english long", USEnglish, "ace-long", "Ace"},
		{"german long", German, "ace-long", "Ass"},
		{"german index", German, "queen-index", "D"},
		{"core symbol from english", USEnglish, "spades-symbol", "♠"},
		{"core symbol from german", German, "clubs-symbol", "♣"},
		{"regional german", language.MustParse("de-AT"), "clubs-long", "Klee"},
		{"unknown language falls back", language.French, "hearts-long", "Hearts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Lookup(tt.lang, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupMiss(t *testing.T) {
	_, err := Default().Lookup(German, "nonexistent-long")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookupMiss)
	assert.Contains(t, err.Error(), "nonexistent-long")
}

func TestWeight(t *testing.T) {
	b := Default()

	assert.Equal(t, 14, b.Weight("ace"))
	assert.Equal(t, 2, b.Weight("two"))
	assert.Equal(t, 16, b.Weight("big-joker"))
	assert.Equal(t, 0, b.Weight("no-such-rank"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "major-arcana-long", Key("major-arcana", Long))
}

func TestLanguages(t *testing.T) {
	b := Default()

	langs := b.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, "en-US", langs[0].String())
	assert.Equal(t, "de", langs[1].String())
	assert.Equal(t, "en-US", b.Fallback().String())
}

func writeLocale(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en-US.toml", "ace-long = \"Ace\"\nking-long = \"King\"\n")
	writeLocale(t, dir, "fr.toml", "ace-long = \"As\"\n")
	writeLocale(t, dir, CoreFile, "ace-weight = 14\n")
	writeLocale(t, dir, "README.md", "ignored")

	b, err := LoadDir(dir, USEnglish)
	require.NoError(t, err)

	got, err := b.Lookup(language.French, "ace-long")
	require.NoError(t, err)
	assert.Equal(t, "As", got)

	got, err = b.Lookup(language.French, "king-long")
	require.NoError(t, err)
	assert.Equal(t, "King", got, "missing french key should come from the fallback")

	assert.Equal(t, 14, b.Weight("ace"))
	assert.True(t, b.Has(language.French, "ace-weight"))
	assert.False(t, b.Has(language.French, "king-long"))
}

func TestLoadDirErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "nope"), USEnglish)
		assert.Error(t, err)
	})

	t.Run("missing fallback", func(t *testing.T) {
		dir := t.TempDir()
		writeLocale(t, dir, "de.toml", "ace-long = \"Ass\"\n")

		_, err := LoadDir(dir, USEnglish)
		assert.ErrorContains(t, err, "fallback language")
	})

	t.Run("bad toml", func(t *testing.T) {
		dir := t.TempDir()
		writeLocale(t, dir, "en-US.toml", "ace-long = \n")

		_, err := LoadDir(dir, USEnglish)
		assert.ErrorContains(t, err, "error parsing en-US.toml")
	})

	t.Run("nested table", func(t *testing.T) {
		dir := t.TempDir()
		writeLocale(t, dir, "en-US.toml", "[ace]\nlong = \"Ace\"\n")

		_, err := LoadDir(dir, USEnglish)
		assert.ErrorContains(t, err, "must be a string or number")
	})
}
