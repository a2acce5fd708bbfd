package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/deck"
	"github.com/arcanaland/cardpack/internal/locale"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks that a locale directory can render every card of every
// deck variant.
type Validator struct {
	LocaleDir string
	Fallback  language.Tag
	Results   ValidationResults

	bundle *locale.Bundle
}

func NewValidator(localeDir string) *Validator {
	return &Validator{
		LocaleDir: localeDir,
		Fallback:  locale.USEnglish,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateBundle(); err != nil {
		return v.Results, err
	}

	suits, ranks := identifiers()
	v.validateCore(suits, ranks)
	v.validateLanguages(suits, ranks)

	return v.Results, nil
}

// validateBundle loads the directory. Only a missing directory is fatal;
// unreadable files are reported as validation errors.
func (v *Validator) validateBundle() error {
	if _, err := os.Stat(v.LocaleDir); os.IsNotExist(err) {
		return fmt.Errorf("locale directory not found: %s", v.LocaleDir)
	}

	if _, err := os.Stat(filepath.Join(v.LocaleDir, locale.CoreFile)); os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s not found, weights and symbols must come from language files", locale.CoreFile))
	}

	bundle, err := locale.LoadDir(v.LocaleDir, v.Fallback)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return nil
	}
	v.bundle = bundle
	return nil
}

// validateCore checks the entries that every language shares.
func (v *Validator) validateCore(suits, ranks []card.Identifier) {
	if v.bundle == nil {
		return
	}

	for _, id := range ranks {
		if !v.bundle.Has(v.Fallback, id.Key(locale.Weight)) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("no default weight for rank %s (%s)", id, id.Key(locale.Weight)))
		}
	}

	for _, id := range suits {
		if _, err := v.bundle.Lookup(v.Fallback, id.Key(locale.Symbol)); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("missing symbol for suit %s (%s)", id, id.Key(locale.Symbol)))
		}
	}
}

// validateLanguages checks display keys per language. A key missing from
// the fallback language is an error; elsewhere it is a warning because
// the fallback covers it.
func (v *Validator) validateLanguages(suits, ranks []card.Identifier) {
	if v.bundle == nil {
		return
	}

	var keys []string
	for _, id := range suits {
		keys = append(keys, id.Key(locale.Long), id.Key(locale.Letter))
	}
	for _, id := range ranks {
		keys = append(keys, id.Key(locale.Index), id.Key(locale.Long))
	}
	keys = append(keys, card.Of.Key(locale.Long))

	for _, lang := range v.bundle.Languages() {
		for _, key := range keys {
			if v.bundle.Has(lang, key) {
				continue
			}
			if lang == v.bundle.Fallback() {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("missing %s in fallback language %s", key, lang))
			} else {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("missing %s in %s, falls back to %s", key, lang, v.bundle.Fallback()))
			}
		}
	}
}

// identifiers collects every suit and rank used by the deck variants.
func identifiers() (suits, ranks []card.Identifier) {
	seenSuits := make(map[card.Identifier]bool)
	seenRanks := make(map[card.Identifier]bool)

	for _, f := range deck.Families() {
		for _, c := range f.Build().Cards() {
			if !seenSuits[c.Suit.Name] {
				seenSuits[c.Suit.Name] = true
				suits = append(suits, c.Suit.Name)
			}
			if !seenRanks[c.Rank.Name] {
				seenRanks[c.Rank.Name] = true
				ranks = append(ranks, c.Rank.Name)
			}
		}
	}

	sort.Slice(suits, func(i, j int) bool { return suits[i] < suits[j] })
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return suits, ranks
}
