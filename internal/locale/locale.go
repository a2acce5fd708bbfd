package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Suffixes appended to an identifier to form a template key.
const (
	Weight = "weight"
	Index  = "index"
	Long   = "long"
	Symbol = "symbol"
	Letter = "letter"
)

// CoreFile holds the entries shared by every language.
const CoreFile = "core.toml"

var (
	USEnglish = language.MustParse("en-US")
	German    = language.German
)

// ErrLookupMiss is returned when a key is absent from both the requested
// and the fallback language.
var ErrLookupMiss = errors.New("locale key not found")

//go:embed locales/*.toml
var localeFS embed.FS

// Resolver maps a language and a template key to display text.
type Resolver interface {
	Lookup(lang language.Tag, key string) (string, error)
}

// Bundle is a set of per-language templates plus a shared core table.
type Bundle struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	tables   map[language.Tag]map[string]string
	core     map[string]string
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the bundle compiled into the binary (en-US and de,
// falling back to en-US).
func Default() *Bundle {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(localeFS, "locales")
		if err == nil {
			defaultBundle, err = Load(sub, USEnglish)
		}
		if err != nil {
			panic(fmt.Sprintf("embedded locales: %v", err))
		}
	})
	return defaultBundle
}

// Key joins an identifier and a suffix into a template key.
func Key(id, suffix string) string {
	return id + "-" + suffix
}

// LoadDir loads every <tag>.toml file and an optional core.toml from dir.
func LoadDir(dir string, fallback language.Tag) (*Bundle, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("locale directory %s: %w", dir, err)
	}
	return Load(os.DirFS(dir), fallback)
}

// Load reads locale templates from the root of fsys.
func Load(fsys fs.FS, fallback language.Tag) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	b := &Bundle{
		fallback: fallback,
		tables:   make(map[language.Tag]map[string]string),
		core:     make(map[string]string),
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}

		table, err := decodeFile(fsys, entry.Name())
		if err != nil {
			return nil, err
		}

		if entry.Name() == CoreFile {
			b.core = table
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".toml"))
		if err != nil {
			return nil, fmt.Errorf("invalid language file name %s: %w", entry.Name(), err)
		}
		b.tables[tag] = table
	}

	if _, ok := b.tables[fallback]; !ok {
		return nil, fmt.Errorf("fallback language %s has no locale file", fallback)
	}

	// The fallback goes first so the matcher defaults to it.
	b.tags = append(b.tags, fallback)
	var rest []language.Tag
	for tag := range b.tables {
		if tag != fallback {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	b.tags = append(b.tags, rest...)
	b.matcher = language.NewMatcher(b.tags)

	return b, nil
}

func decodeFile(fsys fs.FS, name string) (map[string]string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}

	var values map[string]any
	if _, err := toml.Decode(string(raw), &values); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", name, err)
	}

	table := make(map[string]string, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case string:
			table[key] = v
		case int64:
			table[key] = strconv.FormatInt(v, 10)
		case float64, bool:
			table[key] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("%s: key %q must be a string or number", name, key)
		}
	}
	return table, nil
}

// Fallback returns the language used when a key is missing.
func (b *Bundle) Fallback() language.Tag {
	return b.fallback
}

// Languages returns the carried languages, fallback first.
func (b *Bundle) Languages() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Match returns the carried language closest to lang, or the fallback.
func (b *Bundle) Match(lang language.Tag) language.Tag {
	if _, ok := b.tables[lang]; ok {
		return lang
	}
	_, i, confidence := b.matcher.Match(lang)
	if confidence == language.No {
		return b.fallback
	}
	return b.tags[i]
}

// Lookup resolves key for lang, then the shared core table, then the
// fallback language.
func (b *Bundle) Lookup(lang language.Tag, key string) (string, error) {
	if s, ok := b.tables[b.Match(lang)][key]; ok {
		return s, nil
	}
	if s, ok := b.core[key]; ok {
		return s, nil
	}
	if s, ok := b.tables[b.fallback][key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q (%s, fallback %s)", ErrLookupMiss, key, lang, b.fallback)
}

// Has reports whether key resolves for lang without using the fallback.
func (b *Bundle) Has(lang language.Tag, key string) bool {
	if _, ok := b.tables[lang][key]; ok {
		return true
	}
	_, ok := b.core[key]
	return ok
}

// Weight returns the default weight template entry for id, or 0.
func (b *Bundle) Weight(id string) int {
	s, err := b.Lookup(b.fallback, Key(id, Weight))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
