// Package i18n resolves translation tokens used by command labels and
// tooltips. Catalogs are embedded YAML files, one per locale, and are compiled
// into an x/text catalog so formatted messages such as "%d Selected" follow
// the locale's number formatting.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the parsed catalogs for every locale.
type Bundle struct {
	messages map[string]map[string]string
	builder  *catalog.Builder
}

var defaultBundle = mustLoad()

func mustLoad() *Bundle {
	b, err := LoadFromFS(embeddedLocales)
	if err != nil {
		panic(fmt.Errorf("i18n: load embedded catalogs: %w", err))
	}
	return b
}

// Default returns the bundle built from the embedded catalogs.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS parses locales/*.yaml from the supplied filesystem.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: map[string]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if _, exists := b.messages[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q defined twice", path, locale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
	}
	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", path, key, err)
		}
		msgs[key] = value
	}
	b.messages[locale] = msgs
	return nil
}

// Locales lists the available locale identifiers in sorted order.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether a catalog exists for locale.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Translator formats tokens for one locale.
type Translator struct {
	locale  string
	bundle  *Bundle
	printer *message.Printer
}

// New returns a translator for locale using the default bundle.
func New(locale string) (*Translator, error) {
	return Default().Translator(locale)
}

// English returns the base-locale translator.
func English() *Translator {
	t, err := Default().Translator(BaseLocale)
	if err != nil {
		panic(err)
	}
	return t
}

// Translator builds a translator for locale. Unknown locales are an error.
func (b *Bundle) Translator(locale string) (*Translator, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = BaseLocale
	}
	if !b.HasLocale(locale) {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	tag := language.MustParse(locale)
	return &Translator{
		locale:  locale,
		bundle:  b,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}, nil
}

// Locale returns the translator's locale identifier.
func (t *Translator) Locale() string {
	if t == nil {
		return BaseLocale
	}
	return t.locale
}

// Has reports whether token is a registered message key in this locale or
// the base locale.
func (t *Translator) Has(token string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.bundle.messages[t.locale][token]; ok {
		return true
	}
	_, ok := t.bundle.messages[BaseLocale][token]
	return ok
}

// T formats a registered token with args. Tokens without a catalog entry are
// literal strings and are returned unchanged.
func (t *Translator) T(token string, args ...interface{}) string {
	if t == nil || !t.Has(token) {
		return token
	}
	return t.printer.Sprintf(token, args...)
}
