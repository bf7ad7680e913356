package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference matches a catalog language.
const DefaultLanguage = "en"

// kindsKey holds per-kind overrides inside a language section.
const kindsKey = "kinds"

type entries struct {
	shared map[string]string
	kinds  map[string]map[string]string
}

// Catalog holds message templates per language.
type Catalog struct {
	langs       map[string]entries
	tags        []language.Tag
	names       []string
	matcher     language.Matcher
	defaultLang string
	logger      *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when nothing matches.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger for load diagnostics. A discard logger is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog loads catalog data from adapter.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		langs:       make(map[string]entries),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	data, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, raw := range data {
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
		}
		e, err := c.flatten(lang, raw)
		if err != nil {
			return nil, err
		}
		c.langs[lang] = e
		c.names = append(c.names, lang)
	}
	sort.Strings(c.names)

	for _, name := range c.names {
		c.tags = append(c.tags, language.Make(name))
	}
	c.matcher = language.NewMatcher(c.tags)

	c.logger.InfoContext(ctx, "message catalog loaded", "languages", c.names)
	return c, nil
}

func (c *Catalog) flatten(lang string, raw map[string]any) (entries, error) {
	e := entries{shared: make(map[string]string), kinds: make(map[string]map[string]string)}
	for key, val := range raw {
		if key == kindsKey {
			kinds, ok := val.(map[string]any)
			if !ok {
				return e, fmt.Errorf("%w: %s.%s: expected map, got %T", ErrInvalidCatalog, lang, kindsKey, val)
			}
			for kind, kval := range kinds {
				km, ok := kval.(map[string]any)
				if !ok {
					return e, fmt.Errorf("%w: %s.%s.%s: expected map, got %T", ErrInvalidCatalog, lang, kindsKey, kind, kval)
				}
				e.kinds[kind] = c.strings(lang, km)
			}
			continue
		}
		if s, ok := val.(string); ok {
			e.shared[key] = s
			continue
		}
		c.logger.Warn("skipping non-string catalog entry", "language", lang, "key", key)
	}
	return e, nil
}

func (c *Catalog) strings(lang string, raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			c.logger.Warn("skipping non-string catalog entry", "language", lang, "key", key)
			continue
		}
		out[key] = s
	}
	return out
}

// Languages returns the catalog languages in sorted order.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.names...)
}

// Match returns the catalog language that best serves pref, which is a
// single tag ("de-CH") or an Accept-Language list ("fr-CA, de;q=0.8").
// The default language is returned when nothing matches.
func (c *Catalog) Match(pref string) string {
	if len(c.tags) == 0 || pref == "" {
		return c.defaultLang
	}
	if _, ok := c.langs[pref]; ok {
		return pref
	}

	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.names[idx]
}

// Messages returns the templates shared by every kind for the best match of
// pref. Nil is returned when no language matches.
func (c *Catalog) Messages(pref string) map[string]string {
	e, ok := c.langs[c.Match(pref)]
	if !ok {
		return nil
	}
	return maps.Clone(e.shared)
}

// KindMessages returns the shared templates overlaid with those declared for
// kind, such as "DateTime" or "IntField".
func (c *Catalog) KindMessages(pref, kind string) map[string]string {
	e, ok := c.langs[c.Match(pref)]
	if !ok {
		return nil
	}
	out := maps.Clone(e.shared)
	maps.Copy(out, e.kinds[kind])
	return out
}
