// Package i18n holds the translation catalog for rendered diagnostics.
//
// The catalog is built from the embedded active.<code>.toml locale files.
// The set of recognized language codes is exactly the set of embedded
// files, and every message key must exist in every locale; Load fails
// otherwise, so a missing translation can never surface at render time.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// ErrUnknownLanguage is returned when a language code is outside the
// recognized set.
var ErrUnknownLanguage = errors.New("unknown language")

// Catalog resolves message keys against the recognized locales.
type Catalog struct {
	bundle  *i18n.Bundle
	locales map[string]struct{}
	keys    []string
}

// Load builds a Catalog from the embedded locale files and validates that
// every locale covers the same message keys.
func Load() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locale files: %w", err)
	}

	locales := make(map[string]struct{})
	keySets := make(map[string][]string)

	for _, entry := range entries {
		name := entry.Name()
		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".toml")

		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}

		// The bundle does not expose loaded message IDs, so collect the
		// key set from the TOML directly for the exhaustiveness check.
		var messages map[string]any
		if err := toml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		locales[code] = struct{}{}
		keySets[code] = keys
	}

	if len(locales) < 2 {
		return nil, fmt.Errorf("expected a primary and a secondary locale, got %d locale file(s)", len(locales))
	}

	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	ref := keySets[codes[0]]
	for _, code := range codes[1:] {
		if missing := diff(ref, keySets[code]); len(missing) > 0 {
			return nil, fmt.Errorf("locale %s is missing message keys: %s", code, strings.Join(missing, ", "))
		}
		if extra := diff(keySets[code], ref); len(extra) > 0 {
			return nil, fmt.Errorf("locale %s is missing message keys: %s", codes[0], strings.Join(extra, ", "))
		}
	}

	return &Catalog{
		bundle:  bundle,
		locales: locales,
		keys:    ref,
	}, nil
}

// diff returns the elements of want absent from got. Both slices are sorted.
func diff(want, got []string) []string {
	var missing []string
	for _, key := range want {
		if _, found := slices.BinarySearch(got, key); !found {
			missing = append(missing, key)
		}
	}
	return missing
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the embedded locale
// files. The embedded catalog ships with the binary, so a load failure is a
// build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := Load()
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded catalog: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Recognized reports whether lang is one of the recognized language codes.
func (c *Catalog) Recognized(lang string) bool {
	_, ok := c.locales[lang]
	return ok
}

// Languages returns the recognized language codes in sorted order.
func (c *Catalog) Languages() []string {
	codes := make([]string, 0, len(c.locales))
	for code := range c.locales {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Keys returns the message keys every locale covers, in sorted order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Render resolves key for lang, substituting data into the locale's
// template. A code outside the recognized set yields ErrUnknownLanguage
// before any lookup; there is no fallback locale.
func (c *Catalog) Render(lang, key string, data map[string]any) (string, error) {
	if !c.Recognized(lang) {
		return "", ErrUnknownLanguage
	}

	localizer := i18n.NewLocalizer(c.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render message %s for locale %s: %w", key, lang, err)
	}
	return msg, nil
}
