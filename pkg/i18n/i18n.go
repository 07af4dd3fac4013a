// Package i18n resolves the localized user-facing strings for the contact
// pipeline. Message bundles are embedded so the binary ships self-contained;
// English is the fallback language, Vietnamese is the second site locale.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var localeFiles = []string{
	"locales/en.json",
	"locales/vi.json",
}

// Translator owns the message bundle. One instance per process.
type Translator struct {
	bundle *goi18n.Bundle
}

func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: failed to load %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Localizer builds a per-request locale from language preferences.
// Accepts raw Accept-Language header values.
func (t *Translator) Localizer(langs ...string) *Locale {
	return &Locale{loc: goi18n.NewLocalizer(t.bundle, langs...)}
}

// Locale resolves message IDs for one request's negotiated language.
type Locale struct {
	loc *goi18n.Localizer
}

// T returns the localized string for the given message ID.
// Unknown IDs fall back to the ID itself rather than failing the request.
func (l *Locale) T(id string) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
