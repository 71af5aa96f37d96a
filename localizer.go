package njson

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

// Localizer renders a ValidationError's Code/Params pair in a target
// locale: a Bundle loaded from embedded locales/*.json files, keyed by the
// same Code strings result.go emits.
type Localizer = i18n.Localizer

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an initialized internationalization bundle with the embedded
// locale catalogues.
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// NewLocalizer returns a Localizer for locale (e.g. "en", "zh-Hans"),
// falling back to the bundle's default locale for an unrecognised one.
func NewLocalizer(locale string) (*Localizer, error) {
	bundle, err := I18n()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(locale), nil
}
