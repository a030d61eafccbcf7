package locale

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle loads the TOML message file for every supported language from
// dir. Missing files are an error: every supported code must ship a bundle.
func NewBundle(dir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range supportedLanguages {
		path := filepath.Join(dir, fmt.Sprintf("messages.%v.toml", lang))
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("load message file for %s: %w", lang, err)
		}
	}

	return bundle, nil
}
