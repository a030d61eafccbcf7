package locale_fx

import (
	"log"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/fx"

	"taskly/internal/api/controllers"
	"taskly/internal/locale"
	mem "taskly/pkg/memcache"
)

var Module = fx.Provide(
	provideBundle, provideLanguageStore, provideLocaleController)

// provideBundle loads the message catalogs. A load failure is not fatal:
// sessions report not-ready and render placeholders until a restart fixes it.
func provideBundle() *i18n.Bundle {
	dir := os.Getenv("LOCALE_DIR")
	if dir == "" {
		dir = "localization"
	}

	bundle, err := locale.NewBundle(dir)
	if err != nil {
		log.Printf("Message bundle unavailable: %v", err)
		return nil
	}
	return bundle
}

func provideLanguageStore() locale.PreferenceStore {
	return mem.NewLanguagePreferences()
}

func provideLocaleController() *controllers.LocaleController {
	return controllers.NewLocaleController()
}
