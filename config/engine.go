package config

import (
	"log"
	"os"
	"sync"

	"github.com/ethoz1970/congress-directory/facet"
)

var (
	engineOpts     facet.Options
	engineOptsOnce sync.Once
)

// EngineOptions reads the facet engine's missing-data policy from the
// environment, once. The default keeps the legacy behavior (missing
// birthday sorts as the epoch, missing first term lands in the lowest
// years bucket); DIRECTORY_STRICT_MISSING=true excludes such members
// from the affected sort and facet instead.
func EngineOptions() facet.Options {
	engineOptsOnce.Do(func() {
		if os.Getenv("DIRECTORY_STRICT_MISSING") == "true" {
			log.Println("✅ Strict missing-data mode enabled for the facet engine")
			engineOpts = facet.Options{
				ExcludeMissingBirthday:  true,
				ExcludeMissingFirstTerm: true,
			}
		}
	})
	return engineOpts
}
