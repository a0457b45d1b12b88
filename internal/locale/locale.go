// Package locale resolves user-facing messages by (locale tag, message key)
// from embedded YAML tables. Tables are parsed once at first use; unknown
// locales and unknown keys fall back to English, then to the key itself.
// Log output is not localized.
package locale

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// Supported lists the locale tags shipped with the binary.
var Supported = []string{"en", "fr", "pt"}

const fallback = "en"

var (
	loadOnce sync.Once
	catalogs map[string]map[string]string
)

func load() {
	catalogs = make(map[string]map[string]string, len(Supported))
	for _, tag := range Supported {
		data, err := messagesFS.ReadFile("messages/" + tag + ".yaml")
		if err != nil {
			// Embedded files are part of the build; a miss is a packaging bug.
			panic(fmt.Sprintf("locale: embedded table %s: %v", tag, err))
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			panic(fmt.Sprintf("locale: parse table %s: %v", tag, err))
		}
		catalogs[tag] = table
	}
}

// IsSupported reports whether tag names a shipped locale.
func IsSupported(tag string) bool {
	for _, t := range Supported {
		if t == tag {
			return true
		}
	}
	return false
}

// T resolves key in the given locale and formats it with args.
func T(tag, key string, args ...any) string {
	loadOnce.Do(load)
	msg, ok := catalogs[tag][key]
	if !ok {
		msg, ok = catalogs[fallback][key]
	}
	if !ok {
		msg = key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
