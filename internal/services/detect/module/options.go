package module

import (
	"wordlang/internal/platform/config"
	detecthttp "wordlang/internal/services/detect/http"
	"wordlang/internal/services/detect/service"
)

// Options controls the detect service and its transport
type Options struct {
	Service service.Options
	HTTP    detecthttp.Options
}

// FromConfig reads CORE_DETECT_* keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_DETECT_")
	return Options{
		Service: service.OptionsFromConfig(cfg),
		HTTP: detecthttp.Options{
			MaxBytes: int64(c.MayInt("MAX_BYTES", 1<<20)),
			Origins:  c.MayCSV("STREAM_ORIGINS", nil),
		},
	}
}
