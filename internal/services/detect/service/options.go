package service

import (
	"strings"

	"wordlang/internal/adapters/ingest/reader"
	"wordlang/internal/platform/config"
	"wordlang/internal/platform/net/http/bind"
	"wordlang/internal/services/detect/domain"
)

// Options holds the detect service defaults. Requests may override
// granularity and margin
type Options struct {
	Granularity domain.Granularity `validate:"oneof=language variant"`
	Margin      uint32             `validate:"lt=100"`
	Workers     int                `validate:"min=1,max=64"`
	ChunkSize   int                `validate:"min=4"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Granularity: domain.GranularityLanguage,
		Margin:      95,
		Workers:     4,
		ChunkSize:   reader.DefaultChunkSize,
	}
}

// OptionsFromConfig reads CORE_DETECT_* keys on top of the defaults
func OptionsFromConfig(cfg config.Conf) Options {
	def := DefaultOptions()
	df := cfg.Prefix("CORE_DETECT_")
	g := df.MayEnum("GRANULARITY", string(def.Granularity),
		string(domain.GranularityLanguage), string(domain.GranularityVariant))
	return Options{
		Granularity: domain.Granularity(strings.ToLower(g)),
		Margin:      uint32(max(df.MayInt("MARGIN", int(def.Margin)), 0)),
		Workers:     df.MayInt("WORKERS", def.Workers),
		ChunkSize:   df.MayInt("CHUNK_SIZE", def.ChunkSize),
	}
}

// Validate checks o against its struct tags
func (o Options) Validate() error { return bind.Struct(o) }
