// Package http serves the meta endpoints: liveness, readiness, build and detector tables
package http

import (
	stdctx "context"
	"net/http"
	"time"
	"unicode"

	"wordlang/internal/core/lang"
	"wordlang/internal/core/script"
	"wordlang/internal/core/version"
	"wordlang/internal/modkit/httpkit"
)

// checkTimeout bounds all readiness checks together
const checkTimeout = 2 * time.Second

// Check is a named readiness probe
type Check struct {
	Name string
	Fn   func(stdctx.Context) error
}

// Deps are what the meta handlers report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Check
}

// HealthResponse answers /health
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck is one probe outcome, status is "ok" or "fail"
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse fails when any check fails
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse answers /service, Uptime is in seconds
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// DetectorResponse describes the tables detection runs on
type DetectorResponse struct {
	Unicode   string            `json:"unicode"`
	Scripts   int               `json:"scripts"`
	Languages int               `json:"languages"`
	Variants  int               `json:"variants"`
	Build     version.BuildInfo `json:"build"`
}

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	stamp := func(t time.Time) string { return t.UTC().Format(time.RFC3339) }

	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(time.Now())}, nil
	})

	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) {
		return ready(req.Context(), d.Checks, stamp(time.Now())), nil
	})

	httpkit.Get(r, "/version", func(*http.Request) (any, error) {
		return version.Info(), nil
	})

	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: stamp(d.StartedAt),
			Uptime:  int64(time.Since(d.StartedAt) / time.Second),
		}, nil
	})

	httpkit.Get(r, "/detector", func(*http.Request) (any, error) {
		return DetectorResponse{
			Unicode:   unicode.Version,
			Scripts:   script.Count,
			Languages: lang.LanguageCount,
			Variants:  lang.VariantCount(),
			Build:     version.Info(),
		}, nil
	})
}

func ready(ctx stdctx.Context, checks []Check, now string) ReadyResponse {
	ctx, cancel := stdctx.WithTimeout(ctx, checkTimeout)
	defer cancel()

	res := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(checks)), Now: now}
	for _, c := range checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if err := c.Fn(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			res.Status = "fail"
		}
		res.Checks = append(res.Checks, rc)
	}
	return res
}
