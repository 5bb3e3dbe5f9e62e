// Package http provides http transport for detect
package http

import (
	"errors"
	stdhttp "net/http"
	"strconv"
	"strings"

	"wordlang/internal/modkit/httpkit"
	perr "wordlang/internal/platform/errors"
	"wordlang/internal/services/detect/domain"
)

// Options tunes the transport
type Options struct {
	// MaxBytes caps JSON and raw bodies
	MaxBytes int64
	// Origins allowed to open a stream, empty allows any
	Origins []string
}

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s domain.DetectorPort, opt Options) {
	if opt.MaxBytes <= 0 {
		opt.MaxBytes = 1 << 20
	}
	h := &handlers{svc: s, opt: opt}
	jo := httpkit.JSONOptions{MaxBytes: opt.MaxBytes, DisallowUnknown: true}

	httpkit.PostJSON[domain.DetectInput](r, "/text", h.detect, jo)
	httpkit.PostJSON[domain.DetectInput](r, "/words", h.words, jo)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch, jo)
	httpkit.Post(r, "/raw", h.raw)
	httpkit.Get(r, "/languages", h.languages)
	r.Get("/stream", h.stream)
}

type handlers struct {
	svc domain.DetectorPort
	opt Options
}

// swagger:route POST /detect/text Detect detectText
// @Summary Detect the language of a text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text and overrides"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} errors.Wire "validation"
// @Failure 413 {object} errors.Wire "body too large"
// @Router /detect/text [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /detect/words Detect detectWords
// @Summary Segment a text into words with per-word guesses
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text and overrides"
// @Success 200 {array} domain.WordResult "ok"
// @Router /detect/words [post]
func (h *handlers) words(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Words(r.Context(), in)
}

// swagger:route POST /detect/batch Detect detectBatch
// @Summary Detect several texts at once
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Texts"
// @Success 200 {array} domain.Result "ok, in input order"
// @Router /detect/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.DetectBatch(r.Context(), in)
}

// swagger:route POST /detect/raw Detect detectRaw
// @Summary Detect a plain text body without buffering it
// @Tags Detect
// @Accept plain
// @Produce json
// @Param granularity query string false "language or variant"
// @Param margin query int false "percent of the top count a guess must exceed"
// @Param only query string false "comma separated BCP-47 codes"
// @Param words query bool false "include per-word results"
// @Success 200 {object} domain.Result "ok"
// @Failure 422 {object} errors.Wire "body is not UTF-8"
// @Router /detect/raw [post]
func (h *handlers) raw(r *stdhttp.Request) (any, error) {
	in, err := queryInput(r)
	if err != nil {
		return nil, err
	}
	body := stdhttp.MaxBytesReader(nil, r.Body, h.opt.MaxBytes)
	defer func() { _ = body.Close() }()

	res, err := h.svc.DetectReader(r.Context(), body, in)
	var tooBig *stdhttp.MaxBytesError
	if errors.As(err, &tooBig) {
		return nil, perr.TooLargef("body exceeds %d bytes", tooBig.Limit)
	}
	return res, err
}

// swagger:route GET /detect/languages Detect detectLanguages
// @Summary List candidate languages
// @Tags Detect
// @Produce json
// @Param granularity query string false "language or variant"
// @Success 200 {array} domain.LanguageInfo "ok"
// @Router /detect/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.Languages(domain.Granularity(r.URL.Query().Get("granularity")))
}

// queryInput reads request overrides from the query string
func queryInput(r *stdhttp.Request) (domain.DetectInput, error) {
	q := r.URL.Query()
	in := domain.DetectInput{Granularity: domain.Granularity(q.Get("granularity"))}
	if v := q.Get("margin"); v != "" {
		m, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return in, perr.WithField(perr.InvalidArgf("margin must be an integer"), "margin")
		}
		m32 := uint32(m)
		in.Margin = &m32
	}
	if v := q.Get("only"); v != "" {
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				in.Only = append(in.Only, code)
			}
		}
	}
	if v := q.Get("words"); v != "" {
		w, err := strconv.ParseBool(v)
		if err != nil {
			return in, perr.WithField(perr.InvalidArgf("words must be a boolean"), "words")
		}
		in.Words = w
	}
	return in, nil
}
