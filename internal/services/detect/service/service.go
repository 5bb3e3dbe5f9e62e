// Package service implements detect business logic
package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"wordlang/internal/adapters/ingest/reader"
	"wordlang/internal/core/langhint"
	"wordlang/internal/core/normalize"
	"wordlang/internal/core/segment"
	"wordlang/internal/core/tally"
	perr "wordlang/internal/platform/errors"
	"wordlang/internal/platform/logger"
	"wordlang/internal/platform/net/http/bind"
	str "wordlang/internal/platform/strings"
	"wordlang/internal/services/detect/domain"
)

// checkEvery is how many words run between context checks
const checkEvery = 256

// Service runs segmentation and scoring for the transports
type Service struct {
	opt Options
}

var _ domain.DetectorPort = (*Service)(nil)

// New validates opt and returns a service
func New(opt Options) (*Service, error) {
	if err := opt.Validate(); err != nil {
		return nil, perr.WithOp(err, "detect.New")
	}
	return &Service{opt: opt}, nil
}

// Options returns the configured defaults
func (s *Service) Options() Options { return s.opt }

// query is one resolved request
type query struct {
	g      domain.Granularity
	margin uint32
	only   []string
	words  bool
}

func (s *Service) query(g domain.Granularity, margin *uint32, only []string, words bool) query {
	q := query{g: s.opt.Granularity, margin: s.opt.Margin, only: only, words: words}
	if g != "" {
		q.g = g
	}
	if margin != nil {
		q.margin = *margin
	}
	return q
}

// Words segments in.Text and returns each word with its guesses
func (s *Service) Words(ctx context.Context, in domain.DetectInput) ([]domain.WordResult, error) {
	in.Words = true
	res, err := s.Detect(ctx, in)
	if err != nil {
		return nil, err
	}
	if res.Words == nil {
		res.Words = []domain.WordResult{}
	}
	return res.Words, nil
}

// Detect scores in.Text as one document
func (s *Service) Detect(ctx context.Context, in domain.DetectInput) (domain.Result, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Result{}, err
	}
	logger.C(ctx).Trace().Str("text", str.Preview(in.Text, 64)).Msg("detect")
	q := s.query(in.Granularity, in.Margin, in.Only, in.Words)
	return s.dispatch(ctx, normalize.FromString(in.Text), q)
}

// DetectReader scores r without holding it in memory. in.Text is ignored
func (s *Service) DetectReader(ctx context.Context, r io.Reader, in domain.DetectInput) (domain.Result, error) {
	return s.DetectSource(ctx, reader.New(r, s.opt.ChunkSize), in)
}

// DetectSource scores characters pulled from src. A source with an Err
// method reports its failure through the result error. in.Text is ignored
func (s *Service) DetectSource(ctx context.Context, src normalize.Source, in domain.DetectInput) (domain.Result, error) {
	in.Text = "-"
	if err := bind.Struct(in); err != nil {
		return domain.Result{}, err
	}
	q := s.query(in.Granularity, in.Margin, in.Only, in.Words)
	return s.dispatch(ctx, src, q)
}

// DetectBatch scores every text on a bounded pool. Results keep input order;
// the first failing text by index is reported
func (s *Service) DetectBatch(ctx context.Context, in domain.BatchInput) ([]domain.Result, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	q := s.query(in.Granularity, in.Margin, in.Only, false)
	batchSize.Observe(float64(len(in.Texts)))

	out := make([]domain.Result, len(in.Texts))
	errs := make([]error, len(in.Texts))

	sem := make(chan struct{}, s.opt.Workers)
	var wg sync.WaitGroup
	for i, text := range in.Texts {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() { <-sem; wg.Done() }()
			out[i], errs[i] = s.dispatch(ctx, normalize.FromString(text), q)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, perr.WithField(err, fmt.Sprintf("texts[%d]", i))
		}
	}
	return out, nil
}

// Languages lists the candidates at granularity g, the configured default when empty
func (s *Service) Languages(g domain.Granularity) ([]domain.LanguageInfo, error) {
	if g == "" {
		g = s.opt.Granularity
	}
	switch g {
	case domain.GranularityLanguage:
		return languages.infos(), nil
	case domain.GranularityVariant:
		return variants.infos(), nil
	default:
		return nil, perr.WithField(perr.InvalidArgf("unknown granularity %q", g), "granularity")
	}
}

func (s *Service) dispatch(ctx context.Context, src normalize.Source, q query) (domain.Result, error) {
	start := time.Now()

	var (
		res domain.Result
		err error
	)
	switch q.g {
	case domain.GranularityVariant:
		res, err = run(ctx, variants, src, q)
	default:
		res, err = run(ctx, languages, src, q)
	}
	observe(q.g, start, res, err)

	l := logger.C(ctx)
	if err != nil {
		l.Debug().Err(err).Str("granularity", string(q.g)).Msg("detect failed")
		return res, err
	}
	l.Debug().
		Str("granularity", string(q.g)).
		Int("words", res.WordCount).
		Int("letters", res.Letters).
		Str("best", res.Best).
		Dur("took", time.Since(start)).
		Msg("detect done")
	return res, nil
}

// run drives one text through normalize, segment and the accumulator
func run[L ~uint16](ctx context.Context, c catalog[L], src normalize.Source, q query) (domain.Result, error) {
	out := domain.Result{Granularity: q.g, Langs: []domain.Guess{}}

	only, err := c.filter(q.only)
	if err != nil {
		return out, err
	}

	seg := segment.New(normalize.New(src), c.resolver())
	var acc langhint.Accumulator[L]
	n := 0
	for w := range seg.All() {
		if n++; n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return out, perr.Wrap(err, perr.ErrorCodeUnknown, "detect cancelled")
			}
		}
		acc.Add(w)
		if q.words {
			out.Words = append(out.Words, domain.WordResult{
				Text:  normalize.Display(w.Text),
				Start: w.Start,
				End:   w.End,
				Langs: c.guesses(tally.FilterWithMarginSorted[L](w.Counts, q.margin), only),
			})
		}
	}
	if err := seg.Err(); err != nil {
		return out, err
	}

	sum := acc.Summary(q.margin)
	out.Letters, out.WordCount = sum.Letters, sum.Words
	if sum.Letters > 0 {
		out.Script = sum.Script.String()
	}
	out.Langs = c.guesses(sum.Langs, only)
	// best only when one guess strictly leads
	if len(out.Langs) == 1 || (len(out.Langs) > 1 && out.Langs[0].Count > out.Langs[1].Count) {
		out.Best = out.Langs[0].Code
	}
	return out, nil
}
