package domain

import (
	"context"
	"io"
)

// DetectorPort is the contract transports call into
type DetectorPort interface {
	// Words segments in.Text and returns every word with its margin-filtered guesses
	Words(ctx context.Context, in DetectInput) ([]WordResult, error)

	// Detect scores in.Text as a whole document
	Detect(ctx context.Context, in DetectInput) (Result, error)

	// DetectReader scores a byte stream without buffering it; in.Text is ignored
	DetectReader(ctx context.Context, r io.Reader, in DetectInput) (Result, error)

	// DetectBatch scores several texts concurrently, results keep input order
	DetectBatch(ctx context.Context, in BatchInput) ([]Result, error)

	// Languages lists the candidate enumeration at granularity g
	Languages(g Granularity) ([]LanguageInfo, error)
}
