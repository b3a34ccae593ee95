// Package sheetpress compresses spreadsheet grids into compact textual
// encodings suitable for LLM context windows.
package sheetpress

import (
	"fmt"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/compressor"
)

// Options configures a compression run.
type Options struct {
	// Sheet is an optional sheet name carried into the encoding.
	Sheet string `yaml:"sheet"`
	// AnchorK overrides the number of rows/columns kept at each edge of an
	// elided homogeneous run. If nil, defaults to 1.
	AnchorK *int `yaml:"anchor_k"`
	// BoundaryDistance overrides the empty-transition adjacency distance
	// for anchor detection. If nil, defaults to 0.
	BoundaryDistance *int `yaml:"boundary_distance"`
	// SimilarityThreshold overrides the signature similarity threshold for
	// anchor detection. If nil, defaults to 0.8.
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	// Empty selects the empty-cell policy ("skip" or "index").
	// If empty, defaults to skip.
	Empty compressor.EmptyPolicy `yaml:"empty"`
}

// DefaultOptions returns the default compression options.
func DefaultOptions() Options {
	return Options{}
}

// Validate checks that option values are recognized.
func (o Options) Validate() error {
	switch o.Empty {
	case "", compressor.SkipEmpty, compressor.IndexEmpty:
	default:
		return fmt.Errorf("invalid empty-cell policy %q", o.Empty)
	}
	if o.AnchorK != nil && *o.AnchorK < 0 {
		return fmt.Errorf("invalid anchor k %d", *o.AnchorK)
	}
	if o.BoundaryDistance != nil && *o.BoundaryDistance < 0 {
		return fmt.Errorf("invalid boundary distance %d", *o.BoundaryDistance)
	}
	if o.SimilarityThreshold != nil && (*o.SimilarityThreshold < 0 || *o.SimilarityThreshold > 1) {
		return fmt.Errorf("invalid similarity threshold %v", *o.SimilarityThreshold)
	}
	return nil
}

func (o Options) anchorParams() compressor.AnchorParams {
	p := compressor.DefaultAnchorParams()
	if o.AnchorK != nil {
		p.K = *o.AnchorK
	}
	if o.BoundaryDistance != nil {
		p.BoundaryDistance = *o.BoundaryDistance
	}
	if o.SimilarityThreshold != nil {
		p.SimilarityThreshold = *o.SimilarityThreshold
	}
	return p
}

func (o Options) emptyPolicy() compressor.EmptyPolicy {
	if o.Empty == "" {
		return compressor.SkipEmpty
	}
	return o.Empty
}
