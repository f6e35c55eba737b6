// Package resolve converts free-text Hebrew settlement names into the
// Kod Yeshuv codes the upstream search payload requires.
package resolve

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/infra/cache"
	"github.com/landbridge/michrazim/internal/metrics"
)

// DefaultThreshold is the minimum similarity score a fuzzy candidate
// must reach to be accepted. Below it the resolver refuses to guess.
// This is a policy knob, not a correctness fact; override via config.
const DefaultThreshold = 0.60

const catalogKey = "settlements"

// ErrNoConfidentMatch is returned when no catalog entry scores above
// the acceptance threshold. Callers should surface it as "not found",
// not as a system failure.
type ErrNoConfidentMatch struct {
	Name      string
	Best      string
	BestScore float64
}

func (e *ErrNoConfidentMatch) Error() string {
	if e.Best == "" {
		return fmt.Sprintf("no settlement matches %q", e.Name)
	}
	return fmt.Sprintf("no confident settlement match for %q (best %q at %.2f)", e.Name, e.Best, e.BestScore)
}

// Match is a resolved settlement: the official code, the catalog's
// display name for "did you mean" feedback, and the similarity score
// (1.0 for exact matches).
type Match struct {
	Name  string  `json:"name"`
	Code  int     `json:"code"`
	Score float64 `json:"score"`
}

// CatalogFunc supplies the settlement catalog. The default returns the
// built-in table; tests and future upstream-backed loaders substitute
// their own.
type CatalogFunc func(ctx context.Context) ([]domain.SettlementEntry, error)

// Resolver matches free-text names against the cached catalog.
type Resolver struct {
	cache     *cache.Cache
	catalog   CatalogFunc
	ttl       time.Duration
	threshold float64
}

// NewResolver creates a resolver over the shared cache. Zero ttl and
// threshold fall back to the defaults.
func NewResolver(c *cache.Cache, catalog CatalogFunc, ttl time.Duration, threshold float64) *Resolver {
	if catalog == nil {
		catalog = func(context.Context) ([]domain.SettlementEntry, error) {
			return domain.SettlementCatalog(), nil
		}
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{cache: c, catalog: catalog, ttl: ttl, threshold: threshold}
}

// Resolve returns the settlement matching name: an exact normalized
// match when one exists, otherwise the highest-scoring fuzzy candidate
// above the threshold. Ties at the top score break by lexical order of
// the candidate name so resolution is reproducible.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Match, error) {
	scored, err := r.score(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(scored) > 0 && scored[0].Score == 1.0 {
		exact := scored[0]
		metrics.ResolveOutcomes.WithLabelValues("exact").Inc()
		return &exact, nil
	}

	if len(scored) > 0 && scored[0].Score >= r.threshold {
		best := scored[0]
		metrics.ResolveOutcomes.WithLabelValues("fuzzy").Inc()
		return &best, nil
	}

	metrics.ResolveOutcomes.WithLabelValues("no_match").Inc()
	nm := &ErrNoConfidentMatch{Name: name}
	if len(scored) > 0 {
		nm.Best = scored[0].Name
		nm.BestScore = scored[0].Score
	}
	return nil, nm
}

// Suggestions returns the top-n scored candidates regardless of the
// threshold, for interactive "did you mean" lists.
func (r *Resolver) Suggestions(ctx context.Context, name string, n int) ([]Match, error) {
	scored, err := r.score(ctx, name)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > len(scored) {
		n = len(scored)
	}
	return scored[:n], nil
}

// score ranks every catalog entry against name, best first.
func (r *Resolver) score(ctx context.Context, name string) ([]Match, error) {
	entries, err := cache.GetOrCompute(ctx, r.cache, catalogKey, r.ttl, r.catalog)
	if err != nil {
		return nil, fmt.Errorf("load settlement catalog: %w", err)
	}

	needle := normalizeName(name)
	scored := make([]Match, 0, len(entries))
	for _, entry := range entries {
		scored = append(scored, Match{
			Name:  entry.Name,
			Code:  entry.Code,
			Score: similarity(needle, normalizeName(entry.Name)),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Name < scored[j].Name
	})
	return scored, nil
}

// similarity is normalized edit distance on runes: 1 - dist/maxLen,
// clamped to [0,1]. Two empty strings count as no match rather than a
// perfect one.
func similarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1.0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	score := 1.0 - float64(dist)/float64(max)
	if score < 0 {
		return 0
	}
	return score
}
