package lagrange

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/agbru/lagcalc/internal/points"
	"github.com/agbru/lagcalc/internal/poly"
)

// Default cache lifetimes for Builder.
const (
	DefaultCacheTTL     = 10 * time.Minute
	DefaultCacheCleanup = 15 * time.Minute
)

// Builder memoizes interpolants by the exact contents of the point set, so
// recomputing an unchanged set only formats and renders again.
type Builder struct {
	cache *cache.Cache
}

// BuilderOption configures a Builder during construction.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	ttl     time.Duration
	cleanup time.Duration
}

// WithCacheTTL sets how long a memoized interpolant stays valid.
func WithCacheTTL(ttl time.Duration) BuilderOption {
	return func(o *builderOptions) { o.ttl = ttl }
}

// NewBuilder creates a memoizing Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := builderOptions{ttl: DefaultCacheTTL, cleanup: DefaultCacheCleanup}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{cache: cache.New(o.ttl, o.cleanup)}
}

// Build returns the interpolant through pts, reusing a previous result for
// an identical point sequence. Errors are never cached.
func (b *Builder) Build(pts []points.Point) (p poly.Polynomial, cached bool, err error) {
	key := fingerprint(pts)
	if v, ok := b.cache.Get(key); ok {
		return v.(poly.Polynomial).Clone(), true, nil
	}

	p, err = Build(pts)
	if err != nil {
		return nil, false, err
	}
	b.cache.SetDefault(key, p.Clone())
	return p, false, nil
}

// Len returns the number of memoized interpolants.
func (b *Builder) Len() int { return b.cache.ItemCount() }

// Flush drops every memoized interpolant.
func (b *Builder) Flush() { b.cache.Flush() }

// fingerprint encodes the exact bit patterns of the coordinates in order.
func fingerprint(pts []points.Point) string {
	var sb strings.Builder
	for _, p := range pts {
		sb.WriteString(strconv.FormatUint(floatBits(p.X), 16))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(floatBits(p.Y), 16))
		sb.WriteByte(';')
	}
	return sb.String()
}

// floatBits maps both zeros to the same key.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
