// Package logos resolves partner logo images and remembers which ones fail
// to load, so the marquee can render a text label instead of a broken image.
package logos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the logo service addressed by partner domain.
const DefaultBaseURL = "https://logo.clearbit.com/"

const (
	defaultTTL         = time.Hour
	defaultTimeout     = 3 * time.Second
	defaultConcurrency = 4
)

// Status is the known availability of a partner logo.
type Status uint8

const (
	// StatusUnknown means no probe has completed; the browser decides.
	StatusUnknown Status = iota
	StatusAvailable
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// URL joins base and domain into a logo image URL.
func URL(base, domain string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(strings.TrimSpace(domain), "/")
}

type outcome struct {
	status  Status
	expires time.Time
}

// Resolver probes logo availability. Concurrent probes for one domain share a
// single request and outcomes are cached for the TTL, so a failed logo is not
// retried until its entry expires.
type Resolver struct {
	client      *resty.Client
	base        string
	ttl         time.Duration
	concurrency int
	now         func() time.Time
	logger      *slog.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]outcome
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the logo service.
func WithBaseURL(base string) Option {
	return func(r *Resolver) {
		if base != "" {
			r.base = base
		}
	}
}

// WithTTL sets how long a probe outcome is trusted.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

// WithTimeout bounds a single probe request.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.client.SetTimeout(d)
	}
}

// WithConcurrency bounds the number of probes Warm runs at once.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets the logger used for probe failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver builds a resolver against DefaultBaseURL.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client:      resty.New().SetTimeout(defaultTimeout).SetHeader("User-Agent", "hlabs-web logo probe"),
		base:        DefaultBaseURL,
		ttl:         defaultTTL,
		concurrency: defaultConcurrency,
		now:         time.Now,
		logger:      slog.Default(),
		entries:     make(map[string]outcome),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// URL returns the logo URL for domain on the configured service.
func (r *Resolver) URL(domain string) string {
	return URL(r.base, domain)
}

// Status returns the cached outcome for domain without probing.
func (r *Resolver) Status(domain string) Status {
	r.mu.RLock()
	entry, ok := r.entries[domain]
	r.mu.RUnlock()
	if !ok || r.now().After(entry.expires) {
		return StatusUnknown
	}
	return entry.status
}

// Probe checks whether the logo for domain loads, using the cache when a
// fresh outcome exists. Network failures are reported as StatusUnavailable;
// only context cancellation yields StatusUnknown.
func (r *Resolver) Probe(ctx context.Context, domain string) Status {
	if s := r.Status(domain); s != StatusUnknown {
		return s
	}
	v, _, _ := r.group.Do(domain, func() (any, error) {
		status := r.probe(ctx, domain)
		if status != StatusUnknown {
			r.store(domain, status)
		}
		return status, nil
	})
	return v.(Status)
}

func (r *Resolver) probe(ctx context.Context, domain string) Status {
	resp, err := r.client.R().SetContext(ctx).Head(r.URL(domain))
	if err != nil {
		if ctx.Err() != nil {
			return StatusUnknown
		}
		r.logger.Warn("logo probe failed", "domain", domain, "error", err)
		return StatusUnavailable
	}
	if resp.StatusCode() != http.StatusOK {
		r.logger.Warn("logo unavailable", "domain", domain, "status", resp.StatusCode())
		return StatusUnavailable
	}
	return StatusAvailable
}

func (r *Resolver) store(domain string, s Status) {
	if r.ttl <= 0 {
		return
	}
	r.mu.Lock()
	r.entries[domain] = outcome{status: s, expires: r.now().Add(r.ttl)}
	r.mu.Unlock()
}

// Warm probes every domain with bounded concurrency and returns once all
// probes finish or ctx is done.
func (r *Resolver) Warm(ctx context.Context, domains []string) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for _, domain := range domains {
		eg.Go(func() error {
			r.Probe(egCtx, domain)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("logos: warm interrupted: %w", err)
	}
	return nil
}

// Shutdown releases idle probe connections.
func (r *Resolver) Shutdown() {
	r.client.GetClient().CloseIdleConnections()
}
