package tips

import (
	"context"
	"sync"
	"time"

	"github.com/balkashynov/zentime/internal/models"
)

// DefaultTimeout bounds a single tip fetch.
const DefaultTimeout = 10 * time.Second

// Refresher runs tip fetches off the actor goroutine and hands results back
// through deliver. Requests are never cancelled; whichever result is delivered
// last is what the display shows.
type Refresher struct {
	provider Provider
	timeout  time.Duration
	deliver  func(Tip)
	wg       sync.WaitGroup

	base   context.Context
	cancel context.CancelFunc
}

// NewRefresher creates a Refresher. deliver is called from a worker goroutine.
func NewRefresher(provider Provider, timeout time.Duration, deliver func(Tip)) *Refresher {
	if provider == nil {
		provider = Static{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base, cancel := context.WithCancel(context.Background())
	return &Refresher{
		provider: provider,
		timeout:  timeout,
		deliver:  deliver,
		base:     base,
		cancel:   cancel,
	}
}

// RequestTip starts a fetch for mode and returns immediately.
func (r *Refresher) RequestTip(mode models.Mode) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.deliver(r.fetch(mode))
	}()
}

// Wait blocks until every started fetch has delivered.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// Stop cancels in-flight fetches and waits for them to deliver their fallbacks.
func (r *Refresher) Stop() {
	r.cancel()
	r.wg.Wait()
}

func (r *Refresher) fetch(mode models.Mode) (tip Tip) {
	defer func() {
		if recover() != nil {
			tip = Tip{Mode: mode, Text: Fallback(mode), Source: SourceFallback}
		}
	}()
	ctx, cancel := context.WithTimeout(r.base, r.timeout)
	defer cancel()
	return r.provider.FetchTip(ctx, mode)
}
