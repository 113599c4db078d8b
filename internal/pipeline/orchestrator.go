// Package pipeline runs the end-to-end snapshot generation: fetch the three
// ordered Gamma listings, merge and normalize, compute the ranked buckets and
// the recommendation, assemble the snapshot document, write it to disk, and
// fan it out to the optional mirrors.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/polydash/polydash/internal/domain"
	"github.com/polydash/polydash/internal/platform/polymarket"
	"github.com/polydash/polydash/internal/rank"
	"github.com/polydash/polydash/internal/signals"
)

// MarketLister retrieves one ordered market listing from the upstream API.
type MarketLister interface {
	ListMarkets(ctx context.Context, order polymarket.MarketOrder, limit int) ([]polymarket.APIMarket, error)
}

// Notifier pushes the run's recommendation to the configured channels.
type Notifier interface {
	NotifyAll(ctx context.Context, title, message string) error
}

// Options configures an Orchestrator. Blob, Cache, and Notify are optional;
// nil disables the corresponding fan-out step.
type Options struct {
	Fetcher     MarketLister
	PageLimit   int
	SignalsPath string
	OutputPath  string

	Blob    domain.BlobWriter
	BlobKey string
	Cache   domain.SnapshotCache
	Notify  Notifier

	// Now overrides the clock; nil means time.Now. Fixing it makes a run
	// reproducible byte-for-byte apart from the run id.
	Now func() time.Time

	Logger *slog.Logger
}

// Orchestrator executes snapshot runs. It holds no mutable state between
// runs; every run rebuilds the full document from upstream data.
type Orchestrator struct {
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// New creates an Orchestrator from the given options.
func New(opts Options) *Orchestrator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		opts:   opts,
		logger: opts.Logger.With(slog.String("component", "pipeline")),
		now:    now,
	}
}

// fetchOrders is the fixed fetch (and therefore dedup precedence) order.
var fetchOrders = []polymarket.MarketOrder{
	polymarket.OrderVolume24hr,
	polymarket.OrderStartDate,
	polymarket.OrderLiquidity,
}

// Run executes one snapshot generation. Upstream failures degrade to empty
// listings; only a failed write of the output file is returned as an error.
func (o *Orchestrator) Run(ctx context.Context) error {
	now := o.now().UTC()
	runID := uuid.NewString()
	logger := o.logger.With(slog.String("run_id", runID))

	logger.InfoContext(ctx, "snapshot run starting",
		slog.String("generated_at", now.Format(time.RFC3339)),
	)

	// Three sequential fetches; a failed one yields an empty listing.
	listings := make([][]polymarket.APIMarket, len(fetchOrders))
	for i, order := range fetchOrders {
		raw, err := o.opts.Fetcher.ListMarkets(ctx, order, o.opts.PageLimit)
		if err != nil {
			logger.WarnContext(ctx, "market fetch failed, continuing with empty listing",
				slog.String("order", string(order)),
				slog.String("error", err.Error()),
			)
			continue
		}
		listings[i] = raw
	}

	markets := rank.MergeAndNormalize(listings...)
	logger.InfoContext(ctx, "markets merged", slog.Int("unique", len(markets)))

	sigs, err := signals.Load(o.opts.SignalsPath)
	if err != nil {
		logger.WarnContext(ctx, "signal feed unreadable, continuing without signals",
			slog.String("path", o.opts.SignalsPath),
			slog.String("error", err.Error()),
		)
		sigs = nil
	}

	snap := o.assemble(markets, sigs, now, runID)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("pipeline: marshal snapshot: %w", err)
	}

	if err := WriteFileAtomic(o.opts.OutputPath, data); err != nil {
		return fmt.Errorf("pipeline: write snapshot: %w", err)
	}

	logger.InfoContext(ctx, "snapshot written",
		slog.String("path", o.opts.OutputPath),
		slog.Int("bytes", len(data)),
		slog.Int("hot", len(snap.Hot)),
		slog.Int("movers", len(snap.Movers)),
		slog.Int("new_interesting", len(snap.NewInteresting)),
		slog.Int("worth_watching", len(snap.WorthWatching)),
		slog.Int("good_chances", len(snap.GoodChances)),
		slog.Int("beat_market", len(snap.BeatMarket)),
		slog.Int("signals", snap.SignalsCount),
	)

	o.mirror(ctx, logger, snap, data)

	return nil
}

// assemble computes every bucket and the recommendation and builds the final
// document. Empty buckets serialize as [] rather than null so the dashboard
// never special-cases absence.
func (o *Orchestrator) assemble(markets []domain.Market, sigs []domain.Signal, now time.Time, runID string) domain.Snapshot {
	hot := rank.Hot(markets)
	movers := rank.Movers(markets)
	fresh := rank.NewInteresting(markets, now)
	watching := rank.WorthWatching(markets)
	good := rank.GoodChances(markets)
	beat := rank.BeatMarket(markets)

	return domain.Snapshot{
		UpdatedAt:      now.Format(time.RFC3339),
		RunID:          runID,
		Hot:            orEmpty(hot),
		Movers:         orEmpty(movers),
		NewInteresting: orEmpty(fresh),
		WorthWatching:  orEmpty(watching),
		GoodChances:    orEmpty(good),
		BeatMarket:     orEmpty(beat),
		Recommendation: rank.Recommend(sigs, beat, good),
		AllMarkets:     orEmpty(rank.AllByVolume(markets)),
		Signals:        orEmptySignals(sigs),
		SignalsCount:   len(sigs),
	}
}

// mirror fans the written snapshot out to the optional sinks concurrently.
// Mirror failures are logged and swallowed; the local file is the contract.
func (o *Orchestrator) mirror(ctx context.Context, logger *slog.Logger, snap domain.Snapshot, data []byte) {
	g, ctx := errgroup.WithContext(ctx)

	if o.opts.Blob != nil {
		g.Go(func() error {
			if err := o.opts.Blob.Put(ctx, o.opts.BlobKey, bytes.NewReader(data), "application/json"); err != nil {
				logger.WarnContext(ctx, "s3 mirror failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	if o.opts.Cache != nil {
		g.Go(func() error {
			if err := o.opts.Cache.SetLatest(ctx, data); err != nil {
				logger.WarnContext(ctx, "redis mirror failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	if o.opts.Notify != nil && snap.Recommendation != nil {
		rec := snap.Recommendation
		g.Go(func() error {
			title := fmt.Sprintf("Top pick (%s): %s", rec.Source, rec.Title)
			message := strings.Join(rec.Reasoning, "\n")
			if rec.Link != "" {
				message += "\n" + rec.Link
			}
			if err := o.opts.Notify.NotifyAll(ctx, title, message); err != nil {
				logger.WarnContext(ctx, "recommendation notify failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	_ = g.Wait()
}

// RunLoop runs the pipeline on a repeating interval until the context is
// cancelled. The first run happens immediately.
func (o *Orchestrator) RunLoop(ctx context.Context, interval time.Duration) error {
	if err := o.Run(ctx); err != nil {
		o.logger.ErrorContext(ctx, "snapshot run failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.logger.InfoContext(ctx, "snapshot loop stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := o.Run(ctx); err != nil {
				o.logger.ErrorContext(ctx, "snapshot run failed", slog.String("error", err.Error()))
			}
		}
	}
}

func orEmpty(s []domain.Market) []domain.Market {
	if s == nil {
		return []domain.Market{}
	}
	return s
}

func orEmptySignals(s []domain.Signal) []domain.Signal {
	if s == nil {
		return []domain.Signal{}
	}
	return s
}
