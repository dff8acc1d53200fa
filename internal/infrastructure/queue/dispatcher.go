package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/api/metrics"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DeliveryKind distinguishes the two counter updates a delivery event can carry.
type DeliveryKind string

const (
	KindImpression DeliveryKind = "impression"
	KindClick      DeliveryKind = "click"
)

// DeliveryEvent is one fire-and-forget accounting update for a campaign.
type DeliveryEvent struct {
	CampaignID string
	Kind       DeliveryKind
}

// Dispatcher routes delivery events to a fixed set of workers using
// consistent hashing on the campaign id, so updates for the same campaign
// are applied in order.
type Dispatcher struct {
	workers []chan DeliveryEvent
	ads     ports.AdRotationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, ads ports.AdRotationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan DeliveryEvent, numWorkers),
		ads:     ads,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan DeliveryEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its campaign.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event DeliveryEvent) {
	i := d.shardIndex(event.CampaignID)
	d.workers[i] <- event
	metrics.ImpressionQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a campaign id deterministically to a worker index.
func (d *Dispatcher) shardIndex(campaignID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(campaignID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan DeliveryEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			var err error
			switch event.Kind {
			case KindClick:
				err = d.ads.RecordClick(ctx, event.CampaignID)
			default:
				err = d.ads.RecordImpression(ctx, event.CampaignID)
			}
			if err != nil {
				d.log.Error().Err(err).
					Str("campaign_id", event.CampaignID).
					Str("kind", string(event.Kind)).
					Int("worker_id", id).
					Msg("delivery event failed")
			}
			metrics.ImpressionQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
