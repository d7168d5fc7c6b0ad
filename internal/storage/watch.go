package storage

import (
	"context"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"

	"chronosdeck/internal/logging"
	"chronosdeck/internal/paths"
)

// Watch is a live subscription to a collection. It delivers the full current
// snapshot of the collection on Updates — once at start, and again after
// every change — rather than deltas. Consumers must not assume any ordering
// beyond the store's key order.
//
// A Watch must be closed when the owning scope ends. Close releases the
// subscription exactly once; further changes deliver nothing afterwards.
type Watch struct {
	db  *DB
	col paths.Collection

	updates chan []Document
	cancel  context.CancelFunc
	once    sync.Once
}

// Watch establishes a live subscription to the collection.
func (d *DB) Watch(c paths.Collection) *Watch {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watch{
		db:      d,
		col:     c,
		updates: make(chan []Document),
		cancel:  cancel,
	}
	go w.run(ctx)
	return w
}

// Updates returns the snapshot channel. It is closed when the watch is
// closed.
func (w *Watch) Updates() <-chan []Document {
	return w.updates
}

// Close releases the subscription. Safe to call more than once; only the
// first call has any effect.
func (w *Watch) Close() {
	w.once.Do(w.cancel)
}

func (w *Watch) run(ctx context.Context) {
	defer close(w.updates)

	// Change events are coalesced: while a snapshot is being delivered, any
	// number of store changes collapse into one pending re-read.
	events := make(chan struct{}, 1)
	subDone := make(chan struct{})

	go func() {
		defer close(subDone)
		err := w.db.Badger().Subscribe(ctx, func(kv *badger.KVList) error {
			select {
			case events <- struct{}{}:
			default:
			}
			return nil
		}, []pb.Match{{Prefix: []byte(w.col.Prefix())}})
		if err != nil && ctx.Err() == nil {
			logging.Warn("collection subscription ended", logging.KeyError, err)
		}
	}()

	// Initial snapshot before any change arrives.
	w.push(ctx)

	for {
		select {
		case <-ctx.Done():
			<-subDone
			return
		case <-events:
			w.push(ctx)
		}
	}
}

// push reads the full snapshot and delivers it, unless the watch is closed.
func (w *Watch) push(ctx context.Context) {
	docs, err := w.db.Snapshot(w.col)
	if err != nil {
		logging.Warn("snapshot read failed", logging.KeyError, err)
		return
	}

	select {
	case w.updates <- docs:
	case <-ctx.Done():
	}
}
