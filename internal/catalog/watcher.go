package catalog

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talipby/koroglu-site/internal/domain"
)

// Loader reads the full product list from persistence.
type Loader interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Watcher subscribes to the catalog_changed Postgres channel and reloads
// the store's snapshot whenever a product row changes. Notifications carry
// no payload worth parsing; every wake-up is a full reload.
type Watcher struct {
	pool    *pgxpool.Pool
	loader  Loader
	store   *Store
	logger  *log.Logger
	backoff time.Duration
}

func NewWatcher(pool *pgxpool.Pool, loader Loader, store *Store, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Watcher{
		pool:    pool,
		loader:  loader,
		store:   store,
		logger:  logger,
		backoff: 5 * time.Second,
	}
}

// Run blocks until ctx is cancelled, re-establishing the listening
// connection after errors.
func (w *Watcher) Run(ctx context.Context) {
	for {
		if err := w.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Printf("catalog watcher: listen error: %v, retrying in %s", err, w.backoff)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.backoff):
		}
	}
}

func (w *Watcher) listen(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN catalog_changed"); err != nil {
		return err
	}
	w.logger.Printf("catalog watcher: listening")

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		w.reload(ctx)
	}
}

func (w *Watcher) reload(ctx context.Context) {
	products, err := w.loader.List(ctx)
	if err != nil {
		// Keep the previous snapshot; the next notification retries.
		w.logger.Printf("catalog watcher: reload failed: %v", err)
		return
	}
	w.store.Replace(products)
	w.logger.Printf("catalog watcher: snapshot replaced count=%d", len(products))
}
