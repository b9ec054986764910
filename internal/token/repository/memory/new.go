package memory

import (
	"sync"
	"time"

	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/pkg/log"
)

type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu      sync.RWMutex
	stats   token.Stats
	txs     []token.Transaction
	history []token.PricePoint
	nextID  int
}

// New creates an in-memory token ledger seeded with the demo data set.
func New(l log.Logger) repository.Repository {
	return newRepository(l, time.Now)
}

func newRepository(l log.Logger, now func() time.Time) *implRepository {
	r := &implRepository{
		l:       l,
		now:     now,
		stats:   seedStats(now()),
		txs:     seedTransactions(),
		history: seedHistory(),
	}
	r.nextID = len(r.txs) + 1
	return r
}
