package workers

import (
	"context"
	"time"

	"github.com/StephEngl/KanMind/internal/config"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
)

// guestSweeper periodically purges boards owned by the demo guest account.
// Guest boards are throwaway data; anything older than the retention window
// is deleted together with its tasks and comments.
type guestSweeper struct {
	ctx             context.Context
	boardRepository store.BoardRepository

	guestID   int64
	interval  time.Duration
	retention time.Duration

	logger *logger.Logger
}

func newGuestSweeper(ctx context.Context, cfg config.Workers, guest *models.User, boards store.BoardRepository, logger *logger.Logger) *guestSweeper {
	return &guestSweeper{
		ctx:             ctx,
		boardRepository: boards,
		guestID:         guest.UserID,
		interval:        cfg.GuestSweepInterval,
		retention:       cfg.GuestRetention,
		logger:          logger,
	}
}

// Run starts the sweep loop in a background goroutine. The loop stops when
// the worker's context is cancelled.
func (g *guestSweeper) Run() {
	go func() {
		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()

		g.logger.Info().
			Int64("guest_id", g.guestID).
			Dur("interval", g.interval).
			Dur("retention", g.retention).
			Msg("guest sweeper started")

		for {
			select {
			case <-g.ctx.Done():
				g.logger.Info().Msg("guest sweeper stopped")
				return
			case <-ticker.C:
				g.sweep()
			}
		}
	}()
}

func (g *guestSweeper) sweep() {
	cutoff := time.Now().Add(-g.retention)

	deleted, err := g.boardRepository.DeleteBoardsOwnedBefore(g.ctx, g.guestID, cutoff)
	if err != nil {
		g.logger.Error().Err(err).Str("func", "*guestSweeper.sweep").Msg("guest board purge failed")
		return
	}

	if deleted > 0 {
		g.logger.Info().Int64("deleted", deleted).Msg("purged stale guest boards")
	}
}
