package workers

import (
	"context"

	"github.com/StephEngl/KanMind/internal/config"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// The guest sweeper is only created when a guest account exists and a sweep
// interval is configured.
func NewWorkers(ctx context.Context, cfg config.Workers, guest *models.User, boards store.BoardRepository, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if guest != nil && cfg.GuestSweepInterval > 0 {
		ws.workers = append(ws.workers, newGuestSweeper(ctx, cfg, guest, boards, logger))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
