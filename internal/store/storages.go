package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/StephEngl/KanMind/internal/config"
	"github.com/StephEngl/KanMind/internal/logger"
)

// Storages bundles every repository behind one constructor so the service
// layer receives a single dependency.
type Storages struct {
	UserRepository    UserRepository
	BoardRepository   BoardRepository
	TaskRepository    TaskRepository
	CommentRepository CommentRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DSN, runs pending
// migrations and constructs all repositories. A DSN starting with
// "sqlite://" selects the embedded SQLite backend, anything else is
// treated as a PostgreSQL connection string.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if strings.HasPrefix(cfg.DSN, "sqlite://") {
		db, err = NewConnectSQLite(ctx, cfg, log)
	} else {
		db, err = NewConnectPostgres(ctx, cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error running migrations")
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		BoardRepository:   NewBoardRepository(db, log),
		TaskRepository:    NewTaskRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
