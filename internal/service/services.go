package service

import (
	"github.com/StephEngl/KanMind/internal/config"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
)

type Services struct {
	AuthService    AuthService
	BoardService   BoardService
	TaskService    TaskService
	CommentService CommentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		BoardService:   NewBoardService(storages.BoardRepository, storages.TaskRepository, storages.UserRepository, logger),
		TaskService:    NewTaskService(storages.TaskRepository, storages.BoardRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.TaskRepository, storages.BoardRepository, logger),
	}
}
