package service

import (
	"context"
	"fmt"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
)

// boardService is the concrete implementation of BoardService. It combines
// the board, task and user repositories because board responses embed
// member details and nested tasks.
//
// Permission model: reading and renaming a board requires being its owner
// or one of its members; deleting a board is owner-only.
type boardService struct {
	boardRepository store.BoardRepository
	taskRepository  store.TaskRepository
	userRepository  store.UserRepository
	logger          *logger.Logger
}

// NewBoardService constructs a BoardService over the given repositories.
func NewBoardService(boards store.BoardRepository, tasks store.TaskRepository, users store.UserRepository, logger *logger.Logger) BoardService {
	return &boardService{
		boardRepository: boards,
		taskRepository:  tasks,
		userRepository:  users,
		logger:          logger,
	}
}

// CreateBoard creates a board owned by userID with the requested member set
// and returns its summary representation.
func (b *boardService) CreateBoard(ctx context.Context, userID int64, req models.BoardCreateRequest) (models.BoardSummary, error) {
	log := logger.FromContext(ctx)

	memberIDs := dedupeIDs(req.Members)
	if err := b.ensureUsersExist(ctx, memberIDs); err != nil {
		return models.BoardSummary{}, err
	}

	board, err := b.boardRepository.CreateBoard(ctx, models.Board{
		Title:     req.Title,
		OwnerID:   userID,
		MemberIDs: memberIDs,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", userID).Msg("board creation ended with error")
		return models.BoardSummary{}, fmt.Errorf("board creation ended with error: %w", err)
	}

	summary, err := b.boardRepository.Summary(ctx, board.BoardID)
	if err != nil {
		return models.BoardSummary{}, fmt.Errorf("board summary lookup failed: %w", err)
	}

	return summary, nil
}

// ListBoards returns summaries of every board the user owns or belongs to.
// A user with no board at all gets ErrNoBoardMembership instead of an empty
// list.
func (b *boardService) ListBoards(ctx context.Context, userID int64) ([]models.BoardSummary, error) {
	log := logger.FromContext(ctx)

	hasAny, err := b.boardRepository.HasAnyBoard(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("board membership check failed")
		return nil, fmt.Errorf("board membership check failed: %w", err)
	}
	if !hasAny {
		return nil, ErrNoBoardMembership
	}

	summaries, err := b.boardRepository.ListBoardsForUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("board listing failed")
		return nil, fmt.Errorf("board listing failed: %w", err)
	}

	return summaries, nil
}

// GetBoard returns the detail view of a board with expanded members and
// nested tasks. The requester must be the owner or a member.
func (b *boardService) GetBoard(ctx context.Context, userID, boardID int64) (models.BoardDetail, error) {
	log := logger.FromContext(ctx)

	board, err := b.authorizeOwnerOrMember(ctx, userID, boardID)
	if err != nil {
		return models.BoardDetail{}, err
	}

	members, err := b.boardRepository.GetMembers(ctx, boardID)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board members lookup failed")
		return models.BoardDetail{}, fmt.Errorf("board members lookup failed: %w", err)
	}

	tasks, err := b.taskRepository.ListBoardTasks(ctx, boardID)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board tasks lookup failed")
		return models.BoardDetail{}, fmt.Errorf("board tasks lookup failed: %w", err)
	}

	boardTasks := make([]models.BoardTask, 0, len(tasks))
	for _, task := range tasks {
		boardTasks = append(boardTasks, task.BoardResponse())
	}

	return models.BoardDetail{
		ID:      board.BoardID,
		Title:   board.Title,
		OwnerID: board.OwnerID,
		Members: members,
		Tasks:   boardTasks,
	}, nil
}

// UpdateBoard renames a board and/or replaces its member set. The requester
// must be the owner or a member. The response embeds the owner and member
// details.
func (b *boardService) UpdateBoard(ctx context.Context, userID, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error) {
	log := logger.FromContext(ctx)

	board, err := b.authorizeOwnerOrMember(ctx, userID, boardID)
	if err != nil {
		return models.BoardUpdated{}, err
	}

	var members *[]int64
	if req.Members != nil {
		deduped := dedupeIDs(*req.Members)
		if err := b.ensureUsersExist(ctx, deduped); err != nil {
			return models.BoardUpdated{}, err
		}
		members = &deduped
	}

	if err := b.boardRepository.UpdateBoard(ctx, boardID, req.Title, members); err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board update ended with error")
		return models.BoardUpdated{}, fmt.Errorf("board update ended with error: %w", err)
	}

	title := board.Title
	if req.Title != nil {
		title = *req.Title
	}

	owner, err := b.userRepository.FindUserByID(ctx, board.OwnerID)
	if err != nil {
		return models.BoardUpdated{}, fmt.Errorf("board owner lookup failed: %w", err)
	}

	memberInfos, err := b.boardRepository.GetMembers(ctx, boardID)
	if err != nil {
		return models.BoardUpdated{}, fmt.Errorf("board members lookup failed: %w", err)
	}

	return models.BoardUpdated{
		ID:          boardID,
		Title:       title,
		OwnerData:   owner.Info(),
		MembersData: memberInfos,
	}, nil
}

// DeleteBoard removes a board and everything on it. Owner-only.
func (b *boardService) DeleteBoard(ctx context.Context, userID, boardID int64) error {
	log := logger.FromContext(ctx)

	board, err := b.boardRepository.GetBoard(ctx, boardID)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board lookup failed")
		return fmt.Errorf("board lookup failed: %w", err)
	}

	if board.OwnerID != userID {
		return ErrNotBoardOwner
	}

	if err := b.boardRepository.DeleteBoard(ctx, boardID); err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board deletion ended with error")
		return fmt.Errorf("board deletion ended with error: %w", err)
	}

	return nil
}

// authorizeOwnerOrMember loads the board and verifies that userID is its
// owner or one of its members.
func (b *boardService) authorizeOwnerOrMember(ctx context.Context, userID, boardID int64) (models.Board, error) {
	log := logger.FromContext(ctx)

	board, err := b.boardRepository.GetBoard(ctx, boardID)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board lookup failed")
		return models.Board{}, fmt.Errorf("board lookup failed: %w", err)
	}

	if board.OwnerID == userID {
		return board, nil
	}

	isMember, err := b.boardRepository.IsMember(ctx, boardID, userID)
	if err != nil {
		return models.Board{}, fmt.Errorf("board membership check failed: %w", err)
	}
	if !isMember {
		return models.Board{}, ErrNotBoardMember
	}

	return board, nil
}

// ensureUsersExist verifies that every ID in ids names an existing user.
// Unknown IDs map to [store.ErrUnknownMember] before any write happens, so
// the caller gets the same error on both database backends.
func (b *boardService) ensureUsersExist(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	users, err := b.userRepository.FindUsersByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("member lookup failed: %w", err)
	}
	if len(users) != len(ids) {
		return store.ErrUnknownMember
	}

	return nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	deduped := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	return deduped
}
