package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/models"
)

// boardRepository is the SQL-backed implementation of [BoardRepository].
// It manages the "boards" and "board_members" tables; the membership
// relation is always written inside the same transaction as its board.
type boardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBoardRepository constructs a [BoardRepository] backed by the provided
// database connection and logger.
func NewBoardRepository(db *DB, logger *logger.Logger) BoardRepository {
	logger.Debug().Msg("creating board repository")
	return &boardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBoard persists the board and its member set in one transaction.
// A foreign key violation on the membership insert means the request named
// a user that does not exist and maps to [ErrUnknownMember].
func (r *boardRepository) CreateBoard(ctx context.Context, board models.Board) (models.Board, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.CreateBoard").Msg("error: beginning transaction")
		return models.Board{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createBoard, board.Title, board.OwnerID)
	if err := row.Scan(&board.BoardID, &board.Title, &board.OwnerID, new(time.Time)); err != nil {
		log.Err(err).Str("func", "*boardRepository.CreateBoard").Msg("error: scanning error")
		return models.Board{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, memberID := range board.MemberIDs {
		if _, err := tx.ExecContext(ctx, insertBoardMember, board.BoardID, memberID); err != nil {
			log.Err(err).Str("func", "*boardRepository.CreateBoard").Int64("member_id", memberID).Msg("error: inserting board member")

			if isForeignKeyViolation(err) {
				return models.Board{}, ErrUnknownMember
			}
			return models.Board{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.CreateBoard").Msg("error: committing transaction")
		return models.Board{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return board, nil
}

// GetBoard retrieves a single board together with its member IDs.
func (r *boardRepository) GetBoard(ctx context.Context, boardID int64) (models.Board, error) {
	log := logger.FromContext(ctx)

	var board models.Board
	row := r.db.QueryRowContext(ctx, findBoardByID, boardID)
	if err := row.Scan(&board.BoardID, &board.Title, &board.OwnerID, new(time.Time)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Board{}, ErrBoardNotFound
		}

		log.Err(err).Str("func", "*boardRepository.GetBoard").Msg("error: scanning error")
		return models.Board{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	memberIDs, err := r.memberIDs(ctx, boardID)
	if err != nil {
		return models.Board{}, err
	}
	board.MemberIDs = memberIDs

	return board, nil
}

// ListBoardsForUser returns summaries of every board the user owns or is a
// member of.
func (r *boardRepository) ListBoardsForUser(ctx context.Context, userID int64) ([]models.BoardSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBoardSummariesForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.ListBoardsForUser").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.BoardSummary, 0)
	for rows.Next() {
		var s models.BoardSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.OwnerID, &s.MemberCount, &s.TicketCount, &s.TasksToDoCount, &s.TasksHighPrioCount); err != nil {
			log.Err(err).Str("func", "*boardRepository.ListBoardsForUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

// Summary returns the aggregated summary of one board.
func (r *boardRepository) Summary(ctx context.Context, boardID int64) (models.BoardSummary, error) {
	log := logger.FromContext(ctx)

	var s models.BoardSummary
	row := r.db.QueryRowContext(ctx, selectBoardSummary, boardID)
	if err := row.Scan(&s.ID, &s.Title, &s.OwnerID, &s.MemberCount, &s.TicketCount, &s.TasksToDoCount, &s.TasksHighPrioCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BoardSummary{}, ErrBoardNotFound
		}

		log.Err(err).Str("func", "*boardRepository.Summary").Msg("error: scanning error")
		return models.BoardSummary{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return s, nil
}

// UpdateBoard applies a partial update. When members is non-nil the member
// set is replaced wholesale inside the same transaction as the title change.
func (r *boardRepository) UpdateBoard(ctx context.Context, boardID int64, title *string, members *[]int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.UpdateBoard").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if title != nil {
		res, err := tx.ExecContext(ctx, updateBoardTitle, *title, boardID)
		if err != nil {
			log.Err(err).Str("func", "*boardRepository.UpdateBoard").Msg("error: updating title")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrBoardNotFound
		}
	}

	if members != nil {
		if _, err := tx.ExecContext(ctx, deleteBoardMembers, boardID); err != nil {
			log.Err(err).Str("func", "*boardRepository.UpdateBoard").Msg("error: clearing members")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, memberID := range *members {
			if _, err := tx.ExecContext(ctx, insertBoardMember, boardID, memberID); err != nil {
				log.Err(err).Str("func", "*boardRepository.UpdateBoard").Int64("member_id", memberID).Msg("error: inserting board member")

				if isForeignKeyViolation(err) {
					return ErrUnknownMember
				}
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.UpdateBoard").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// DeleteBoard removes the board. Tasks, comments and memberships are removed
// by foreign key cascade.
func (r *boardRepository) DeleteBoard(ctx context.Context, boardID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteBoard, boardID)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.DeleteBoard").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBoardNotFound
	}

	return nil
}

// IsMember reports whether userID is in the board's member set.
func (r *boardRepository) IsMember(ctx context.Context, boardID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var isMember bool
	row := r.db.QueryRowContext(ctx, boardMembershipExists, boardID, userID)
	if err := row.Scan(&isMember); err != nil {
		log.Err(err).Str("func", "*boardRepository.IsMember").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return isMember, nil
}

// HasAnyBoard reports whether the user owns or belongs to at least one board.
func (r *boardRepository) HasAnyBoard(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var hasAny bool
	row := r.db.QueryRowContext(ctx, userHasAnyBoard, userID)
	if err := row.Scan(&hasAny); err != nil {
		log.Err(err).Str("func", "*boardRepository.HasAnyBoard").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return hasAny, nil
}

// GetMembers returns the expanded info of every board member.
func (r *boardRepository) GetMembers(ctx context.Context, boardID int64) ([]models.UserInfo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectBoardMembers, boardID)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.GetMembers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.UserInfo, 0)
	for rows.Next() {
		var firstName, lastName string
		var info models.UserInfo
		if err := rows.Scan(&info.ID, &info.Email, &firstName, &lastName); err != nil {
			log.Err(err).Str("func", "*boardRepository.GetMembers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		info.Fullname = firstName + " " + lastName
		members = append(members, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

// DeleteBoardsOwnedBefore removes boards created before cutoff that belong
// to the given owner and returns the number removed.
func (r *boardRepository) DeleteBoardsOwnedBefore(ctx context.Context, ownerID int64, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteBoardsOwnedBefore, ownerID, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.DeleteBoardsOwnedBefore").Msg("error: executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *boardRepository) memberIDs(ctx context.Context, boardID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectBoardMemberIDs, boardID)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.memberIDs").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*boardRepository.memberIDs").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
