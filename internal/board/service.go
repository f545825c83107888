package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftboard/driftboard/internal/document"
	"github.com/driftboard/driftboard/internal/store"
	"github.com/driftboard/driftboard/internal/typeid"
)

var (
	ErrNotFound  = errors.New("board not found")
	ErrForbidden = errors.New("forbidden")
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Board, error) {
	boardID := typeid.NewBoardID()

	dbBoard, err := s.store.CreateBoard(ctx, boardID, name, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	// Seed empty document snapshot
	emptyDoc := document.NewEmptyBoard(boardID, name)
	docJSON, err := emptyDoc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal empty document: %w", err)
	}

	_, err = s.store.CreateSnapshot(ctx, typeid.NewSnapshotID(), boardID, 1, docJSON)
	if err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return dbBoardToBoard(dbBoard), nil
}

func (s *Service) Get(ctx context.Context, boardID, userID string) (*Board, error) {
	dbBoard, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get board: %w", err)
	}

	if dbBoard.OwnerID != userID {
		return nil, ErrForbidden
	}

	return dbBoardToBoard(dbBoard), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Board, error) {
	dbBoards, err := s.store.ListBoardsForOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := make([]Board, len(dbBoards))
	for i, b := range dbBoards {
		boards[i] = *dbBoardToBoard(b)
	}

	return boards, nil
}

func (s *Service) Delete(ctx context.Context, boardID, userID string) error {
	dbBoard, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get board: %w", err)
	}

	if dbBoard.OwnerID != userID {
		return ErrForbidden
	}

	return s.store.DeleteBoard(ctx, boardID)
}

func (s *Service) GetLatestSnapshot(ctx context.Context, boardID, userID string) (json.RawMessage, error) {
	if _, err := s.Get(ctx, boardID, userID); err != nil {
		return nil, err
	}

	snap, err := s.store.GetLatestSnapshot(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	return snap.Document, nil
}

// LoadDocument fetches and decodes the latest board document. Used by
// the session layer when a client attaches to a board.
func (s *Service) LoadDocument(ctx context.Context, boardID string) (*document.Board, error) {
	snap, err := s.store.GetLatestSnapshot(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return document.Parse(snap.Document)
}

// SaveDocument stores a new snapshot of the board document, bumping the
// snapshot version past the current latest.
func (s *Service) SaveDocument(ctx context.Context, boardID string, doc *document.Board) error {
	docJSON, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	nextVersion := int32(1)
	if current, err := s.store.GetLatestSnapshot(ctx, boardID); err == nil {
		nextVersion = current.Version + 1
	}

	if _, err := s.store.CreateSnapshot(ctx, typeid.NewSnapshotID(), boardID, nextVersion, docJSON); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	return nil
}

// IsOwner reports whether the user owns the board.
func (s *Service) IsOwner(ctx context.Context, boardID, userID string) (bool, error) {
	dbBoard, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("get board: %w", err)
	}
	return dbBoard.OwnerID == userID, nil
}

func dbBoardToBoard(b store.Board) *Board {
	return &Board{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
