package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

// BoardRepo - мемоизация в памяти. Вытеснения нет: живет столько же, сколько процесс.
type BoardRepo struct {
	mu     sync.RWMutex
	boards map[string]model.Board
}

func NewBoardRepo() *BoardRepo { // Конструктор
	return &BoardRepo{
		boards: make(map[string]model.Board),
	}
}

func (r *BoardRepo) Save(ctx context.Context, id string, b model.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards[id] = b
	return nil
}

func (r *BoardRepo) Get(ctx context.Context, id string) (model.Board, error) {
	if err := ctx.Err(); err != nil {
		return model.Board{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.boards[id]
	if !ok {
		return model.Board{}, ErrorNotFound
	}
	return b, nil
}

func (r *BoardRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.boards)
}
