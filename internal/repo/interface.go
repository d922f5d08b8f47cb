package repo

import (
	"context"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

// BoardRepository хранит распарсенные доски по id документа
type BoardRepository interface {
	Save(ctx context.Context, id string, b model.Board) error
	Get(ctx context.Context, id string) (model.Board, error)
}
