package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/BuzzLyutic/trello-export/internal/export"
	"github.com/BuzzLyutic/trello-export/internal/filter"
	"github.com/BuzzLyutic/trello-export/internal/loader"
	"github.com/BuzzLyutic/trello-export/internal/model"
	"github.com/BuzzLyutic/trello-export/internal/repo"
	"github.com/BuzzLyutic/trello-export/internal/view"
)

var (
	ErrValidation = errors.New("validation error")
)

var boardNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("trello-export/board"))

// BoardID выводит id доски из содержимого документа: одинаковые байты - один id.
func BoardID(data []byte) string {
	return uuid.NewSHA1(boardNamespace, data).String()
}

type Options struct {
	DefaultPath string
	Policy      filter.UnknownLabelPolicy
	Export      export.Options
}

// Query - выбор пользователя. Lists == nil означает все открытые списки,
// пустой не-nil срез - ни одного. Элементы сравниваются с id, затем с именем.
type Query struct {
	Lists  []string
	Labels []string
}

type BoardService struct {
	repo repo.BoardRepository
	opts Options
}

func NewBoardService(repo repo.BoardRepository, opts Options) *BoardService {
	return &BoardService{repo: repo, opts: opts}
}

// Upload парсит документ один раз; повторная загрузка тех же байтов берется из кеша.
func (s *BoardService) Upload(ctx context.Context, data []byte) (model.BoardSummary, error) {
	id := BoardID(data)

	b, err := s.repo.Get(ctx, id)
	if err == nil {
		return view.Summary(id, b), nil
	}
	if !errors.Is(err, repo.ErrorNotFound) {
		return model.BoardSummary{}, err
	}

	b, err = loader.Parse(data)
	if err != nil {
		return model.BoardSummary{}, err
	}

	if err := s.repo.Save(ctx, id, b); err != nil {
		return model.BoardSummary{}, err
	}
	return view.Summary(id, b), nil
}

// LoadDefault загружает образец с диска, когда пользователь ничего не загрузил.
func (s *BoardService) LoadDefault(ctx context.Context) (model.BoardSummary, error) {
	data, err := os.ReadFile(s.opts.DefaultPath)
	if err != nil {
		return model.BoardSummary{}, fmt.Errorf("read default document: %w", err)
	}
	return s.Upload(ctx, data)
}

func (s *BoardService) Summary(ctx context.Context, id string) (model.BoardSummary, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.BoardSummary{}, err
	}
	return view.Summary(id, b), nil
}

func (s *BoardService) Lists(ctx context.Context, id string) ([]model.ListOption, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return view.ActiveLists(b), nil
}

func (s *BoardService) Labels(ctx context.Context, id string) ([]model.Label, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return view.Labels(b), nil
}

func (s *BoardService) Cards(ctx context.Context, id string, q Query) ([]model.Row, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sel, err := s.selection(b, q)
	if err != nil {
		return nil, err
	}

	return filter.Apply(view.ActiveCards(b), sel.Lists, sel.Labels, view.LabelNameMap(b), s.opts.Policy)
}

func (s *BoardService) ExportCSV(ctx context.Context, id string, q Query) (string, error) {
	rows, err := s.Cards(ctx, id, q)
	if err != nil {
		return "", err
	}
	return s.opts.Export.ToCSV(rows)
}

func (s *BoardService) ExportLink(ctx context.Context, id string, q Query, filename, linkText string) (string, error) {
	rows, err := s.Cards(ctx, id, q)
	if err != nil {
		return "", err
	}
	return s.opts.Export.TableDownloadLink(rows, filename, linkText)
}

// selection сопоставляет запрос с тем, что доска предлагает для выбора.
// Закрытые списки выбрать нельзя.
func (s *BoardService) selection(b model.Board, q Query) (model.Selection, error) {
	active := view.ActiveLists(b)

	var sel model.Selection
	if q.Lists == nil {
		sel.Lists = active
	} else {
		sel.Lists = make([]model.ListOption, 0, len(q.Lists))
		for _, key := range q.Lists {
			l, ok := findList(active, key)
			if !ok {
				return sel, fmt.Errorf("%w: unknown list %q", ErrValidation, key)
			}
			sel.Lists = append(sel.Lists, l)
		}
	}

	labels := view.Labels(b)
	sel.Labels = make([]model.Label, 0, len(q.Labels))
	for _, key := range q.Labels {
		l, ok := findLabel(labels, key)
		if !ok {
			return sel, fmt.Errorf("%w: unknown label %q", ErrValidation, key)
		}
		sel.Labels = append(sel.Labels, l)
	}

	return sel, nil
}

func findList(lists []model.ListOption, key string) (model.ListOption, bool) {
	for _, l := range lists {
		if l.IDList == key {
			return l, true
		}
	}
	for _, l := range lists {
		if l.ListName == key {
			return l, true
		}
	}
	return model.ListOption{}, false
}

func findLabel(labels []model.Label, key string) (model.Label, bool) {
	for _, l := range labels {
		if l.ID == key {
			return l, true
		}
	}
	for _, l := range labels {
		if l.Name == key {
			return l, true
		}
	}
	return model.Label{}, false
}
