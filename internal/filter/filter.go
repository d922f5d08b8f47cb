package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

var (
	ErrUnknownReference = errors.New("unknown reference")
)

// UnknownLabelPolicy решает, что делать с id метки, которой нет на доске.
type UnknownLabelPolicy int

const (
	SkipUnknown UnknownLabelPolicy = iota
	FailUnknown
)

func ParsePolicy(s string) (UnknownLabelPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipUnknown, nil
	case "fail":
		return FailUnknown, nil
	}
	return SkipUnknown, fmt.Errorf("unknown label policy %q", s)
}

func (p UnknownLabelPolicy) String() string {
	if p == FailUnknown {
		return "fail"
	}
	return "skip"
}

// ListedCard - карточка после join со списками: idList заменен на listName.
type ListedCard struct {
	Name     string
	Desc     string
	IDLabels []string
	ListName string
}

// Join - inner join карточек с выбранными списками по idList.
// Карточки без выбранного списка отбрасываются. При повторе id в выборке
// побеждает первое вхождение.
func Join(cards []model.ActiveCard, lists []model.ListOption) []ListedCard {
	names := make(map[string]string, len(lists))
	for _, l := range lists {
		if _, ok := names[l.IDList]; !ok {
			names[l.IDList] = l.ListName
		}
	}

	joined := make([]ListedCard, 0, len(cards))
	for _, c := range cards {
		listName, ok := names[c.IDList]
		if !ok {
			continue
		}
		joined = append(joined, ListedCard{
			Name:     c.Name,
			Desc:     c.Desc,
			IDLabels: c.IDLabels,
			ListName: listName,
		})
	}
	return joined
}

// WhereAllLabels оставляет карточки, у которых есть все метки из labelIDs.
// Пустой labelIDs ничего не отфильтровывает.
func WhereAllLabels(cards []ListedCard, labelIDs []string) []ListedCard {
	if len(labelIDs) == 0 {
		return cards
	}

	kept := make([]ListedCard, 0, len(cards))
	for _, c := range cards {
		if hasAll(c.IDLabels, labelIDs) {
			kept = append(kept, c)
		}
	}
	return kept
}

func hasAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// ResolveLabels заменяет id меток на имена, сохраняя порядок меток карточки.
func ResolveLabels(cards []ListedCard, names map[string]string, policy UnknownLabelPolicy) ([]model.Row, error) {
	rows := make([]model.Row, 0, len(cards))
	for _, c := range cards {
		labels := make([]string, 0, len(c.IDLabels))
		for _, id := range c.IDLabels {
			name, ok := names[id]
			if !ok {
				if policy == FailUnknown {
					return nil, fmt.Errorf("%w: card %q references label %q", ErrUnknownReference, c.Name, id)
				}
				continue
			}
			labels = append(labels, name)
		}
		rows = append(rows, model.Row{
			Name:     c.Name,
			Desc:     c.Desc,
			Labels:   labels,
			ListName: c.ListName,
		})
	}
	return rows, nil
}

// Apply прогоняет весь фильтр: join -> метки (AND) -> имена меток.
// Порядок карточек сохраняется.
func Apply(cards []model.ActiveCard, lists []model.ListOption, labels []model.Label, names map[string]string, policy UnknownLabelPolicy) ([]model.Row, error) {
	ids := make([]string, len(labels))
	for i, l := range labels {
		ids[i] = l.ID
	}

	joined := Join(cards, lists)
	return ResolveLabels(WhereAllLabels(joined, ids), names, policy)
}
