package view

import "github.com/BuzzLyutic/trello-export/internal/model"

// ActiveLists возвращает открытые списки в исходном порядке.
func ActiveLists(b model.Board) []model.ListOption {
	lists := make([]model.ListOption, 0, len(b.Lists))
	for _, l := range b.Lists {
		if l.Closed {
			continue
		}
		lists = append(lists, model.ListOption{IDList: l.ID, ListName: l.Name})
	}
	return lists
}

// ActiveCards возвращает открытые карточки в исходном порядке.
func ActiveCards(b model.Board) []model.ActiveCard {
	cards := make([]model.ActiveCard, 0, len(b.Cards))
	for _, c := range b.Cards {
		if c.Closed {
			continue
		}
		cards = append(cards, model.ActiveCard{
			Name:     c.Name,
			Desc:     c.Desc,
			IDLabels: c.IDLabels,
			IDList:   c.IDList,
		})
	}
	return cards
}

func LabelNameMap(b model.Board) map[string]string {
	names := make(map[string]string, len(b.Labels))
	for _, l := range b.Labels {
		names[l.ID] = l.Name
	}
	return names
}

// Labels - все метки доски, как они идут в документе.
func Labels(b model.Board) []model.Label {
	labels := make([]model.Label, len(b.Labels))
	copy(labels, b.Labels)
	return labels
}

func Summary(id string, b model.Board) model.BoardSummary {
	return model.BoardSummary{
		ID:          id,
		Lists:       len(b.Lists),
		ActiveLists: len(ActiveLists(b)),
		Cards:       len(b.Cards),
		ActiveCards: len(ActiveCards(b)),
		Labels:      len(b.Labels),
		Checklists:  len(b.Checklists),
	}
}
