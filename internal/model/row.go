package model

// ListOption - открытый список, доступный для выбора
type ListOption struct {
	IDList   string `json:"idList"`
	ListName string `json:"listName"`
}

// ActiveCard - открытая карточка без лишних полей
type ActiveCard struct {
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	IDLabels []string `json:"idLabels"`
	IDList   string   `json:"idList"`
}

// Row - строка результата. Порядок полей = порядок колонок CSV.
type Row struct {
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	Labels   []string `json:"labels"`
	ListName string   `json:"listName"`
}

type Selection struct {
	Lists  []ListOption
	Labels []Label
}

type BoardSummary struct {
	ID          string `json:"id"`
	Lists       int    `json:"lists"`
	ActiveLists int    `json:"active_lists"`
	Cards       int    `json:"cards"`
	ActiveCards int    `json:"active_cards"`
	Labels      int    `json:"labels"`
	Checklists  int    `json:"checklists"`
}
