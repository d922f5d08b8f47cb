package model

type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Board string `json:"board"`
	Color string `json:"color"`
}

type List struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Closed bool    `json:"closed"`
	Pos    float64 `json:"pos"`
}

type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Desc        string   `json:"desc"`
	Closed      bool     `json:"closed"`
	DueReminder *int     `json:"dueReminder"`
	IDList      string   `json:"idList"`
	IDLabels    []string `json:"idLabels"`
	DueComplete bool     `json:"dueComplete"`
}

type CheckItem struct {
	ID          string  `json:"id"`
	IDChecklist string  `json:"idChecklist"`
	State       string  `json:"state"`
	Name        string  `json:"name"`
	Due         *string `json:"due"`
}

type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDCard     string      `json:"idCard"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems"`
}

// Board - распарсенный экспорт доски
type Board struct {
	Cards      []Card      `json:"cards"`
	Labels     []Label     `json:"labels"`
	Lists      []List      `json:"lists"`
	Checklists []Checklist `json:"checklists"`
}
