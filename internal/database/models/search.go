package models

type SearchResult struct {
	Notes []Note `json:"notes"`
	Tasks []Task `json:"tasks"`
}
