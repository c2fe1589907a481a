package dto

type SearchRequest struct {
	Query  string `query:"q" validate:"max=200"`
	Locale string `query:"locale"`
}

type SearchResponse struct {
	Results []LinkDTO `json:"results"`
}
