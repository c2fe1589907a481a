package dto

import "mentorlink-be/pkg/search"

// ChatRequest is built by the chat controller from a leniently decoded body.
// Locale is empty when the client sent none or sent a non-string value.
type ChatRequest struct {
	Message *string `json:"message"`
	Locale  string  `json:"locale"`
}

type LinkDTO struct {
	Type        string `json:"type"`
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

// ChatResponse is an answered turn. Links is omitted when nothing matched.
type ChatResponse struct {
	Response string    `json:"response"`
	Links    []LinkDTO `json:"links,omitempty"`

	// Fallback marks canned replies; they are written as ChatFallbackResponse.
	Fallback bool `json:"-"`
}

// ChatFallbackResponse always carries an empty links array.
type ChatFallbackResponse struct {
	Response string    `json:"response"`
	Links    []LinkDTO `json:"links"`
}

type ChatErrorResponse struct {
	Error string `json:"error"`
}

func NewLinkDTOs(records []search.Record) []LinkDTO {
	if len(records) == 0 {
		return nil
	}
	links := make([]LinkDTO, len(records))
	for i, r := range records {
		links[i] = LinkDTO{
			Type:        string(r.Kind),
			Id:          r.Id,
			Title:       r.Title,
			Description: r.Description,
			Url:         r.Url,
		}
	}
	return links
}
