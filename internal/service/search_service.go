package service

import (
	"context"

	"mentorlink-be/internal/dto"
	"mentorlink-be/pkg/chatbot"
	"mentorlink-be/pkg/locale"
)

type ISearchService interface {
	Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	searcher chatbot.Searcher
}

func NewSearchService(searcher chatbot.Searcher) ISearchService {
	return &searchService{searcher: searcher}
}

func (s *searchService) Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error) {
	records, err := s.searcher.Search(ctx, request.Query, locale.Resolve(request.Locale))
	if err != nil {
		return nil, err
	}

	results := dto.NewLinkDTOs(records)
	if results == nil {
		results = []dto.LinkDTO{}
	}
	return &dto.SearchResponse{Results: results}, nil
}
