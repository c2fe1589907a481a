package search

import (
	"context"
	"fmt"

	"mentorlink-be/internal/entity"
	"mentorlink-be/pkg/locale"
)

// MaxResults caps the merged result list across all kinds, not per kind.
const MaxResults = 10

// studyInfoDescriptionLength is counted in characters and may cut a word in half.
const studyInfoDescriptionLength = 100

// Kind discriminates the record types a search can return.
type Kind string

const (
	KindMentor     Kind = "mentor"
	KindLecture    Kind = "lecture"
	KindCommunity  Kind = "community"
	KindFreelancer Kind = "freelancer"
	KindStudyInfo  Kind = "studyInfo"
)

// Record is the uniform shape every matched entity is normalized into.
type Record struct {
	Kind        Kind   `json:"type"`
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

// SnapshotSource provides the collections a search runs over.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
}

// Engine binds the pure Search function to a record store.
type Engine struct {
	source SnapshotSource
}

func NewEngine(source SnapshotSource) *Engine {
	return &Engine{source: source}
}

// Search loads the current snapshot and matches query against it.
func (e *Engine) Search(ctx context.Context, query string, loc locale.Locale) ([]Record, error) {
	q := normalizeQuery(query)
	if q == "" {
		return []Record{}, nil
	}

	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load record snapshot: %w", err)
	}

	return search(snap, q, loc), nil
}

// Search returns at most MaxResults records from snap whose searchable fields
// contain query, ignoring case. Results follow kind priority (mentor, lecture,
// community, freelancer, studyInfo) and, within a kind, the snapshot order.
// There is no relevance scoring.
func Search(snap *entity.Snapshot, query string, loc locale.Locale) []Record {
	q := normalizeQuery(query)
	if q == "" || snap == nil {
		return []Record{}
	}
	return search(snap, q, loc)
}

func search(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	results := make([]Record, 0, MaxResults)
	for _, k := range kinds {
		results = append(results, k.match(snap, q, loc)...)
		if len(results) >= MaxResults {
			break
		}
	}

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
