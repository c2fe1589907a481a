package search

import (
	"fmt"

	"mentorlink-be/internal/entity"
	"mentorlink-be/pkg/locale"
)

// kindMatcher scans one collection of a snapshot. The order of the kinds
// table is the result priority order.
type kindMatcher struct {
	kind  Kind
	match func(snap *entity.Snapshot, q string, loc locale.Locale) []Record
}

var kinds = []kindMatcher{
	{kind: KindMentor, match: matchMentors},
	{kind: KindLecture, match: matchLectures},
	{kind: KindCommunity, match: matchCommunityGroups},
	{kind: KindFreelancer, match: matchFreelancerGroups},
	{kind: KindStudyInfo, match: matchStudyInfos},
}

// Kinds returns the registered kinds in priority order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i, k := range kinds {
		out[i] = k.kind
	}
	return out
}

func matchMentors(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	var out []Record
	for _, m := range snap.Mentors {
		if !containsAny(q, m.Specialties, m.Name, m.Title, m.Bio) {
			continue
		}
		out = append(out, Record{
			Kind:        KindMentor,
			Id:          m.Id,
			Title:       m.Name,
			Description: m.Title,
			Url:         resourceURL(loc, "mentors", m.Id),
		})
	}
	return out
}

func matchLectures(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	var out []Record
	for _, l := range snap.Lectures {
		if !containsAny(q, nil, l.Title, l.Instructor, l.Category, l.Description) {
			continue
		}
		out = append(out, Record{
			Kind:        KindLecture,
			Id:          l.Id,
			Title:       l.Title,
			Description: l.Instructor,
			Url:         resourceURL(loc, "lectures", l.Id),
		})
	}
	return out
}

func matchCommunityGroups(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	var out []Record
	for _, g := range snap.CommunityGroups {
		if !containsAny(q, g.Tags, g.Name, g.Description) {
			continue
		}
		out = append(out, Record{
			Kind:        KindCommunity,
			Id:          g.Id,
			Title:       g.Name,
			Description: g.Description,
			Url:         resourceURL(loc, "community", g.Id),
		})
	}
	return out
}

func matchFreelancerGroups(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	var out []Record
	for _, g := range snap.FreelancerGroups {
		if !containsAny(q, nil, g.Name, g.Description, g.Category) {
			continue
		}
		out = append(out, Record{
			Kind:        KindFreelancer,
			Id:          g.Id,
			Title:       g.Name,
			Description: g.Description,
			Url:         resourceURL(loc, "freelancers", g.Id),
		})
	}
	return out
}

// Study info has no detail page; every article links to an anchor on the
// shared study-in-korea page, so two articles in one category share a URL.
func matchStudyInfos(snap *entity.Snapshot, q string, loc locale.Locale) []Record {
	var out []Record
	for _, s := range snap.StudyInfos {
		if !containsAny(q, s.Tags, s.Title, s.Content) {
			continue
		}
		out = append(out, Record{
			Kind:        KindStudyInfo,
			Id:          s.Id,
			Title:       s.Title,
			Description: truncateRunes(s.Content, studyInfoDescriptionLength),
			Url:         fmt.Sprintf("/%s/study-in-korea#%s", loc, s.Category),
		})
	}
	return out
}

func resourceURL(loc locale.Locale, segment, id string) string {
	return fmt.Sprintf("/%s/%s/%s", loc, segment, id)
}
