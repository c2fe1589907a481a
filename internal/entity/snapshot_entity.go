package entity

// Snapshot is a read-only view of every searchable collection at one point in time.
// Holders must not mutate it; caches hand the same value to concurrent requests.
type Snapshot struct {
	Mentors          []Mentor          `json:"mentors"`
	Lectures         []Lecture         `json:"lectures"`
	CommunityGroups  []CommunityGroup  `json:"community_groups"`
	FreelancerGroups []FreelancerGroup `json:"freelancer_groups"`
	StudyInfos       []StudyInfo       `json:"study_infos"`
}

// Size returns the total number of records across all collections.
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Mentors) + len(s.Lectures) + len(s.CommunityGroups) + len(s.FreelancerGroups) + len(s.StudyInfos)
}
