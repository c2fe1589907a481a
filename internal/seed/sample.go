// Package seed holds the development content set and loads it into the database.
package seed

import (
	"mentorlink-be/internal/entity"

	"github.com/google/uuid"
)

// SampleSnapshot returns a fresh copy of the development content set.
// Ids are empty; the database assigns them on insert.
func SampleSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Mentors: []entity.Mentor{
			{
				Name:        "박멘토",
				Title:       "비자 전문 상담사",
				Specialties: []string{"비자 신청", "서류 준비", "연장 신청"},
				Bio:         "10년 이상의 경험을 가진 비자 전문 상담사입니다. 다양한 국가의 학생들을 도왔습니다.",
			},
		},
		Lectures: []entity.Lecture{
			{
				Title:       "한국어 초급 강의",
				Instructor:  "박멘토",
				Category:    "언어",
				Description: "한국어를 처음 배우는 분들을 위한 초급 강의입니다.",
			},
			{
				Title:       "비자 신청 가이드",
				Instructor:  "박멘토",
				Category:    "비자",
				Description: "D-2 비자 신청 절차와 필요한 서류를 설명합니다.",
			},
		},
		CommunityGroups: []entity.CommunityGroup{
			{
				Name:        "한국 유학생 모임",
				Description: "한국에서 공부하는 유학생들을 위한 커뮤니티입니다.",
				Tags:        []string{"유학생", "정보공유", "친목"},
			},
			{
				Name:        "비자 정보 공유",
				Description: "비자 관련 정보를 공유하는 그룹입니다.",
				Tags:        []string{"비자", "정보", "도움"},
			},
		},
		FreelancerGroups: []entity.FreelancerGroup{
			{
				Name:        "번역 프리랜서",
				Description: "번역 일을 찾는 프리랜서 그룹입니다.",
				Category:    "번역",
			},
			{
				Name:        "튜터링",
				Description: "과외 및 튜터링 일자리를 찾는 그룹입니다.",
				Category:    "교육",
			},
		},
		StudyInfos: []entity.StudyInfo{
			{
				Category: entity.StudyInfoCategoryVisa,
				Title:    "D-2 비자 신청 가이드",
				Content:  "D-2 비자는 한국에서 학업을 목적으로 체류하는 외국인을 위한 비자입니다...",
				Tags:     []string{"비자", "D-2", "신청"},
			},
			{
				Category: entity.StudyInfoCategoryHousing,
				Title:    "기숙사 vs 자취 비교",
				Content:  "한국에서 유학할 때 기숙사와 자취 중 어떤 것을 선택해야 할까요?...",
				Tags:     []string{"주거", "기숙사", "자취"},
			},
			{
				Category: entity.StudyInfoCategoryHospital,
				Title:    "한국 병원 이용 가이드",
				Content:  "한국에서 병원을 이용하는 방법과 건강보험에 대해 알아봅시다...",
				Tags:     []string{"병원", "건강보험", "의료"},
			},
		},
	}
}

// AssignIds gives every record without an id a random one, for stores that
// do not generate ids themselves.
func AssignIds(snap *entity.Snapshot) *entity.Snapshot {
	for i := range snap.Mentors {
		if snap.Mentors[i].Id == "" {
			snap.Mentors[i].Id = uuid.NewString()
		}
	}
	for i := range snap.Lectures {
		if snap.Lectures[i].Id == "" {
			snap.Lectures[i].Id = uuid.NewString()
		}
	}
	for i := range snap.CommunityGroups {
		if snap.CommunityGroups[i].Id == "" {
			snap.CommunityGroups[i].Id = uuid.NewString()
		}
	}
	for i := range snap.FreelancerGroups {
		if snap.FreelancerGroups[i].Id == "" {
			snap.FreelancerGroups[i].Id = uuid.NewString()
		}
	}
	for i := range snap.StudyInfos {
		if snap.StudyInfos[i].Id == "" {
			snap.StudyInfos[i].Id = uuid.NewString()
		}
	}
	return snap
}
