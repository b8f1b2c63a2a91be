package survey

import (
	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
)

// Summary 는 모임의 설문을 집계한 메모리상 결과입니다.
// 역 정보는 검색 계획 단계에서 채워집니다
type Summary struct {
	StationName string
	StationLat  *float64
	StationLng  *float64

	// TotalRespondents 는 제출된 설문 수입니다
	TotalRespondents int

	// LeafVotes 는 LEAF 카테고리별 득표 수입니다 (설문당 선택 1건 = 1표)
	LeafVotes map[uint]int

	// BranchVotes 는 CUISINE LEAF 득표를 부모 BRANCH로 합산한 값입니다.
	// AVOID_* 타입은 선호가 아니라 배제 신호라서 합산하지 않습니다
	BranchVotes map[uint]int

	// Hierarchy 는 이름/정렬 조회용 카테고리 인덱스입니다
	Hierarchy *category.Hierarchy
}

// Tally 는 모임의 전체 설문을 카테고리별 득표로 집계합니다.
// 설문이 하나도 없으면 빈 득표 맵을 담은 요약을 반환합니다 (에러 아님)
func Tally(meetingID uint) (*Summary, error) {
	exists, err := meeting.Exists(meetingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, meeting.ErrMeetingNotFound
	}

	hierarchy, err := category.LoadHierarchy()
	if err != nil {
		return nil, err
	}

	rows, err := ListSurveysWithResults(meetingID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalRespondents: len(rows),
		LeafVotes:        make(map[uint]int),
		BranchVotes:      make(map[uint]int),
		Hierarchy:        hierarchy,
	}

	for _, row := range rows {
		for _, categoryID := range row.CategoryIDs {
			leaf, ok := hierarchy.ByID(categoryID)
			if !ok || !leaf.IsLeaf() {
				// 삭제됐거나 트리에 없는 항목의 표는 버립니다
				continue
			}

			summary.LeafVotes[leaf.ID]++

			// CUISINE만 BRANCH로 롤업합니다
			if leaf.Type == category.TypeCuisine {
				if parent, ok := hierarchy.ParentOf(leaf); ok {
					summary.BranchVotes[parent.ID]++
				}
			}
		}
	}

	return summary, nil
}
