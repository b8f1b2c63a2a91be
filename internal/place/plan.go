package place

import (
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
)

// SearchPlan 은 한 번의 장소 검색을 기술하는 불변 계획입니다
type SearchPlan struct {
	// Keywords 는 가중치 내림차순으로 정렬된 키워드 후보입니다
	Keywords []KeywordCandidate

	StationName string
	StationLat  *float64
	StationLng  *float64

	// FallbackKeyword 는 "<역 이름> 맛집" 형태의 범용 질의입니다.
	// 키워드가 비어 있을 때 사용하지만, 분기 결과와 무관하게 항상 채워 둡니다
	FallbackKeyword string

	// TotalRespondents 는 계획의 바탕이 된 설문 수입니다 (캐시 키에 사용)
	TotalRespondents int
}

// BuildPlan 은 모임의 역 정보와 설문 집계를 묶어 검색 계획을 만듭니다.
// 역을 찾을 수 없으면 meeting.ErrStationNotFound를 반환합니다
func BuildPlan(meetingID uint) (*SearchPlan, error) {
	station, err := meeting.GetStation(meetingID)
	if err != nil {
		return nil, err
	}

	summary, err := survey.Tally(meetingID)
	if err != nil {
		return nil, err
	}
	summary.StationName = station.Name
	summary.StationLat = station.Lat
	summary.StationLng = station.Lng

	return &SearchPlan{
		Keywords:         ResolveKeywords(summary),
		StationName:      station.Name,
		StationLat:       station.Lat,
		StationLng:       station.Lng,
		FallbackKeyword:  station.Name + " 맛집",
		TotalRespondents: summary.TotalRespondents,
	}, nil
}
