package place

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// 모듈 차원의 실패 유형
var (
	ErrMeetingPlaceNotFound = errors.New("모임-장소 연결을 찾을 수 없습니다")
	ErrProviderUnavailable  = errors.New("외부 장소 검색을 사용할 수 없습니다")
)

// MeetingPlace 는 검색으로 발견된 장소를 특정 모임에 묶는 조인 엔티티입니다
// LikeCount 는 조회용 비정규화 캐시이며, 진실의 원천은 PlaceLike 행입니다
type MeetingPlace struct {
	gorm.Model

	MeetingID uint   `gorm:"uniqueIndex:idx_meeting_place;not null" json:"meetingId"`
	PlaceID   string `gorm:"uniqueIndex:idx_meeting_place;not null" json:"placeId"`

	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Phone    string  `json:"phone"`
	PlaceURL string  `json:"placeUrl"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	LikeCount int `json:"likeCount"`
}

// PlaceLike 는 사용자 한 명의 좋아요 한 건입니다
// (MeetingPlaceID, UserID) 유니크 제약이 토글의 직렬화 지점입니다
type PlaceLike struct {
	gorm.Model

	MeetingPlaceID uint   `gorm:"uniqueIndex:idx_place_like_owner;not null" json:"meetingPlaceId"`
	UserID         string `gorm:"uniqueIndex:idx_place_like_owner;not null" json:"userId"`
}

// ProviderPlace 는 외부 검색 제공자가 돌려주는 장소 한 건입니다
// 정렬/병합 키(ID, 순서) 외의 필드는 그대로 통과시킵니다
type ProviderPlace struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Phone    string  `json:"phone"`
	PlaceURL string  `json:"placeUrl"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance int     `json:"distance"`
}

// SearchProvider 는 외부 장소 검색 제공자의 포트입니다
// 구현체는 질의 한 건에 대한 타임아웃을 스스로 관리해야 합니다
type SearchProvider interface {
	TextSearch(ctx context.Context, query string, maxResults int) ([]ProviderPlace, error)
}
