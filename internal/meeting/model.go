package meeting

import "gorm.io/gorm"

// Meeting 은 지하철역을 기준으로 모이는 식사 모임입니다
type Meeting struct {
	gorm.Model

	// Title 은 모임 이름입니다
	Title string `json:"title"`

	// InviteCode 는 참가 링크에 쓰이는 고유 코드입니다
	InviteCode string `gorm:"uniqueIndex;not null" json:"inviteCode"`

	// StationName 은 모임 기준이 되는 지하철역 이름입니다
	StationName string `gorm:"not null" json:"stationName"`

	// StationLat / StationLng 는 역 좌표입니다. 좌표를 못 찾은 역은 nil입니다
	StationLat *float64 `json:"stationLat"`
	StationLng *float64 `json:"stationLng"`
}

// Participant 는 모임에 참가한 사용자입니다
// 닉네임은 모임 안에서 유일해야 합니다
type Participant struct {
	gorm.Model

	MeetingID uint   `gorm:"uniqueIndex:idx_participant_meeting_nickname;not null" json:"meetingId"`
	Nickname  string `gorm:"uniqueIndex:idx_participant_meeting_nickname;not null" json:"nickname"`

	// UserID 는 쿠키 기반 사용자 식별자(UUID)입니다
	UserID string `gorm:"index" json:"userId"`
}

// Station 은 계획 수립 단계에 전달되는 역 정보 스냅샷입니다
type Station struct {
	Name string
	Lat  *float64
	Lng  *float64
}
