package place

import (
	"errors"
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"gorm.io/gorm"
)

// LikeStatusDTO 는 토글 직후의 좋아요 상태입니다
type LikeStatusDTO struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}

// ToggleLike 는 사용자의 좋아요를 뒤집습니다.
// 사전 존재 확인 없이 "일단 insert, 유니크 충돌이면 delete"로 동작해
// 읽기-쓰기 경합 없이 한 번의 왕복으로 끝납니다. 유니크 제약이
// 동시 요청의 직렬화 지점이므로 애플리케이션 락은 쓰지 않습니다
func ToggleLike(meetingID uint, placeID string, userID string) (*LikeStatusDTO, error) {
	var mp MeetingPlace
	err := database.DB.Where("meeting_id = ? AND place_id = ?", meetingID, placeID).First(&mp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meeting=%d place=%s", ErrMeetingPlaceNotFound, meetingID, placeID)
	}
	if err != nil {
		return nil, fmt.Errorf("모임-장소 조회 실패: %w", err)
	}

	liked := true
	err = database.DB.Create(&PlaceLike{MeetingPlaceID: mp.ID, UserID: userID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 이미 좋아요 상태 → 좋아요 해제.
		// 같은 사용자의 동시 중복 insert가 충돌을 본 경우에도 행은 이미
		// 지워졌을 수 있으며, 어느 쪽이든 최종 상태는 해제입니다
		res := database.DB.
			Where("meeting_place_id = ? AND user_id = ?", mp.ID, userID).
			Unscoped().
			Delete(&PlaceLike{})
		if res.Error != nil {
			return nil, fmt.Errorf("좋아요 해제 실패: %w", res.Error)
		}
		liked = false
	} else if err != nil {
		return nil, fmt.Errorf("좋아요 등록 실패: %w", err)
	}

	// 최신 좋아요 수를 다시 세고, 비정규화 캐시도 함께 갱신합니다
	var count int64
	if err := database.DB.Model(&PlaceLike{}).
		Where("meeting_place_id = ?", mp.ID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("좋아요 수 조회 실패: %w", err)
	}

	// 캐시 컬럼은 갱신 시점의 행 수를 서브쿼리로 다시 계산합니다.
	// 동시 토글이 겹쳐도 마지막 갱신이 항상 실제 행 수를 반영합니다
	if err := database.DB.Model(&MeetingPlace{}).
		Where("id = ?", mp.ID).
		UpdateColumn("like_count", database.DB.Model(&PlaceLike{}).
			Select("count(*)").
			Where("meeting_place_id = ?", mp.ID)).Error; err != nil {
		return nil, fmt.Errorf("좋아요 수 캐시 갱신 실패: %w", err)
	}

	return &LikeStatusDTO{IsLiked: liked, LikeCount: int(count)}, nil
}
