package place

import (
	"fmt"
	"time"

	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
	"github.com/moyeobab/moyeobab-backend/pkg/lifecycle"
	"gorm.io/gorm"
)

const cleanupInterval = 1 * time.Hour

// StartCleanupScheduler 는 보존 기간이 지난 모임과 그에 딸린 데이터를
// 주기적으로 정리하는 백그라운드 작업을 시작합니다.
// 자체 트랜잭션으로 동작하며 읽기 경로를 막지 않습니다
func StartCleanupScheduler(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("모임 정리 스케줄러가 시작되었습니다.")

	for {
		if err := handle.Sleep(cleanupInterval); err != nil {
			fmt.Println("정리 스케줄러: 종료 신호 수신, 정리합니다.")
			return
		}

		if err := CleanupExpiredMeetings(); err != nil {
			fmt.Printf("정리 스케줄러 오류: %v\n", err)
		}
	}
}

// CleanupExpiredMeetings 는 보존 기간을 넘긴 모임을 찾아
// 참가자/설문/장소/좋아요 행과 검색 캐시 키까지 한 번에 지웁니다
func CleanupExpiredMeetings() error {
	cutoff := time.Now().Add(-retention())

	var expired []meeting.Meeting
	if err := database.DB.Where("created_at < ?", cutoff).Find(&expired).Error; err != nil {
		return fmt.Errorf("만료 모임 조회 실패: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	meetingIDs := make([]uint, 0, len(expired))
	for _, m := range expired {
		meetingIDs = append(meetingIDs, m.ID)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var placeRowIDs []uint
		if err := tx.Model(&MeetingPlace{}).
			Where("meeting_id IN ?", meetingIDs).
			Pluck("id", &placeRowIDs).Error; err != nil {
			return err
		}
		if len(placeRowIDs) > 0 {
			if err := tx.Unscoped().Where("meeting_place_id IN ?", placeRowIDs).Delete(&PlaceLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("meeting_id IN ?", meetingIDs).Delete(&MeetingPlace{}).Error; err != nil {
			return err
		}

		var surveyIDs []uint
		if err := tx.Model(&survey.Survey{}).
			Where("meeting_id IN ?", meetingIDs).
			Pluck("id", &surveyIDs).Error; err != nil {
			return err
		}
		if len(surveyIDs) > 0 {
			if err := tx.Unscoped().Where("survey_id IN ?", surveyIDs).Delete(&survey.SurveyResult{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("meeting_id IN ?", meetingIDs).Delete(&survey.Survey{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("meeting_id IN ?", meetingIDs).Delete(&meeting.Participant{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id IN ?", meetingIDs).Delete(&meeting.Meeting{}).Error
	})
	if err != nil {
		return fmt.Errorf("만료 모임 삭제 실패: %w", err)
	}

	// 캐시 키는 최선 노력으로 지웁니다. TTL이 있으므로 실패해도 무방합니다
	if database.RDB != nil && database.IsRedisHealthy() {
		for _, id := range meetingIDs {
			pattern := fmt.Sprintf("%s%d:*", CacheKeyPrefix, id)
			iter := database.RDB.Scan(database.Ctx, 0, pattern, 0).Iterator()
			for iter.Next(database.Ctx) {
				database.RDB.Del(database.Ctx, iter.Val())
			}
		}
	}

	fmt.Printf("만료된 모임 %d건을 정리했습니다.\n", len(expired))
	return nil
}

func retention() time.Duration {
	if config.Cfg != nil {
		return config.Cfg.Meeting.Retention()
	}
	return config.MeetingConfig{}.Retention()
}
