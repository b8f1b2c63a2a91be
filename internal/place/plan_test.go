package place

import (
	"testing"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planTestCategories 는 계획 수립 테스트가 쓰는 시드 카테고리 ID입니다
type planTestCategories struct {
	rice  uint // 밥류 (한식 LEAF)
	pasta uint // 파스타 (양식 LEAF)
}

func seedPlanCategories(t *testing.T) planTestCategories {
	t.Helper()

	korean := category.Category{Type: category.TypeCuisine, Level: category.LevelBranch, Name: "한식", SortOrder: 1}
	western := category.Category{Type: category.TypeCuisine, Level: category.LevelBranch, Name: "양식", SortOrder: 2}
	require.NoError(t, database.DB.Create(&korean).Error)
	require.NoError(t, database.DB.Create(&western).Error)

	rice := category.Category{ParentID: &korean.ID, Type: category.TypeCuisine, Level: category.LevelLeaf, Name: "밥류", SortOrder: 1}
	pasta := category.Category{ParentID: &western.ID, Type: category.TypeCuisine, Level: category.LevelLeaf, Name: "파스타", SortOrder: 1}
	require.NoError(t, database.DB.Create(&rice).Error)
	require.NoError(t, database.DB.Create(&pasta).Error)

	return planTestCategories{rice: rice.ID, pasta: pasta.ID}
}

func submitTestSurvey(t *testing.T, meetingID uint, nickname, userID string, categoryIDs []uint) {
	t.Helper()
	_, err := meeting.JoinMeeting(meetingID, nickname, userID)
	require.NoError(t, err)
	_, err = survey.SubmitSurvey(meetingID, userID, categoryIDs)
	require.NoError(t, err)
}

func TestBuildPlan(t *testing.T) {
	setupPlaceTest(t)
	cats := seedPlanCategories(t)

	m, err := meeting.CreateMeeting(meeting.CreateMeetingInput{Title: "저녁", StationName: "강남역"})
	require.NoError(t, err)

	submitTestSurvey(t, m.ID, "가", "user-1", []uint{cats.rice})
	submitTestSurvey(t, m.ID, "나", "user-2", []uint{cats.rice})
	submitTestSurvey(t, m.ID, "다", "user-3", []uint{cats.pasta})

	plan, err := BuildPlan(m.ID)
	require.NoError(t, err)

	assert.Equal(t, "강남역", plan.StationName)
	assert.Equal(t, "강남역 맛집", plan.FallbackKeyword)
	assert.Equal(t, 3, plan.TotalRespondents)

	require.Len(t, plan.Keywords, 2)
	assert.Equal(t, "한식", plan.Keywords[0].Keyword)
	assert.InDelta(t, 2.0/3.0, plan.Keywords[0].Weight, 1e-9)
	assert.Equal(t, "양식", plan.Keywords[1].Keyword)
}

func TestBuildPlanNoSurveys(t *testing.T) {
	setupPlaceTest(t)
	seedPlanCategories(t)

	m, err := meeting.CreateMeeting(meeting.CreateMeetingInput{Title: "저녁", StationName: "망원역"})
	require.NoError(t, err)

	plan, err := BuildPlan(m.ID)
	require.NoError(t, err)

	// 설문이 없어도 계획은 만들어지고, 실행 단계가 대체 키워드를 씁니다
	assert.Empty(t, plan.Keywords)
	assert.Equal(t, "망원역 맛집", plan.FallbackKeyword)
	assert.Zero(t, plan.TotalRespondents)
}

func TestBuildPlanStationNotFound(t *testing.T) {
	setupPlaceTest(t)

	_, err := BuildPlan(99999)
	assert.ErrorIs(t, err, meeting.ErrStationNotFound)
}
