package survey

import (
	"fmt"
	"testing"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/meeting"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testCategories 는 테스트가 참조하는 시드 카테고리 ID 묶음입니다
type testCategories struct {
	koreanBranch  uint // 한식
	westernBranch uint // 양식
	rice          uint // 밥류 (한식 LEAF)
	stew          uint // 국·찌개 (한식 LEAF)
	pasta         uint // 파스타 (양식 LEAF)
	pork          uint // 돼지고기 (AVOID_INGREDIENT LEAF)
}

func setupTallyTest(t *testing.T) testCategories {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&category.Category{},
		&meeting.Meeting{}, &meeting.Participant{},
		&Survey{}, &SurveyResult{},
	))
	database.DB = db

	return seedCategories(t)
}

func seedCategories(t *testing.T) testCategories {
	t.Helper()

	korean := category.Category{Type: category.TypeCuisine, Level: category.LevelBranch, Name: "한식", SortOrder: 1}
	western := category.Category{Type: category.TypeCuisine, Level: category.LevelBranch, Name: "양식", SortOrder: 2}
	avoid := category.Category{Type: category.TypeAvoidIngredient, Level: category.LevelBranch, Name: "기피 재료", SortOrder: 3}
	require.NoError(t, database.DB.Create(&korean).Error)
	require.NoError(t, database.DB.Create(&western).Error)
	require.NoError(t, database.DB.Create(&avoid).Error)

	rice := category.Category{ParentID: &korean.ID, Type: category.TypeCuisine, Level: category.LevelLeaf, Name: "밥류", SortOrder: 1}
	stew := category.Category{ParentID: &korean.ID, Type: category.TypeCuisine, Level: category.LevelLeaf, Name: "국·찌개", SortOrder: 2}
	pasta := category.Category{ParentID: &western.ID, Type: category.TypeCuisine, Level: category.LevelLeaf, Name: "파스타", SortOrder: 1}
	pork := category.Category{ParentID: &avoid.ID, Type: category.TypeAvoidIngredient, Level: category.LevelLeaf, Name: "돼지고기", SortOrder: 1}
	require.NoError(t, database.DB.Create(&rice).Error)
	require.NoError(t, database.DB.Create(&stew).Error)
	require.NoError(t, database.DB.Create(&pasta).Error)
	require.NoError(t, database.DB.Create(&pork).Error)

	return testCategories{
		koreanBranch:  korean.ID,
		westernBranch: western.ID,
		rice:          rice.ID,
		stew:          stew.ID,
		pasta:         pasta.ID,
		pork:          pork.ID,
	}
}

func createTestMeeting(t *testing.T, station string) *meeting.Meeting {
	t.Helper()
	m, err := meeting.CreateMeeting(meeting.CreateMeetingInput{Title: "테스트 모임", StationName: station})
	require.NoError(t, err)
	return m
}

func joinAndSubmit(t *testing.T, meetingID uint, nickname, userID string, categoryIDs []uint) {
	t.Helper()
	_, err := meeting.JoinMeeting(meetingID, nickname, userID)
	require.NoError(t, err)
	_, err = SubmitSurvey(meetingID, userID, categoryIDs)
	require.NoError(t, err)
}

func TestTally(t *testing.T) {
	cats := setupTallyTest(t)
	m := createTestMeeting(t, "강남역")

	// 4명: 한식 3표(밥류 2 + 국·찌개 1), 양식 1표, 돼지고기 기피 1표
	joinAndSubmit(t, m.ID, "가", "user-1", []uint{cats.rice})
	joinAndSubmit(t, m.ID, "나", "user-2", []uint{cats.rice, cats.pork})
	joinAndSubmit(t, m.ID, "다", "user-3", []uint{cats.stew})
	joinAndSubmit(t, m.ID, "라", "user-4", []uint{cats.pasta})

	summary, err := Tally(m.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRespondents)

	t.Run("LEAF 득표", func(t *testing.T) {
		assert.Equal(t, 2, summary.LeafVotes[cats.rice])
		assert.Equal(t, 1, summary.LeafVotes[cats.stew])
		assert.Equal(t, 1, summary.LeafVotes[cats.pasta])
		assert.Equal(t, 1, summary.LeafVotes[cats.pork])
	})

	t.Run("CUISINE만 BRANCH로 롤업", func(t *testing.T) {
		assert.Equal(t, 3, summary.BranchVotes[cats.koreanBranch])
		assert.Equal(t, 1, summary.BranchVotes[cats.westernBranch])

		// 기피 표는 BRANCH 합산에 섞이지 않습니다
		pork, ok := summary.Hierarchy.ByID(cats.pork)
		require.True(t, ok)
		require.NotNil(t, pork.ParentID)
		assert.Zero(t, summary.BranchVotes[*pork.ParentID])
	})
}

func TestTallyEmptyMeeting(t *testing.T) {
	setupTallyTest(t)
	m := createTestMeeting(t, "역삼역")

	summary, err := Tally(m.ID)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalRespondents)
	assert.Empty(t, summary.LeafVotes)
	assert.Empty(t, summary.BranchVotes)
	assert.NotNil(t, summary.Hierarchy)
}

func TestTallyMeetingNotFound(t *testing.T) {
	setupTallyTest(t)

	_, err := Tally(99999)
	assert.ErrorIs(t, err, meeting.ErrMeetingNotFound)
}

func TestTallyDropsUnknownCategoryVotes(t *testing.T) {
	cats := setupTallyTest(t)
	m := createTestMeeting(t, "선릉역")

	p, err := meeting.JoinMeeting(m.ID, "가", "user-1")
	require.NoError(t, err)

	// 검증을 거치지 않고 직접 삽입해, 트리에서 빠진 항목의 표를 흉내 냅니다
	s := Survey{MeetingID: m.ID, ParticipantID: p.ID}
	require.NoError(t, database.DB.Create(&s).Error)
	require.NoError(t, database.DB.Create(&SurveyResult{SurveyID: s.ID, SurveyCategoryID: 98765}).Error)
	require.NoError(t, database.DB.Create(&SurveyResult{SurveyID: s.ID, SurveyCategoryID: cats.rice}).Error)

	summary, err := Tally(m.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalRespondents)
	assert.Equal(t, 1, summary.LeafVotes[cats.rice])
	assert.NotContains(t, summary.LeafVotes, uint(98765))
}
