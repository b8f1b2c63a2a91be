package place

import (
	"testing"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 키워드 해석 테스트에서 쓰는 고정 카테고리 ID
const (
	idKorean   = 1 // 한식 BRANCH
	idChinese  = 2 // 중식 BRANCH
	idJapanese = 3 // 일식 BRANCH
	idWestern  = 4 // 양식 BRANCH
	idAvoid    = 5 // 기피 재료 BRANCH
	idPork     = 6 // 돼지고기 LEAF
	idCucumber = 7 // 오이 LEAF
)

func uintPtr(v uint) *uint { return &v }

func keywordTestHierarchy() *category.Hierarchy {
	avoidParent := uintPtr(idAvoid)
	return category.NewHierarchy([]category.Category{
		{Model: gorm.Model{ID: idKorean}, Type: category.TypeCuisine, Level: category.LevelBranch, Name: "한식", SortOrder: 1},
		{Model: gorm.Model{ID: idChinese}, Type: category.TypeCuisine, Level: category.LevelBranch, Name: "중식", SortOrder: 2},
		{Model: gorm.Model{ID: idJapanese}, Type: category.TypeCuisine, Level: category.LevelBranch, Name: "일식", SortOrder: 3},
		{Model: gorm.Model{ID: idWestern}, Type: category.TypeCuisine, Level: category.LevelBranch, Name: "양식", SortOrder: 4},
		{Model: gorm.Model{ID: idAvoid}, Type: category.TypeAvoidIngredient, Level: category.LevelBranch, Name: "기피 재료", SortOrder: 5},
		{Model: gorm.Model{ID: idPork}, ParentID: avoidParent, Type: category.TypeAvoidIngredient, Level: category.LevelLeaf, Name: "돼지고기", SortOrder: 1},
		{Model: gorm.Model{ID: idCucumber}, ParentID: avoidParent, Type: category.TypeAvoidIngredient, Level: category.LevelLeaf, Name: "오이", SortOrder: 4},
	})
}

func summaryOf(total int, branchVotes map[uint]int, leafVotes map[uint]int) *survey.Summary {
	if branchVotes == nil {
		branchVotes = map[uint]int{}
	}
	if leafVotes == nil {
		leafVotes = map[uint]int{}
	}
	return &survey.Summary{
		TotalRespondents: total,
		LeafVotes:        leafVotes,
		BranchVotes:      branchVotes,
		Hierarchy:        keywordTestHierarchy(),
	}
}

func keywordsOf(candidates []KeywordCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Keyword)
	}
	return out
}

func TestResolveKeywordsWeights(t *testing.T) {
	// 4명 중 한식 3표, 양식 1표
	summary := summaryOf(4, map[uint]int{idKorean: 3, idWestern: 1}, nil)

	candidates := ResolveKeywords(summary)
	require.Len(t, candidates, 2)

	assert.Equal(t, "한식", candidates[0].Keyword)
	assert.InDelta(t, 0.75, candidates[0].Weight, 1e-9)
	assert.Equal(t, "양식", candidates[1].Keyword)
	assert.InDelta(t, 0.25, candidates[1].Weight, 1e-9)
}

func TestResolveKeywordsUnanimous(t *testing.T) {
	// 전원이 같은 음식 종류에 표를 주면 가중치는 정확히 1.0입니다
	summary := summaryOf(3, map[uint]int{idKorean: 3}, nil)

	candidates := ResolveKeywords(summary)
	require.Len(t, candidates, 1)
	assert.Equal(t, "한식", candidates[0].Keyword)
	assert.InDelta(t, 1.0, candidates[0].Weight, 1e-9)
}

func TestResolveKeywordsDeterministicOrder(t *testing.T) {
	// 동률이면 카테고리 정렬 순서로 순위가 갈립니다
	summary := summaryOf(4, map[uint]int{idWestern: 2, idChinese: 2}, nil)

	first := ResolveKeywords(summary)
	require.Equal(t, []string{"중식", "양식"}, keywordsOf(first))

	for i := 0; i < 10; i++ {
		again := ResolveKeywords(summaryOf(4, map[uint]int{idWestern: 2, idChinese: 2}, nil))
		assert.Equal(t, keywordsOf(first), keywordsOf(again))
	}
}

func TestResolveKeywordsEmptyInput(t *testing.T) {
	assert.Nil(t, ResolveKeywords(nil))
	assert.Nil(t, ResolveKeywords(summaryOf(0, nil, nil)))
}

func TestResolveKeywordsMajorityAvoidance(t *testing.T) {
	t.Run("과반 기피가 충돌 음식 종류를 억제", func(t *testing.T) {
		// 2명 모두 돼지고기 기피, 음식 종류 표는 한식뿐 → 후보가 비어 대체 키워드로 넘어갑니다
		summary := summaryOf(2,
			map[uint]int{idKorean: 2},
			map[uint]int{idPork: 2},
		)

		candidates := ResolveKeywords(summary)
		assert.Empty(t, candidates)
	})

	t.Run("충돌하지 않는 음식 종류는 유지", func(t *testing.T) {
		summary := summaryOf(2,
			map[uint]int{idKorean: 2, idJapanese: 1},
			map[uint]int{idPork: 2},
		)

		candidates := ResolveKeywords(summary)
		assert.Equal(t, []string{"일식"}, keywordsOf(candidates))
	})

	t.Run("정확히 절반은 과반이 아님", func(t *testing.T) {
		summary := summaryOf(4,
			map[uint]int{idKorean: 3},
			map[uint]int{idPork: 2},
		)

		candidates := ResolveKeywords(summary)
		assert.Equal(t, []string{"한식"}, keywordsOf(candidates))
	})

	t.Run("호환성 표에 없는 기피 항목은 음식 종류를 건드리지 않음", func(t *testing.T) {
		summary := summaryOf(2,
			map[uint]int{idKorean: 1, idWestern: 1},
			map[uint]int{idCucumber: 2},
		)

		candidates := ResolveKeywords(summary)
		assert.Equal(t, []string{"한식", "양식"}, keywordsOf(candidates))
	})
}
