package place

import (
	"sort"

	"github.com/moyeobab/moyeobab-backend/internal/category"
	"github.com/moyeobab/moyeobab-backend/internal/survey"
)

// KeywordCandidate 는 득표에서 파생된 가중 검색 키워드입니다
type KeywordCandidate struct {
	// Keyword 는 검색 질의에 그대로 쓰이는 BRANCH 카테고리 이름입니다
	Keyword string `json:"keyword"`
	// Weight 는 득표 비율 (0,1] 입니다
	Weight float64 `json:"weight"`
	// CategoryID 는 원천 BRANCH 카테고리입니다
	CategoryID uint `json:"categoryId"`

	sortOrder int
}

// cuisineConflicts 는 기피 재료/메뉴와 음식 종류의 정적 호환성 표입니다.
// 운영팀과 함께 정의한 보수적 매핑만 담습니다. 여기에 없는 조합은
// 이름이 정확히 일치하는 경우를 제외하면 억제하지 않습니다.
var cuisineConflicts = map[string][]string{
	"돼지고기":   {"한식", "중식"},
	"해산물":    {"일식"},
	"날 음식":   {"일식"},
	"밀가루 음식": {"분식", "양식"},
	"유제품":    {"양식"},
}

// ResolveKeywords 는 설문 요약을 가중 키워드 후보 목록으로 변환합니다.
// 순서는 가중치 내림차순, 동률이면 sortOrder, 이름 순으로 결정적입니다.
// 과반 기피 신호에 걸린 음식 종류는 목록에서 제거되며,
// 결과가 비면 호출자가 대체 키워드를 사용합니다. 이 함수는 실패하지 않습니다
func ResolveKeywords(summary *survey.Summary) []KeywordCandidate {
	if summary == nil || summary.TotalRespondents == 0 {
		return nil
	}

	total := summary.TotalRespondents
	candidates := make([]KeywordCandidate, 0, len(summary.BranchVotes))

	for _, branch := range summary.Hierarchy.Branches(category.TypeCuisine) {
		votes := summary.BranchVotes[branch.ID]
		if votes <= 0 {
			continue
		}
		candidates = append(candidates, KeywordCandidate{
			Keyword:    branch.Name,
			Weight:     float64(votes) / float64(total),
			CategoryID: branch.ID,
			sortOrder:  branch.SortOrder,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			return candidates[i].Weight > candidates[j].Weight
		}
		if candidates[i].sortOrder != candidates[j].sortOrder {
			return candidates[i].sortOrder < candidates[j].sortOrder
		}
		return candidates[i].Keyword < candidates[j].Keyword
	})

	suppressed := majorityAvoidedConflicts(summary)
	if len(suppressed) == 0 {
		return candidates
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if !suppressed[c.Keyword] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// majorityAvoidedConflicts 는 과반(득표 > 전체/2)을 넘긴 기피 항목이
// 억제하는 음식 종류 이름의 집합을 만듭니다
func majorityAvoidedConflicts(summary *survey.Summary) map[string]bool {
	suppressed := make(map[string]bool)

	for leafID, votes := range summary.LeafVotes {
		leaf, ok := summary.Hierarchy.ByID(leafID)
		if !ok {
			continue
		}
		if leaf.Type != category.TypeAvoidIngredient && leaf.Type != category.TypeAvoidMenu {
			continue
		}
		if votes*2 <= summary.TotalRespondents {
			continue
		}

		// 호환성 표에 있는 충돌 + 이름이 정확히 일치하는 경우
		for _, cuisine := range cuisineConflicts[leaf.Name] {
			suppressed[cuisine] = true
		}
		suppressed[leaf.Name] = true
	}

	return suppressed
}
