package place

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultMaxKeywords = 3
	defaultMaxResults  = 15
)

// provider 는 setup 단계에서 주입되는 외부 검색 제공자입니다
var provider SearchProvider

// Configure 는 place 모듈이 사용할 검색 제공자를 설정합니다
func Configure(p SearchProvider) {
	provider = p
}

// mergedPlace 는 여러 키워드 질의의 결과를 장소 ID 기준으로 합친 중간 결과입니다
type mergedPlace struct {
	ProviderPlace
	// Weight 는 이 장소를 노출시킨 키워드 가중치의 합입니다
	Weight float64 `json:"weight"`
	// ProviderRank 는 처음 등장한 질의 안에서의 원래 순서입니다 (동률 판정용)
	ProviderRank int `json:"providerRank"`
}

// RankedPlace 는 좋아요 상태까지 결합된 최종 후보 한 건입니다
type RankedPlace struct {
	ProviderPlace
	Weight       float64 `json:"weight"`
	LikeCount    int     `json:"likeCount"`
	Liked        bool    `json:"liked"`
	providerRank int
}

// SearchResponse 는 장소 검색 파이프라인의 최종 출력입니다
type SearchResponse struct {
	StationName  string             `json:"stationName"`
	Keywords     []KeywordCandidate `json:"keywords"`
	UsedFallback bool               `json:"usedFallback"`
	Places       []RankedPlace      `json:"places"`
}

// searchQuery 는 제공자에 보낼 질의 한 건입니다
type searchQuery struct {
	text   string
	weight float64
}

// Search 는 검색 계획을 실행하고 좋아요 상태를 결합해 순위를 매깁니다
func Search(ctx context.Context, meetingID uint, userID string) (*SearchResponse, error) {
	plan, err := BuildPlan(meetingID)
	if err != nil {
		return nil, err
	}

	merged, err := executePlan(ctx, plan, meetingID)
	if err != nil {
		return nil, err
	}

	ranked, err := attachLikes(meetingID, userID, merged)
	if err != nil {
		return nil, err
	}

	// 최종 순위: 누적 가중치 → 좋아요 수 → 제공자 순위 (안정 정렬)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		if ranked[i].LikeCount != ranked[j].LikeCount {
			return ranked[i].LikeCount > ranked[j].LikeCount
		}
		return ranked[i].providerRank < ranked[j].providerRank
	})

	return &SearchResponse{
		StationName:  plan.StationName,
		Keywords:     plan.Keywords,
		UsedFallback: len(plan.Keywords) == 0,
		Places:       ranked,
	}, nil
}

// executePlan 은 계획의 질의들을 병렬 실행하고 결과를 병합합니다.
// 성공한 질의만으로도 결과를 만들고, 전부 실패했을 때만 에러를 반환합니다
func executePlan(ctx context.Context, plan *SearchPlan, meetingID uint) ([]mergedPlace, error) {
	if cached, ok := loadCachedResults(plan, meetingID); ok {
		return cached, nil
	}

	queries := buildQueries(plan)

	perQuery := make([][]ProviderPlace, len(queries))
	queryErrs := make([]error, len(queries))

	// 질의별 독립 실행: 느리거나 실패한 질의가 다른 질의를 막지 않습니다
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxKeywords())
	for i, q := range queries {
		g.Go(func() error {
			results, err := provider.TextSearch(gctx, q.text, maxResultsPerQuery())
			if err != nil {
				queryErrs[i] = err
				return nil
			}
			perQuery[i] = results
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	var firstErr error
	for i := range queries {
		if queryErrs[i] == nil {
			succeeded++
		} else if firstErr == nil {
			firstErr = queryErrs[i]
		}
	}
	if succeeded == 0 {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, firstErr)
	}

	merged := mergeResults(queries, perQuery)
	storeCachedResults(plan, meetingID, merged)
	return merged, nil
}

// buildQueries 는 상위 키워드(최대 N개)를 질의로 변환합니다.
// 키워드가 하나도 없으면 대체 키워드 단일 질의를 씁니다
func buildQueries(plan *SearchPlan) []searchQuery {
	if len(plan.Keywords) == 0 {
		return []searchQuery{{text: plan.FallbackKeyword}}
	}

	limit := maxKeywords()
	if len(plan.Keywords) < limit {
		limit = len(plan.Keywords)
	}

	queries := make([]searchQuery, 0, limit)
	for _, k := range plan.Keywords[:limit] {
		queries = append(queries, searchQuery{
			text:   plan.StationName + " " + k.Keyword,
			weight: k.Weight,
		})
	}
	return queries
}

// mergeResults 는 질의 결과들을 장소 ID 기준으로 중복 제거하며 병합합니다.
// 위치는 첫 등장이 차지하고, 같은 장소가 여러 키워드에서 나오면 가중치만 누적됩니다
func mergeResults(queries []searchQuery, perQuery [][]ProviderPlace) []mergedPlace {
	merged := make([]mergedPlace, 0)
	indexByID := make(map[string]int)

	for qi, results := range perQuery {
		for rank, p := range results {
			if p.ID == "" {
				continue
			}
			if idx, seen := indexByID[p.ID]; seen {
				merged[idx].Weight += queries[qi].weight
				continue
			}
			indexByID[p.ID] = len(merged)
			merged = append(merged, mergedPlace{
				ProviderPlace: p,
				Weight:        queries[qi].weight,
				ProviderRank:  rank,
			})
		}
	}
	return merged
}

// attachLikes 는 병합된 장소마다 MeetingPlace 행을 확보하고 좋아요 상태를 붙입니다
func attachLikes(meetingID uint, userID string, merged []mergedPlace) ([]RankedPlace, error) {
	ranked := make([]RankedPlace, 0, len(merged))
	placeIDs := make([]uint, 0, len(merged))

	for _, m := range merged {
		mp := MeetingPlace{MeetingID: meetingID, PlaceID: m.ID}
		err := database.DB.
			Where("meeting_id = ? AND place_id = ?", meetingID, m.ID).
			Attrs(MeetingPlace{
				Name:     m.Name,
				Address:  m.Address,
				Category: m.Category,
				Phone:    m.Phone,
				PlaceURL: m.PlaceURL,
				Lat:      m.Lat,
				Lng:      m.Lng,
			}).
			FirstOrCreate(&mp).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 같은 모임을 검색하는 요청이 동시에 행을 만들면 한쪽이 충돌을 봅니다.
			// 행은 이미 존재하므로 다시 읽어 이어갑니다
			err = database.DB.
				Where("meeting_id = ? AND place_id = ?", meetingID, m.ID).
				First(&mp).Error
		}
		if err != nil {
			return nil, fmt.Errorf("모임-장소 연결 확보 실패: %w", err)
		}

		placeIDs = append(placeIDs, mp.ID)
		ranked = append(ranked, RankedPlace{
			ProviderPlace: m.ProviderPlace,
			Weight:        m.Weight,
			LikeCount:     mp.LikeCount,
			providerRank:  m.ProviderRank,
		})
	}

	if userID == "" || len(placeIDs) == 0 {
		return ranked, nil
	}

	var likes []PlaceLike
	if err := database.DB.
		Where("meeting_place_id IN ? AND user_id = ?", placeIDs, userID).
		Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("좋아요 상태 조회 실패: %w", err)
	}

	likedSet := make(map[uint]bool, len(likes))
	for _, l := range likes {
		likedSet[l.MeetingPlaceID] = true
	}
	for i := range ranked {
		ranked[i].Liked = likedSet[placeIDs[i]]
	}
	return ranked, nil
}

func maxKeywords() int {
	if config.Cfg != nil && config.Cfg.Search.MaxKeywords > 0 {
		return config.Cfg.Search.MaxKeywords
	}
	return defaultMaxKeywords
}

func maxResultsPerQuery() int {
	if config.Cfg != nil && config.Cfg.Search.MaxResults > 0 {
		return config.Cfg.Search.MaxResults
	}
	return defaultMaxResults
}
