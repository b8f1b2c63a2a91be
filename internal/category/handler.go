package category

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- API 응답 모델 ---

type LeafResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type BranchResponse struct {
	ID        uint           `json:"id"`
	Type      Type           `json:"type"`
	Name      string         `json:"name"`
	SortOrder int            `json:"sortOrder"`
	Leaves    []LeafResponse `json:"leaves"`
}

// GetCategories 는 활성 카테고리 트리를 BRANCH 단위로 묶어 반환합니다
func GetCategories(c *gin.Context) {
	h, err := LoadHierarchy()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "카테고리 조회에 실패했습니다"})
		return
	}

	var responses []BranchResponse
	for _, t := range []Type{TypeCuisine, TypeAvoidIngredient, TypeAvoidMenu} {
		for _, branch := range h.Branches(t) {
			resp := BranchResponse{
				ID:        branch.ID,
				Type:      branch.Type,
				Name:      branch.Name,
				SortOrder: branch.SortOrder,
			}
			for _, leafID := range h.ChildrenOf(branch.ID) {
				if leaf, ok := h.ByID(leafID); ok {
					resp.Leaves = append(resp.Leaves, LeafResponse{
						ID:        leaf.ID,
						Name:      leaf.Name,
						SortOrder: leaf.SortOrder,
					})
				}
			}
			responses = append(responses, resp)
		}
	}

	c.JSON(http.StatusOK, responses)
}
