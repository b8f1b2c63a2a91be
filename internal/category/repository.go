package category

import (
	"fmt"
	"sort"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
)

// ListActive 는 삭제되지 않은 전체 카테고리를 정렬 순서대로 반환합니다
func ListActive() ([]Category, error) {
	var cats []Category
	if err := database.DB.Order("sort_order asc, id asc").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("카테고리 목록을 읽을 수 없습니다: %w", err)
	}
	return cats, nil
}

// Hierarchy 는 2단계 카테고리 트리의 읽기 전용 인덱스입니다.
// 순환 참조가 있는 객체 그래프 대신, 해석 시점마다 새로 만드는
// 인접 맵(parentID → 자식 ID 목록) 형태로 들고 있습니다.
type Hierarchy struct {
	byID     map[uint]Category
	children map[uint][]uint
	branches map[Type][]Category
}

// NewHierarchy 는 카테고리 목록으로부터 인덱스를 구성합니다
func NewHierarchy(cats []Category) *Hierarchy {
	h := &Hierarchy{
		byID:     make(map[uint]Category, len(cats)),
		children: make(map[uint][]uint),
		branches: make(map[Type][]Category),
	}

	for _, c := range cats {
		h.byID[c.ID] = c
		if c.IsBranch() {
			h.branches[c.Type] = append(h.branches[c.Type], c)
		} else if c.ParentID != nil {
			h.children[*c.ParentID] = append(h.children[*c.ParentID], c.ID)
		}
	}

	for t := range h.branches {
		bs := h.branches[t]
		sort.SliceStable(bs, func(i, j int) bool {
			if bs[i].SortOrder != bs[j].SortOrder {
				return bs[i].SortOrder < bs[j].SortOrder
			}
			return bs[i].ID < bs[j].ID
		})
	}

	return h
}

// LoadHierarchy 는 활성 카테고리를 읽어 새 인덱스를 만듭니다
func LoadHierarchy() (*Hierarchy, error) {
	cats, err := ListActive()
	if err != nil {
		return nil, err
	}
	return NewHierarchy(cats), nil
}

// ByID 는 ID로 카테고리를 찾습니다
func (h *Hierarchy) ByID(id uint) (Category, bool) {
	c, ok := h.byID[id]
	return c, ok
}

// ParentOf 는 LEAF의 부모 BRANCH를 찾습니다
func (h *Hierarchy) ParentOf(leaf Category) (Category, bool) {
	if leaf.ParentID == nil {
		return Category{}, false
	}
	return h.ByID(*leaf.ParentID)
}

// Branches 는 지정 타입의 BRANCH 목록을 정렬 순서대로 반환합니다
func (h *Hierarchy) Branches(t Type) []Category {
	return h.branches[t]
}

// ChildrenOf 는 BRANCH 아래의 LEAF ID 목록을 반환합니다
func (h *Hierarchy) ChildrenOf(branchID uint) []uint {
	return h.children[branchID]
}

// Size 는 인덱스에 적재된 카테고리 수를 반환합니다
func (h *Hierarchy) Size() int {
	return len(h.byID)
}
