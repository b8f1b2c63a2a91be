package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func buildTestCategories() []Category {
	return []Category{
		{Model: gorm.Model{ID: 1}, Type: TypeCuisine, Level: LevelBranch, Name: "한식", SortOrder: 1},
		{Model: gorm.Model{ID: 2}, Type: TypeCuisine, Level: LevelBranch, Name: "양식", SortOrder: 2},
		{Model: gorm.Model{ID: 3}, ParentID: uintPtr(1), Type: TypeCuisine, Level: LevelLeaf, Name: "밥류", SortOrder: 1},
		{Model: gorm.Model{ID: 4}, ParentID: uintPtr(1), Type: TypeCuisine, Level: LevelLeaf, Name: "국·찌개", SortOrder: 2},
		{Model: gorm.Model{ID: 5}, ParentID: uintPtr(2), Type: TypeCuisine, Level: LevelLeaf, Name: "파스타", SortOrder: 1},
		{Model: gorm.Model{ID: 6}, Type: TypeAvoidIngredient, Level: LevelBranch, Name: "기피 재료", SortOrder: 3},
		{Model: gorm.Model{ID: 7}, ParentID: uintPtr(6), Type: TypeAvoidIngredient, Level: LevelLeaf, Name: "돼지고기", SortOrder: 1},
	}
}

func TestNewHierarchy(t *testing.T) {
	h := NewHierarchy(buildTestCategories())

	t.Run("ByID", func(t *testing.T) {
		c, ok := h.ByID(3)
		require.True(t, ok)
		assert.Equal(t, "밥류", c.Name)
		assert.True(t, c.IsLeaf())

		_, ok = h.ByID(999)
		assert.False(t, ok)
	})

	t.Run("ParentOf", func(t *testing.T) {
		leaf, _ := h.ByID(5)
		parent, ok := h.ParentOf(leaf)
		require.True(t, ok)
		assert.Equal(t, "양식", parent.Name)

		branch, _ := h.ByID(1)
		_, ok = h.ParentOf(branch)
		assert.False(t, ok)
	})

	t.Run("타입별 BRANCH 정렬", func(t *testing.T) {
		branches := h.Branches(TypeCuisine)
		require.Len(t, branches, 2)
		assert.Equal(t, "한식", branches[0].Name)
		assert.Equal(t, "양식", branches[1].Name)

		avoid := h.Branches(TypeAvoidIngredient)
		require.Len(t, avoid, 1)
		assert.Equal(t, "기피 재료", avoid[0].Name)
	})

	t.Run("ChildrenOf", func(t *testing.T) {
		children := h.ChildrenOf(1)
		assert.Equal(t, []uint{3, 4}, children)
		assert.Empty(t, h.ChildrenOf(3))
	})

	t.Run("Size", func(t *testing.T) {
		assert.Equal(t, 7, h.Size())
	})
}
