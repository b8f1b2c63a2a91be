package category

import "gorm.io/gorm"

// Type 은 설문 카테고리의 종류를 나타내는 열거형입니다
type Type string

const (
	// TypeCuisine 은 선호 음식 종류(가중치의 원천)입니다
	TypeCuisine Type = "CUISINE"
	// TypeAvoidIngredient 는 기피 재료(억제 신호)입니다
	TypeAvoidIngredient Type = "AVOID_INGREDIENT"
	// TypeAvoidMenu 는 기피 메뉴(억제 신호)입니다
	TypeAvoidMenu Type = "AVOID_MENU"
)

// Level 은 2단계 카테고리 트리에서의 위치입니다
type Level string

const (
	// LevelBranch 는 최상위 분류(parentID == nil)입니다
	LevelBranch Level = "BRANCH"
	// LevelLeaf 는 선택 가능한 하위 항목(parentID != nil)입니다
	LevelLeaf Level = "LEAF"
)

// Category 는 설문 카테고리의 데이터 구조입니다
// 트리 깊이는 정확히 2이며, 모든 LEAF의 부모는 같은 타입의 BRANCH입니다
// gorm.Model의 DeletedAt 소프트 삭제가 isDeleted 역할을 합니다
type Category struct {
	gorm.Model

	// ParentID 는 LEAF가 속한 BRANCH의 ID입니다. BRANCH는 nil입니다
	ParentID *uint `gorm:"index" json:"parentId"`

	Type  Type  `gorm:"index;not null" json:"type"`
	Level Level `gorm:"not null" json:"level"`

	// Name 은 화면과 검색 키워드에 그대로 쓰이는 한글 이름입니다
	Name string `gorm:"not null" json:"name"`

	// SortOrder 는 동률 정렬의 2차 기준입니다
	SortOrder int `json:"sortOrder"`
}

// IsBranch 는 이 카테고리가 최상위 분류인지 반환합니다
func (c Category) IsBranch() bool {
	return c.Level == LevelBranch
}

// IsLeaf 는 이 카테고리가 선택 가능한 항목인지 반환합니다
func (c Category) IsLeaf() bool {
	return c.Level == LevelLeaf
}
