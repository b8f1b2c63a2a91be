package category

import (
	"fmt"

	"github.com/moyeobab/moyeobab-backend/internal/platform/database"
	"gorm.io/gorm"
)

// PrimeDB 는 category 모듈의 테이블을 마이그레이션하고 기본 데이터를 적재합니다
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Category{}); err != nil {
		return fmt.Errorf("category 테이블을 마이그레이션할 수 없습니다: %w", err)
	}

	var count int64
	if err := database.DB.Model(&Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("category 테이블을 조회할 수 없습니다: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := seedDefaultCategories(); err != nil {
		return err
	}
	fmt.Println("기본 설문 카테고리를 적재했습니다.")
	return nil
}

// seedDefaultCategories 는 운영에서 쓰는 2단계 카테고리 트리를 넣습니다.
// BRANCH를 먼저 만들어 ID를 확보한 뒤 LEAF를 연결합니다.
func seedDefaultCategories() error {
	seed := []struct {
		typ    Type
		branch string
		leaves []string
	}{
		{TypeCuisine, "한식", []string{"밥류", "국·찌개", "고기구이"}},
		{TypeCuisine, "중식", []string{"짜장·짬뽕", "마라·훠궈"}},
		{TypeCuisine, "일식", []string{"초밥·회", "라멘·돈카츠"}},
		{TypeCuisine, "양식", []string{"파스타", "피자·버거", "스테이크"}},
		{TypeCuisine, "아시안", []string{"쌀국수", "커리"}},
		{TypeCuisine, "분식", []string{"떡볶이·김밥"}},
		{TypeAvoidIngredient, "기피 재료", []string{"돼지고기", "소고기", "해산물", "오이", "고수", "유제품"}},
		{TypeAvoidMenu, "기피 메뉴", []string{"매운 음식", "날 음식", "밀가루 음식", "튀김"}},
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		order := 0
		for _, s := range seed {
			order++
			branch := Category{
				Type:      s.typ,
				Level:     LevelBranch,
				Name:      s.branch,
				SortOrder: order,
			}
			if err := tx.Create(&branch).Error; err != nil {
				return fmt.Errorf("BRANCH 카테고리 '%s' 생성 실패: %w", s.branch, err)
			}

			for i, leafName := range s.leaves {
				leaf := Category{
					ParentID:  &branch.ID,
					Type:      s.typ,
					Level:     LevelLeaf,
					Name:      leafName,
					SortOrder: i + 1,
				}
				if err := tx.Create(&leaf).Error; err != nil {
					return fmt.Errorf("LEAF 카테고리 '%s' 생성 실패: %w", leafName, err)
				}
			}
		}
		return nil
	})
}
