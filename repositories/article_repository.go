package repositories

import (
	"trickhub/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetPublishedByID(id uint) (*models.Article, error)
	GetPublished(id uint, slug string) (*models.Article, error)
	ListPublished(offset, limit int) ([]models.Article, int64, error)
	Update(article *models.Article, fields map[string]interface{}) error
	Delete(id uint) error
	CountHits(articleIDs []uint) (map[uint]int64, error)
	CountLikes(articleIDs []uint) (map[uint]int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Omit("Hits").Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetPublishedByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND allowing = ?", id, true).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetPublished(id uint, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("User").
		Where("id = ? AND slug = ? AND allowing = ?", id, slug, true).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) ListPublished(offset, limit int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	err := r.db.Model(&models.Article{}).Where("allowing = ?", true).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Preload("User").
		Where("allowing = ?", true).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error

	return articles, total, err
}

// Update writes only the given columns so untouched fields keep their value.
func (r *articleRepository) Update(article *models.Article, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(article).Updates(fields).Error
}

// Delete removes the article together with its likes, comments and hit
// associations in one transaction.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM article_hits WHERE article_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

func (r *articleRepository) CountHits(articleIDs []uint) (map[uint]int64, error) {
	return r.countByArticle("article_hits", articleIDs)
}

func (r *articleRepository) CountLikes(articleIDs []uint) (map[uint]int64, error) {
	return r.countByArticle("likes", articleIDs)
}

func (r *articleRepository) countByArticle(table string, articleIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	var results []struct {
		ArticleID uint
		Count     int64
	}
	err := r.db.Table(table).
		Select("article_id, COUNT(*) as count").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		counts[result.ArticleID] = result.Count
	}
	return counts, nil
}
