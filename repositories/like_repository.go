package repositories

import (
	"trickhub/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Find(userID, articleID uint) (*models.Like, error)
	Create(like *models.Like) error
	Delete(like *models.Like) error
	ListByArticle(articleID uint) ([]models.Like, error)
	CountByArticle(articleID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(userID, articleID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&like).Error
	return &like, err
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Omit("User", "Article").Create(like).Error
}

func (r *likeRepository) Delete(like *models.Like) error {
	return r.db.Delete(like).Error
}

func (r *likeRepository) ListByArticle(articleID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at asc").
		Find(&likes).Error
	return likes, err
}

func (r *likeRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
