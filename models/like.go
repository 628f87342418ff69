package models

import (
	"time"

	"gorm.io/gorm"
)

type LikeStatus string

const (
	StatusLiked   LikeStatus = "liked"
	StatusUnliked LikeStatus = "unliked"
)

// Like has no soft delete: the (user_id, article_id) unique index must allow
// the pair to come back after a toggle-off.
type Like struct {
	ID        uint        `json:"id" gorm:"primarykey"`
	UserID    uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_article"`
	ArticleID uint        `json:"article_id" gorm:"not null;uniqueIndex:idx_like_user_article;index"`
	User      *User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Liker     *PublicUser `json:"user,omitempty" gorm:"-"`
	Article   *Article    `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
}

func (l *Like) AfterFind(tx *gorm.DB) error {
	l.Liker = l.User.Public()
	return nil
}
