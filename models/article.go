package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID        uint        `json:"id" gorm:"primarykey"`
	Title     string      `json:"title" gorm:"size:255;not null"`
	Slug      string      `json:"slug" gorm:"size:255;index;not null"`
	Image     string      `json:"image" gorm:"size:255"`
	Body      string      `json:"body" gorm:"type:text"`
	Allowing  bool        `json:"allowing" gorm:"index;default:false"`
	UserID    *uint       `json:"user_id" gorm:"index"`
	User      *User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Author    *PublicUser `json:"user,omitempty" gorm:"-"`
	Hits      []IPAddress `json:"-" gorm:"many2many:article_hits;constraint:OnDelete:CASCADE"`
	HitCount  int64       `json:"hit_count" gorm:"-"`
	LikeCount int64       `json:"like_count" gorm:"-"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AfterFind runs after preloads, so a loaded owner is exposed only through
// its public fields.
func (a *Article) AfterFind(tx *gorm.DB) error {
	a.Author = a.User.Public()
	return nil
}

// OwnedBy reports whether userID is the recorded owner. Ownerless articles
// belong to nobody.
func (a *Article) OwnedBy(userID uint) bool {
	return a.UserID != nil && *a.UserID == userID
}
