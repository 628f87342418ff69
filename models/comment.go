package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	Article   *Article  `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"-" gorm:"size:255"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
