package models

import "mime/multipart"

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

type RegisterResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateArticleRequest binds from JSON or from a multipart form; Image is only
// populated in the multipart case.
type CreateArticleRequest struct {
	Title    string                `json:"title" form:"title" validate:"required,min=1,max=255"`
	Slug     string                `json:"slug" form:"slug" validate:"omitempty,max=255,slug"`
	Body     string                `json:"body" form:"body" validate:"required"`
	Allowing bool                  `json:"allowing" form:"allowing"`
	Image    *multipart.FileHeader `json:"-" form:"image" validate:"-"`
}

// UpdateArticleRequest uses pointers so absent fields keep their stored value.
type UpdateArticleRequest struct {
	Title    *string               `json:"title" form:"title" validate:"omitempty,min=1,max=255"`
	Slug     *string               `json:"slug" form:"slug" validate:"omitempty,max=255,slug"`
	Body     *string               `json:"body" form:"body" validate:"omitempty,min=1"`
	Allowing *bool                 `json:"allowing" form:"allowing"`
	Image    *multipart.FileHeader `json:"-" form:"image" validate:"-"`
}

type CreateCommentRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Body  string `json:"body" validate:"required,max=5000"`
}

type ArticleListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

type LikeToggleResponse struct {
	Status    LikeStatus `json:"status"`
	LikeCount int64      `json:"like_count"`
}

// Actor is the caller identity taken from a verified token. A nil *Actor is an
// anonymous caller.
type Actor struct {
	UserID   uint
	Username string
	Role     UserRole
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
