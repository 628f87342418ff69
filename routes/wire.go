package routes

import (
	"trickhub/config"
	"trickhub/repositories"
	"trickhub/services"

	"gorm.io/gorm"
)

// Wire builds the repositories and services over db.
func Wire(cfg *config.Config, db *gorm.DB) Services {
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	ipRepo := repositories.NewIPAddressRepository(db)

	tokens := services.NewTokenService([]byte(cfg.JWT.Secret), cfg.JWT.Expiration)
	engagement := services.NewEngagementService(articleRepo, likeRepo, commentRepo, ipRepo)

	return Services{
		Auth:       services.NewAuthService(userRepo, tokens),
		Tokens:     tokens,
		Articles:   services.NewArticleService(articleRepo, engagement, services.NewLocalMediaStorage(cfg.Media.Root)),
		Engagement: engagement,
	}
}
