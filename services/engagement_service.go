package services

import (
	"errors"
	"fmt"

	"trickhub/apperror"
	"trickhub/models"
	"trickhub/repositories"

	"gorm.io/gorm"
)

type EngagementService interface {
	HitRecorder
	ToggleLike(articleID, userID uint) (*models.LikeToggleResponse, error)
	ListLikes(articleID uint) ([]models.Like, error)
	ListComments(articleID uint) ([]models.Comment, error)
	CreateComment(articleID uint, req models.CreateCommentRequest, actor *models.Actor) (*models.Comment, error)
}

type engagementService struct {
	articleRepo repositories.ArticleRepository
	likeRepo    repositories.LikeRepository
	commentRepo repositories.CommentRepository
	ipRepo      repositories.IPAddressRepository
}

func NewEngagementService(
	articleRepo repositories.ArticleRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	ipRepo repositories.IPAddressRepository,
) EngagementService {
	return &engagementService{
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		ipRepo:      ipRepo,
	}
}

// RecordHit associates ip with the article once; repeated views from the same
// address leave the hit set unchanged.
func (s *engagementService) RecordHit(articleID uint, ip string) error {
	if ip == "" {
		return nil
	}

	address, err := s.ipRepo.GetOrCreate(ip)
	if err != nil {
		return fmt.Errorf("resolving ip %s: %w", ip, err)
	}

	seen, err := s.ipRepo.HasHit(articleID, address.ID)
	if err != nil {
		return fmt.Errorf("checking hit: %w", err)
	}
	if seen {
		return nil
	}

	return s.ipRepo.AddHit(articleID, address.ID)
}

func (s *engagementService) ToggleLike(articleID, userID uint) (*models.LikeToggleResponse, error) {
	if err := s.requirePublished(articleID); err != nil {
		return nil, err
	}

	status := models.StatusLiked
	like, err := s.likeRepo.Find(userID, articleID)
	switch {
	case err == nil:
		if err := s.likeRepo.Delete(like); err != nil {
			return nil, fmt.Errorf("removing like: %w", err)
		}
		status = models.StatusUnliked
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.likeRepo.Create(&models.Like{UserID: userID, ArticleID: articleID}); err != nil {
			return nil, fmt.Errorf("adding like: %w", err)
		}
	default:
		return nil, fmt.Errorf("loading like: %w", err)
	}

	count, err := s.likeRepo.CountByArticle(articleID)
	if err != nil {
		return nil, fmt.Errorf("counting likes: %w", err)
	}

	return &models.LikeToggleResponse{Status: status, LikeCount: count}, nil
}

func (s *engagementService) ListLikes(articleID uint) ([]models.Like, error) {
	if err := s.requirePublished(articleID); err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.ListByArticle(articleID)
	if err != nil {
		return nil, fmt.Errorf("listing likes: %w", err)
	}
	return likes, nil
}

func (s *engagementService) ListComments(articleID uint) ([]models.Comment, error) {
	if err := s.requirePublished(articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByArticle(articleID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *engagementService) CreateComment(articleID uint, req models.CreateCommentRequest, actor *models.Actor) (*models.Comment, error) {
	if err := s.requirePublished(articleID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Name:      req.Name,
		Email:     req.Email,
		Body:      req.Body,
	}

	if actor != nil {
		comment.UserID = &actor.UserID
		if comment.Name == "" {
			comment.Name = actor.Username
		}
	}
	if comment.Name == "" {
		return nil, apperror.ValidationFailed("name", "This field is required.")
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return comment, nil
}

func (s *engagementService) requirePublished(articleID uint) error {
	_, err := s.articleRepo.GetPublishedByID(articleID)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("article", articleID)
	}
	return fmt.Errorf("loading article %d: %w", articleID, err)
}
