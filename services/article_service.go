package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"trickhub/apperror"
	"trickhub/models"
	"trickhub/repositories"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Slugs that would collide with the sub-resource routes under an article id.
var reservedSlugs = map[string]bool{
	"likes":    true,
	"comments": true,
}

type ArticleService interface {
	ListPublished(params models.ArticleListParams) ([]models.Article, int64, error)
	GetDetail(id uint, articleSlug, clientIP string) (*models.Article, error)
	Create(req models.CreateArticleRequest, actor *models.Actor) (*models.Article, error)
	Update(id uint, req models.UpdateArticleRequest, actor *models.Actor) (*models.Article, error)
	Delete(id uint, actor *models.Actor) error
}

// HitRecorder records a view of an article from a client address.
type HitRecorder interface {
	RecordHit(articleID uint, ip string) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	hits        HitRecorder
	media       MediaStorage
}

func NewArticleService(articleRepo repositories.ArticleRepository, hits HitRecorder, media MediaStorage) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		hits:        hits,
		media:       media,
	}
}

func (s *articleService) ListPublished(params models.ArticleListParams) ([]models.Article, int64, error) {
	page, limit := NormalizePaging(params.Page, params.Limit)

	articles, total, err := s.articleRepo.ListPublished((page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing articles: %w", err)
	}

	if err := s.fillCounts(articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (s *articleService) GetDetail(id uint, articleSlug, clientIP string) (*models.Article, error) {
	article, err := s.articleRepo.GetPublished(id, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("article", id)
		}
		return nil, fmt.Errorf("loading article %d: %w", id, err)
	}

	if err := s.hits.RecordHit(article.ID, clientIP); err != nil {
		slog.Warn("recording article hit failed",
			slog.Uint64("article_id", uint64(article.ID)),
			slog.String("ip", clientIP),
			slog.String("error", err.Error()),
		)
	}

	articles := []models.Article{*article}
	if err := s.fillCounts(articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

func (s *articleService) Create(req models.CreateArticleRequest, actor *models.Actor) (*models.Article, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("You do not have permission to perform this action.")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.ValidationFailed("title", "This field may not be blank.")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperror.ValidationFailed("body", "This field may not be blank.")
	}

	articleSlug, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:    req.Title,
		Slug:     articleSlug,
		Body:     req.Body,
		Allowing: req.Allowing,
		UserID:   &actor.UserID,
	}

	if req.Image != nil {
		image, err := s.media.Save(req.Image)
		if err != nil {
			return nil, err
		}
		article.Image = image
	}

	if err := s.articleRepo.Create(article); err != nil {
		s.discardImage(article.Image)
		return nil, fmt.Errorf("creating article: %w", err)
	}

	slog.Info("article created", slog.Uint64("article_id", uint64(article.ID)), slog.String("slug", article.Slug))
	return s.reload(article.ID)
}

func (s *articleService) Update(id uint, req models.UpdateArticleRequest, actor *models.Actor) (*models.Article, error) {
	article, err := s.loadForWrite(id, actor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperror.ValidationFailed("title", "This field may not be blank.")
		}
		fields["title"] = *req.Title
	}
	if req.Slug != nil {
		if *req.Slug == "" {
			return nil, apperror.ValidationFailed("slug", "This field may not be blank.")
		}
		if reservedSlugs[*req.Slug] {
			return nil, apperror.ValidationFailed("slug", fmt.Sprintf("%q is a reserved slug.", *req.Slug))
		}
		fields["slug"] = *req.Slug
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			return nil, apperror.ValidationFailed("body", "This field may not be blank.")
		}
		fields["body"] = *req.Body
	}
	if req.Allowing != nil {
		fields["allowing"] = *req.Allowing
	}

	oldImage := article.Image
	if req.Image != nil {
		image, err := s.media.Save(req.Image)
		if err != nil {
			return nil, err
		}
		fields["image"] = image
	}

	if err := s.articleRepo.Update(article, fields); err != nil {
		if image, ok := fields["image"].(string); ok {
			s.discardImage(image)
		}
		return nil, fmt.Errorf("updating article %d: %w", id, err)
	}

	if _, replaced := fields["image"]; replaced {
		s.discardImage(oldImage)
	}

	return s.reload(id)
}

func (s *articleService) Delete(id uint, actor *models.Actor) error {
	article, err := s.loadForWrite(id, actor)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting article %d: %w", id, err)
	}
	s.discardImage(article.Image)

	slog.Info("article deleted", slog.Uint64("article_id", uint64(id)))
	return nil
}

// loadForWrite returns the article when actor is an admin or its owner.
func (s *articleService) loadForWrite(id uint, actor *models.Actor) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("article", id)
		}
		return nil, fmt.Errorf("loading article %d: %w", id, err)
	}

	if actor == nil || !(actor.IsAdmin() || article.OwnedBy(actor.UserID)) {
		return nil, apperror.Forbidden("You do not have permission to perform this action.")
	}
	return article, nil
}

func (s *articleService) reload(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("reloading article %d: %w", id, err)
	}

	articles := []models.Article{*article}
	if err := s.fillCounts(articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

func (s *articleService) fillCounts(articles []models.Article) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]uint, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}

	hits, err := s.articleRepo.CountHits(ids)
	if err != nil {
		return fmt.Errorf("counting hits: %w", err)
	}
	likes, err := s.articleRepo.CountLikes(ids)
	if err != nil {
		return fmt.Errorf("counting likes: %w", err)
	}

	for i := range articles {
		articles[i].HitCount = hits[articles[i].ID]
		articles[i].LikeCount = likes[articles[i].ID]
	}
	return nil
}

func (s *articleService) discardImage(image string) {
	if image == "" {
		return
	}
	if err := s.media.Remove(image); err != nil {
		slog.Warn("removing article image failed", slog.String("image", image), slog.String("error", err.Error()))
	}
}

// resolveSlug keeps an explicit slug or derives one from the title.
func resolveSlug(explicit, title string) (string, error) {
	s := explicit
	if s == "" {
		s = slug.Make(title)
	}
	if s == "" {
		return "", apperror.ValidationFailed("slug", "Could not derive a slug from the title; provide one.")
	}
	if reservedSlugs[s] {
		return "", apperror.ValidationFailed("slug", fmt.Sprintf("%q is a reserved slug.", s))
	}
	return s, nil
}

// NormalizePaging applies the list defaults and caps the page size.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
