package handlers

import (
	"trickhub/helper"
	"trickhub/middleware"
	"trickhub/models"
	"trickhub/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid page or limit", h.Helper.EmptyJsonMap())
		return
	}
	params.Page, params.Limit = services.NormalizePaging(params.Page, params.Limit)

	articles, total, err := h.articleService.ListPublished(params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	for i := range articles {
		h.withMediaURL(c, &articles[i])
	}

	pagination := h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total))
	h.Helper.SendPaginated(c, "Articles loaded", articles, pagination)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	article, err := h.articleService.GetDetail(id, c.Param("slug"), h.Helper.ClientIP(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.withMediaURL(c, article)
	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if !bindRequest(c, h.Helper, &req) {
		return
	}

	article, err := h.articleService.Create(req, middleware.CurrentActor(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.withMediaURL(c, article)
	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if !bindRequest(c, h.Helper, &req) {
		return
	}

	article, err := h.articleService.Update(id, req, middleware.CurrentActor(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.withMediaURL(c, article)
	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	if err := h.articleService.Delete(id, middleware.CurrentActor(c)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) withMediaURL(c *gin.Context, article *models.Article) {
	article.Image = h.Helper.AbsoluteMediaURL(c, article.Image)
}
