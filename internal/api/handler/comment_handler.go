package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	Content   string `json:"content" validate:"required"`
	ArticleID string `json:"article" validate:"required"`
	ParentID  string `json:"parent"`
}

// Create handles POST /v1/comments. On success the comment has already been
// broadcast to live clients; a delivery problem never fails this request.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  domain.Comment
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), caller, ports.CreateCommentInput{
		Content:   req.Content,
		ArticleID: req.ArticleID,
		ParentID:  req.ParentID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListByArticle handles GET /v1/comments/:articleId. Public.
//
// @Summary      List the comments on an article
// @Tags         comments
// @Produce      json
// @Param        articleId  path     string  true  "Article id"
// @Success      200        {array}  domain.Comment
// @Router       /v1/comments/{articleId} [get]
func (h *CommentHandler) ListByArticle(c echo.Context) error {
	comments, err := h.service.ListByArticle(c.Request().Context(), c.Param("articleId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
