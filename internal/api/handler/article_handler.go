package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /v1/articles.
//
// @Summary      Create a new article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article details"
// @Success      201   {object}  domain.Article
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), caller, ports.CreateArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, article)
}

// List handles GET /v1/articles. Public, sorted by title.
//
// @Summary      List all articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}  domain.Article
// @Router       /v1/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /v1/articles/:id. Public.
//
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  errorResponse
// @Router       /v1/articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Update handles PUT /v1/articles/:id. Editors and Admins may edit any
// article; Writers only their own.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to update"
// @Success      200   {object}  domain.Article
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	article, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /v1/articles/:id. Admin only.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "article deleted"})
}
