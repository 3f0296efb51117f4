package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/api/metrics"
	"github.com/inkwell/blog-platform/internal/api/middleware"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List returns every post visible to the requester, most recently updated
// first. Authentication is advisory: anonymous requests see public posts only.
//
// @Summary      List visible blog posts
// @Tags         blogposts
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /blogposts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context(), middleware.IdentityFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post by id, subject to the visibility policy.
//
// @Summary      Fetch a blog post by id
// @Tags         blogposts
// @Produce      json
// @Param        id   path      string  true  "Post id (UUID)"
// @Success      200  {object}  postResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogposts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), middleware.IdentityFromContext(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create stores a new post authored by the logged-in user.
//
// @Summary      Create a blog post
// @Tags         blogposts
// @Accept       json
// @Produce      json
// @Param        body  body      postRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /blogposts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), middleware.IdentityFromContext(c), ports.PostDraft{
		Title:       req.Title,
		Content:     req.Content,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(post.Permissions)).Inc()
	return c.JSON(http.StatusCreated, post)
}

// Update applies a partial edit to a post owned by the logged-in user.
//
// @Summary      Update a blog post
// @Tags         blogposts
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Post id (UUID)"
// @Param        body  body      postRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blogposts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), middleware.IdentityFromContext(c), c.Param("id"), ports.PostDraft{
		Title:       req.Title,
		Content:     req.Content,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the logged-in user.
//
// @Summary      Delete a blog post
// @Tags         blogposts
// @Param        id  path  string  true  "Post id (UUID)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /blogposts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), middleware.IdentityFromContext(c), c.Param("id")); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
