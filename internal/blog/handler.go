package blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satyensinh/trainer-booking-backend/internal/api"
	"github.com/satyensinh/trainer-booking-backend/internal/logger"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListPosts godoc
// @Summary      Blog posts
// @Description  Returns all posts, newest first.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   BlogPost
// @Failure      500  {object}  api.ErrorResponse
// @Router       /blogs [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to fetch posts")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	if posts == nil {
		posts = []BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200  {object}  BlogPost
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /blogs/{slug} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.svc.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Post not found"})
			return
		}
		logger.WithError(err).Error("failed to fetch post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        post  body      CreatePostRequest  true  "Post fields"
// @Success      201  {object}  BlogPost
// @Failure      400  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /blogs [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to create post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusCreated, post)
}
