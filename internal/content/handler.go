package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nourishcoach/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListPosts godoc
// @Summary      List blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  Post
// @Router       /api/blog/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Fetch one blog post
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  Post
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/blog/posts/{slug} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddPost godoc
// @Summary      Publish a blog post
// @Description  The slug is derived from the title; excerpt and reading time are computed from the body.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        post  body      PostRequest  true  "Post fields"
// @Success      201   {object}  Post
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/blog/posts [post]
func (h *Handler) AddPost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.service.AddPost(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSlug):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInvalidTitle):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save post"})
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Flags godoc
// @Summary      Liked/saved state for a post
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  PostFlags
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/blog/posts/{slug}/flags [get]
func (h *Handler) Flags(c *gin.Context) {
	flags, err := h.service.Flags(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load flags"})
		return
	}
	c.JSON(http.StatusOK, flags)
}

func (h *Handler) respondToggle(c *gin.Context, key string, value bool, err error) {
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update flags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: value})
}

// ToggleLike godoc
// @Summary      Toggle the like flag on a post
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/blog/posts/{slug}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	liked, err := h.service.ToggleLike(c.Request.Context(), c.Param("slug"))
	h.respondToggle(c, "liked", liked, err)
}

// ToggleSave godoc
// @Summary      Toggle the save flag on a post
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/blog/posts/{slug}/save [post]
func (h *Handler) ToggleSave(c *gin.Context) {
	saved, err := h.service.ToggleSave(c.Request.Context(), c.Param("slug"))
	h.respondToggle(c, "saved", saved, err)
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Description  Optional min_rating and source query filters; the average covers the filtered set.
// @Tags         testimonials
// @Produce      json
// @Param        min_rating  query     int     false  "Minimum rating 1-5"
// @Param        source      query     string  false  "Review source"
// @Success      200         {object}  TestimonialList
// @Router       /api/testimonials [get]
func (h *Handler) ListTestimonials(c *gin.Context) {
	minRating, _ := strconv.Atoi(c.Query("min_rating"))

	list, err := h.service.ListTestimonials(c.Request.Context(), minRating, c.Query("source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddTestimonial godoc
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial  body      TestimonialRequest  true  "Name, text, rating 1-5, source"
// @Success      201          {object}  Testimonial
// @Failure      400          {object}  api.ErrorResponse
// @Router       /api/testimonials [post]
func (h *Handler) AddTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := api.FieldErrors(err); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	t, err := h.service.AddTestimonial(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save testimonial"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// Comments godoc
// @Summary      Comments on a post, newest first
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {array}   Comment
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/posts/{slug}/comments [get]
func (h *Handler) Comments(c *gin.Context) {
	comments, err := h.service.Comments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        slug     path      string          true  "Post slug"
// @Param        comment  body      CommentRequest  true  "Name and text"
// @Success      201      {object}  Comment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/posts/{slug}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
