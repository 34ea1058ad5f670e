package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumhub/forumhub/backend/forum-service/internal/content"
	"github.com/forumhub/forumhub/backend/forum-service/internal/posting"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/logger"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/metrics"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/middleware"
)

// ForumHandler serves the read views and the posting endpoint.
type ForumHandler struct {
	agg      *content.Aggregator
	postsSvc *posting.Service
}

func NewForumHandler(agg *content.Aggregator, p *posting.Service) *ForumHandler {
	return &ForumHandler{agg: agg, postsSvc: p}
}

// Register wires the content routes. Posting shares the /forum paths with the
// read views: POST to a forum creates a top-level post, POST to a message
// creates a reply.
func (h *ForumHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.ForumList)
	f := rg.Group("/forum")
	f.GET("/:forum", h.ForumView)
	f.GET("/:forum/:message", h.ThreadView)
	f.POST("/:forum", h.Submit)
	f.POST("/:forum/:message", h.Submit)
}

func (h *ForumHandler) ForumList(c *gin.Context) {
	view, err := h.agg.ForumList(c.Request.Context())
	if err != nil {
		logger.Errorf("forum list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load forums"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ForumHandler) ForumView(c *gin.Context) {
	view, err := h.agg.ForumView(c.Request.Context(), c.Param("forum"))
	if err != nil {
		h.renderViewError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ForumHandler) ThreadView(c *gin.Context) {
	view, err := h.agg.ThreadView(c.Request.Context(), c.Param("forum"), c.Param("message"))
	if err != nil {
		h.renderViewError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit creates a top-level post or a reply, depending on whether the route
// carried a message id. The redirect target comes from the pipeline: replies
// land back on the thread root.
func (h *ForumHandler) Submit(c *gin.Context) {
	req := posting.SubmitRequest{
		ForumID:  c.Param("forum"),
		ParentID: c.Param("message"),
		Identity: middleware.Identity(c),
		Title:    c.PostForm("title"),
		Body:     c.PostForm("body"),
	}

	res, err := h.postsSvc.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, posting.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		case errors.Is(err, posting.ErrEmptyField):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and body are required"})
		default:
			logger.Errorf("message submission failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		}
		return
	}

	placement := "post"
	if req.ParentID != "" {
		placement = "reply"
	}
	metrics.MessagesPosted.WithLabelValues(placement).Inc()
	c.Redirect(http.StatusSeeOther, res.Redirect)
}

func (h *ForumHandler) renderViewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrForumNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "forum not found"})
	case errors.Is(err, content.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	default:
		logger.Errorf("view assembly failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load view"})
	}
}
