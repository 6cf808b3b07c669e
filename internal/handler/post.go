package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rohitpatil07/flaskapp/internal/models"
	"github.com/rohitpatil07/flaskapp/internal/monitoring"
	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
)

// PostHandler owns post creation and the feed/explore pages.
type PostHandler struct {
	Posts    repository.PostRepository
	PageSize int
}

func NewPostHandler(posts repository.PostRepository, pageSize int) *PostHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostHandler{Posts: posts, PageSize: pageSize}
}

type createPostReq struct {
	Body string `json:"body" binding:"required"`
	Link string `json:"link" binding:"max=255"`
}

// CreatePost writes a new post for the current user. CreatedAt is assigned
// by the store at write time.
func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Body = strings.TrimSpace(req.Body)
	req.Link = strings.TrimSpace(req.Link)

	if err := util.ValidatePostBody(req.Body); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if req.Link != "" {
		if u, err := url.Parse(req.Link); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "link must be an http(s) URL")
			return
		}
	}

	post := models.Post{
		AuthorID: user.ID,
		Body:     req.Body,
		Link:     req.Link,
	}
	if err := h.Posts.Create(&post); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save post")
		return
	}
	post.Author = *user

	monitoring.PostsCreated.Inc()
	util.Success(c, util.Response{
		"post": toPostResp(&post),
	})
}

// Feed returns the current user's followed posts, paginated.
func (h *PostHandler) Feed(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	posts, err := h.Posts.FollowedPosts(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query feed")
		return
	}

	page := util.ParsePage(c.DefaultQuery("page", "1"))
	items, meta := util.PageOf(posts, page, h.PageSize)

	util.Success(c, util.Response{
		"posts": toPostResps(items),
		"page":  meta,
	})
}

// Explore returns all posts across all users, paginated.
func (h *PostHandler) Explore(c *gin.Context) {
	posts, err := h.Posts.ExplorePosts()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query posts")
		return
	}

	page := util.ParsePage(c.DefaultQuery("page", "1"))
	items, meta := util.PageOf(posts, page, h.PageSize)

	util.Success(c, util.Response{
		"posts": toPostResps(items),
		"page":  meta,
	})
}
