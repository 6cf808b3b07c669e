package handler

import (
	"errors"
	"net/http"

	"github.com/rohitpatil07/flaskapp/internal/monitoring"
	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler serves public profile pages and the follow/unfollow actions.
type UserHandler struct {
	Users    repository.UserRepository
	Follows  repository.FollowRepository
	Posts    repository.PostRepository
	PageSize int
}

func NewUserHandler(users repository.UserRepository, follows repository.FollowRepository, posts repository.PostRepository, pageSize int) *UserHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &UserHandler{Users: users, Follows: follows, Posts: posts, PageSize: pageSize}
}

// Profile renders a user's page: their data, follow counts and posts.
// Direct navigation to a missing profile is a hard 404.
func (h *UserHandler) Profile(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	username := c.Param("username")
	user, err := h.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "no such user")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query user")
		}
		return
	}

	followers, err := h.Follows.FollowerCount(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query followers")
		return
	}
	following, err := h.Follows.FollowingCount(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query following")
		return
	}
	isFollowing, err := h.Follows.IsFollowing(viewer.ID, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query follow state")
		return
	}

	posts, err := h.Posts.ByAuthor(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query posts")
		return
	}

	page := util.ParsePage(c.DefaultQuery("page", "1"))
	items, meta := util.PageOf(posts, page, h.PageSize)

	util.Success(c, util.Response{
		"user":         userJSON(user),
		"followers":    followers,
		"following":    following,
		"is_following": isFollowing,
		"posts":        toPostResps(items),
		"page":         meta,
	})
}

// Follow adds a follow edge to the named user. Acting on a stale link to a
// missing user degrades to a validation error rather than a 404.
func (h *UserHandler) Follow(c *gin.Context) {
	h.edgeAction(c, "follow")
}

// Unfollow removes the follow edge if present.
func (h *UserHandler) Unfollow(c *gin.Context) {
	h.edgeAction(c, "unfollow")
}

func (h *UserHandler) edgeAction(c *gin.Context, action string) {
	actor, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	username := c.Param("username")
	target, err := h.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "user "+username+" not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query user")
		}
		return
	}

	if action == "follow" {
		err = h.Follows.Follow(actor.ID, target.ID)
	} else {
		err = h.Follows.Unfollow(actor.ID, target.ID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrSelfFollow) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "you cannot "+action+" yourself")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to "+action)
		}
		return
	}

	monitoring.FollowActions.WithLabelValues(action).Inc()

	msg := "you are now following " + target.Username
	if action == "unfollow" {
		msg = "you are no longer following " + target.Username
	}
	util.Success(c, util.Response{
		"message": msg,
	})
}
