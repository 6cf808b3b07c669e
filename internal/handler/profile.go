package handler

import (
	"net/http"
	"strings"

	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the current user's own data.
type ProfileHandler struct {
	Users repository.UserRepository
}

func NewProfileHandler(users repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

// GetMe returns the current logged-in user.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	util.Success(c, util.Response{
		"user": userJSON(user),
	})
}

type updateProfileReq struct {
	AboutMe string `json:"about_me" binding:"max=140"`
}

// UpdateProfile edits the current user's about-me text.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.AboutMe = strings.TrimSpace(req.AboutMe)

	if err := h.Users.UpdateAboutMe(user.ID, req.AboutMe); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update profile")
		return
	}

	user.AboutMe = req.AboutMe

	util.Success(c, util.Response{
		"user": userJSON(user),
	})
}
