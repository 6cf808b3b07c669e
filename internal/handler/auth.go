package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/rohitpatil07/flaskapp/internal/config"
	"github.com/rohitpatil07/flaskapp/internal/mailer"
	"github.com/rohitpatil07/flaskapp/internal/middleware"
	"github.com/rohitpatil07/flaskapp/internal/models"
	"github.com/rohitpatil07/flaskapp/internal/monitoring"
	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthHandler owns registration, login/logout and the password reset flow.
type AuthHandler struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Mailer   mailer.Mailer

	JWTSecret   string
	SessionTTL  time.Duration
	RememberTTL time.Duration
	ResetTTL    time.Duration
	BaseURL     string
}

func NewAuthHandler(users repository.UserRepository, sessions repository.SessionRepository, m mailer.Mailer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Users:       users,
		Sessions:    sessions,
		Mailer:      m,
		JWTSecret:   cfg.JWT.Secret,
		SessionTTL:  time.Duration(cfg.JWT.SessionHours) * time.Hour,
		RememberTTL: time.Duration(cfg.JWT.RememberHours) * time.Hour,
		ResetTTL:    time.Duration(cfg.JWT.ResetTokenSeconds) * time.Second,
		BaseURL:     cfg.Mail.BaseURL,
	}
}

// ---------- register ----------

type registerReq struct {
	Username string `json:"username" binding:"required"`
	RollNo   string `json:"rollno" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.RollNo = strings.TrimSpace(req.RollNo)
	req.Email = strings.TrimSpace(req.Email)

	in := util.RegisterInput{
		Username: req.Username,
		RollNo:   req.RollNo,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := util.ValidateRegistration(in); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	// uniqueness, checked in form-field order
	taken, err := h.Users.UsernameExists(req.Username)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query users")
		return
	}
	if taken {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please use a different username")
		return
	}

	taken, err = h.Users.RollNoExists(req.RollNo)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query users")
		return
	}
	if taken {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please provide the correct rollno")
		return
	}

	taken, err = h.Users.EmailExists(req.Email)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query users")
		return
	}
	if taken {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please use a different email address")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		RollNo:       req.RollNo,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.Users.Create(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}

	monitoring.RegisterSuccess.Inc()
	util.Success(c, util.Response{
		"message": "registered, you can log in now",
		"user":    userJSON(&user),
	})
}

// ---------- login ----------

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		// same message as a bad password; do not reveal which field failed
		monitoring.LoginFailure.WithLabelValues("unknown_user").Inc()
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid username or password")
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		monitoring.LoginFailure.WithLabelValues("bad_password").Inc()
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid username or password")
		return
	}

	ttl := h.SessionTTL
	if req.Remember {
		ttl = h.RememberTTL
	}

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := h.Sessions.Create(&session); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create session")
		return
	}

	token, err := util.GenerateSessionToken(h.JWTSecret, user.ID, session.ID, ttl)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to generate token")
		return
	}

	c.SetCookie(middleware.CookieName, token, int(ttl.Seconds()), "/", "", false, true)

	monitoring.LoginSuccess.Inc()
	util.Success(c, util.Response{
		"token": token,
		"user":  userJSON(user),
	})
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, ok := c.Get(middleware.SessionIDKey); ok {
		if sessionID, ok := v.(string); ok && sessionID != "" {
			if err := h.Sessions.Revoke(sessionID); err != nil {
				log.Error().Err(err).Str("session", sessionID).Msg("revoke session")
			}
		}
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	util.Success(c, util.Response{
		"message": "logged out",
	})
}

// ---------- password reset ----------

type resetRequestReq struct {
	Email string `json:"email" binding:"required"`
}

// ResetRequest mails a reset link when the address matches a user. The
// response is the same either way so the endpoint cannot be used to probe
// for registered addresses.
func (h *AuthHandler) ResetRequest(c *gin.Context) {
	var req resetRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if user, err := h.Users.FindByEmail(req.Email); err == nil {
		token, err := util.GenerateResetToken(h.JWTSecret, user.ID, h.ResetTTL)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to generate token")
			return
		}
		link := h.BaseURL + "/reset-password/" + token
		if err := h.Mailer.SendPasswordReset(user, link); err != nil {
			// delivery is the mailer's problem; the flow continues
			log.Error().Err(err).Uint("user_id", user.ID).Msg("send reset mail")
		}
		monitoring.ResetMailsSent.Inc()
	}

	util.Success(c, util.Response{
		"message": "check your email for instructions to reset your password",
	})
}

type resetPasswordReq struct {
	Password string `json:"password" binding:"required"`
}

// ResetPassword sets a new password when the token verifies. Every token
// failure mode gets the same reply.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	tokenStr := c.Param("token")

	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	userID, ok := util.VerifyResetToken(h.JWTSecret, tokenStr)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid or expired reset link")
		return
	}

	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	user, err := h.Users.FindByID(userID)
	if err != nil {
		// token outlived the account; indistinguishable from a bad token
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid or expired reset link")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	if err := h.Users.UpdatePassword(user.ID, hash); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
		return
	}

	// force re-login everywhere with the new password
	if err := h.Sessions.RevokeAllForUser(user.ID); err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("revoke sessions after reset")
	}

	util.Success(c, util.Response{
		"message": "password updated, please log in",
	})
}
