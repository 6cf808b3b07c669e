package handler

import (
	"time"

	"github.com/rohitpatil07/flaskapp/internal/middleware"
	"github.com/rohitpatil07/flaskapp/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

type postResp struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toPostResp(p *models.Post) postResp {
	return postResp{
		ID:        p.ID,
		Author:    p.Author.Username,
		Body:      p.Body,
		Link:      p.Link,
		CreatedAt: p.CreatedAt,
	}
}

func toPostResps(posts []models.Post) []postResp {
	out := make([]postResp, len(posts))
	for i := range posts {
		out[i] = toPostResp(&posts[i])
	}
	return out
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"rollno":    u.RollNo,
		"email":     u.Email,
		"about_me":  u.AboutMe,
		"last_seen": u.LastSeen,
	}
}
