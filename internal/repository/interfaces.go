package repository

import (
	"errors"
	"time"

	"github.com/rohitpatil07/flaskapp/internal/models"
)

// ErrSelfFollow rejects reflexive edges in the social graph.
var ErrSelfFollow = errors.New("cannot follow yourself")

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	RollNoExists(rollno string) (bool, error)
	UpdateAboutMe(userID uint, aboutMe string) error
	UpdatePassword(userID uint, passwordHash string) error
	TouchLastSeen(userID uint, at time.Time) error
}

type FollowRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	FollowerCount(userID uint) (int64, error)
	FollowingCount(userID uint) (int64, error)
}

type PostRepository interface {
	Create(post *models.Post) error
	FollowedPosts(userID uint) ([]models.Post, error)
	ExplorePosts() ([]models.Post, error)
	ByAuthor(authorID uint) ([]models.Post, error)
}

type SessionRepository interface {
	Create(session *models.Session) error
	Find(id string) (*models.Session, error)
	Revoke(id string) error
	RevokeAllForUser(userID uint) error
}
