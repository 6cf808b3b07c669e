package repository

import (
	"github.com/rohitpatil07/flaskapp/internal/models"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FollowedPosts returns every post authored by the user or by anyone the
// user follows, newest first. Ties on created_at break by descending id so
// the ordering is deterministic.
func (r *postRepository) FollowedPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("author_id = ? OR author_id IN (?)", userID,
			r.db.Model(&models.Follow{}).Select("followed_id").Where("follower_id = ?", userID)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// ExplorePosts returns all posts across all users in feed order.
func (r *postRepository) ExplorePosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}
