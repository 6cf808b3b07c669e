package repository

import (
	"github.com/rohitpatil07/flaskapp/internal/models"

	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) Find(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Revoke(id string) error {
	return r.db.Model(&models.Session{}).Where("id = ?", id).
		Update("revoked", true).Error
}

// RevokeAllForUser invalidates every session of the user, e.g. after a
// password reset.
func (r *sessionRepository) RevokeAllForUser(userID uint) error {
	return r.db.Model(&models.Session{}).Where("user_id = ?", userID).
		Update("revoked", true).Error
}
