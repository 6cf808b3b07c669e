package repository

import (
	"time"

	"github.com/rohitpatil07/flaskapp/internal/models"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(username string) (bool, error) {
	return r.exists("LOWER(username) = LOWER(?)", username)
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	return r.exists("LOWER(email) = LOWER(?)", email)
}

func (r *userRepository) RollNoExists(rollno string) (bool, error) {
	return r.exists("rollno = ?", rollno)
}

func (r *userRepository) exists(query string, arg string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where(query, arg).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateAboutMe(userID uint, aboutMe string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("about_me", aboutMe).Error
}

func (r *userRepository) UpdatePassword(userID uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) TouchLastSeen(userID uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_seen", at).Error
}
