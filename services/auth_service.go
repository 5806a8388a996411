package services

import (
	"errors"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"
	"github.com/AshwinRamana/life-tracking-app/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db     *gorm.DB
	mailer *utils.Mailer // nil when SES is not configured
}

func NewAuthService(db *gorm.DB, mailer *utils.Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

func (s *AuthService) Signup(email, password, name string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", Reject("Please provide email and password")
	}
	if len(password) < 6 {
		return nil, "", Reject("Password must be at least 6 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", Reject("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = "User"
	}
	user := models.User{Email: email, Password: hashed, Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", Reject("Please provide email and password")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ForgotPassword stores a short-lived reset code and emails it. It never
// reveals whether the email exists.
func (s *AuthService) ForgotPassword(email string) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	s.db.Save(&user)

	if s.mailer != nil {
		_ = s.mailer.SendResetEmail(user.Email, user.ResetToken)
	}
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" || len(newPassword) < 6 {
		return Reject("Invalid input")
	}

	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return Reject("Invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return Reject("Invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
