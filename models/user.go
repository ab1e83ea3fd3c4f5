package models

import (
	"errors"
	"fmt"
	"outings/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique;not null"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Password  string `gorm:"type:varchar(128);not null"` // bcrypt hash
	ClassYear int
}

// UserCreate stores a new user with a hashed password. Emails are matched exactly as entered.
func UserCreate(email, firstName, lastName, plainTextPassword string, classYear int) (u User, err error) {
	exists, err := UserEmailExists(email)
	if err != nil {
		return u, err
	}
	if exists {
		return u, ErrDuplicateEmail
	}
	u.Email = email
	u.FirstName = firstName
	u.LastName = lastName
	u.ClassYear = classYear
	if err = u.SetPassword(plainTextPassword); err != nil {
		return User{}, err
	}
	if err = db.Instance.Create(&u).Error; err != nil {
		// Lost a race against a concurrent signup, the unique index kept the table consistent
		if exists, _ := UserEmailExists(email); exists {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

func UserEmailExists(email string) (bool, error) {
	var count int64
	if err := db.Instance.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("looking up email: %w", err)
	}
	return count > 0, nil
}

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrPasswordTooLong
	}
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) == nil
}

// UserLogin returns ErrInvalidCredentials for both unknown emails and wrong passwords
func UserLogin(email, plainTextPassword string) (u User, err error) {
	err = db.Instance.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("loading user: %w", err)
	}
	if !u.CheckPassword(plainTextPassword) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}
