package auth

import (
	"outings/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) error {
	s.Clear()
	s.Set(userIdKey, user.ID)
	return s.Save()
}

func (s *Session) LogoutUser() error {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

func (s *Session) UserID() uint64 {
	id, _ := s.Get(userIdKey).(uint64)
	return id
}

// User loads the logged in user, a zero ID means nobody is logged in (or the account is gone)
func (s *Session) User() (user models.User) {
	id := s.UserID()
	if id == 0 {
		return
	}
	user, err := models.UserByID(id)
	if err != nil {
		return models.User{}
	}
	return
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(message string) {
	s.AddFlash(message)
	_ = s.Save()
}

func (s *Session) TakeFlashes() []string {
	result := []string{}
	for _, f := range s.Flashes() {
		if msg, ok := f.(string); ok {
			result = append(result, msg)
		}
	}
	if len(result) > 0 {
		_ = s.Save()
	}
	return result
}
