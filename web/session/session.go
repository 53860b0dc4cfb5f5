// Package session wraps gin-contrib/sessions with helpers for the logged-in
// account.
package session

import (
	"encoding/gob"

	"gamevault/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginAccount = "LOGIN_ACCOUNT"

func init() {
	gob.Register(model.Account{})
}

// SetLoginAccount binds the cookie session to the given account. Only the
// identity fields go into the cookie; the password hash and the note stay in
// the database.
func SetLoginAccount(c *gin.Context, account *model.Account) error {
	s := sessions.Default(c)
	s.Set(loginAccount, model.Account{
		Id:       account.Id,
		Username: account.Username,
	})
	return s.Save()
}

// SetMaxAge sets the session cookie lifetime in seconds.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetLoginAccount returns the account bound to the session, or nil when the
// request is anonymous.
func GetLoginAccount(c *gin.Context) *model.Account {
	s := sessions.Default(c)
	if obj := s.Get(loginAccount); obj != nil {
		if account, ok := obj.(model.Account); ok {
			return &account
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginAccount(c) != nil
}

// ClearSession invalidates the session; a later GetLoginAccount on the same
// cookie returns nil.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
