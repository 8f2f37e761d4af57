package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"nicaris/backoffice/internal/models"
)

// ErrNoSession is returned when the request carries no signed-in user.
var ErrNoSession = errors.New("no active session")

// Store keeps the signed-in user in a signed browser cookie. Cookies are
// session-scoped: closing the browser ends the session, there is no
// server-side expiry.
type Store struct {
	cookies *sessions.CookieStore
	name    string
}

// NewStore builds a cookie-backed session store. The secret signs every
// cookie; rotating it invalidates all outstanding sessions.
func NewStore(secret, cookieName string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // session cookie, dropped when the browser closes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs, name: cookieName}
}

// Set writes the user into the response cookie.
func (s *Store) Set(w http.ResponseWriter, r *http.Request, user *models.Session) error {
	sess, _ := s.cookies.Get(r, s.name)
	sess.Values["id"] = user.ID
	sess.Values["name"] = user.Name
	sess.Values["email"] = user.Email
	sess.Values["role"] = user.Role
	return sess.Save(r, w)
}

// Get reads the signed-in user from the request cookie. A missing or
// tampered cookie returns ErrNoSession.
func (s *Store) Get(r *http.Request) (*models.Session, error) {
	sess, err := s.cookies.Get(r, s.name)
	if err != nil {
		return nil, ErrNoSession
	}

	id, _ := sess.Values["id"].(string)
	if id == "" {
		return nil, ErrNoSession
	}
	name, _ := sess.Values["name"].(string)
	email, _ := sess.Values["email"].(string)
	role, _ := sess.Values["role"].(string)

	return &models.Session{ID: id, Name: name, Email: email, Role: role}, nil
}

// Clear drops the session cookie. Clearing an absent session is a no-op.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, s.name)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(r, w)
}
