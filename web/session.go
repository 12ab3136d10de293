package web

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "postdeck_session"

// sessionUser is the descriptor stored in the cookie session after login.
type sessionUser struct {
	Subject     string
	Name        string
	Email       string
	Picture     string
	AccessToken string
}

// flash survives one redirect: the error to surface and, for a failed
// creation, the entered form values so the form is not cleared.
type flash struct {
	Error   string
	Details map[string]string
	Title   string
	Content string
}

func init() {
	gob.Register(sessionUser{})
	gob.Register(flash{})
}

func (s *Server) session(c *gin.Context) *sessions.Session {
	sess, _ := s.store.Get(c.Request, sessionName)
	return sess
}

func (s *Server) currentUser(c *gin.Context) *sessionUser {
	sess := s.session(c)
	if user, ok := sess.Values["user"].(sessionUser); ok && user.Subject != "" {
		return &user
	}
	return nil
}

func (s *Server) setFlash(c *gin.Context, f flash) {
	sess := s.session(c)
	sess.AddFlash(f)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// takeFlash reads and clears the pending flash, if any.
func (s *Server) takeFlash(c *gin.Context) flash {
	sess := s.session(c)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return flash{}
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
	}
	if f, ok := flashes[0].(flash); ok {
		return f
	}
	return flash{}
}
