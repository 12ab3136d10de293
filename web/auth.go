package web

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// handleLogin starts the authorization-code flow. The audience parameter
// makes the provider issue an access token scoped for the API.
func (s *Server) handleLogin(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		log.Printf("Error generating state: %v", err)
		c.String(http.StatusInternalServerError, "Failed to start login")
		return
	}

	sess := s.session(c)
	sess.Values["state"] = state
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("Error saving session: %v", err)
		c.String(http.StatusInternalServerError, "Failed to start login")
		return
	}

	authURL := s.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("audience", s.cfg.Auth0Audience))
	c.Redirect(http.StatusFound, authURL)
}

func (s *Server) handleCallback(c *gin.Context) {
	sess := s.session(c)
	expectedState, _ := sess.Values["state"].(string)
	delete(sess.Values, "state")

	if expectedState == "" || c.Query("state") != expectedState {
		c.String(http.StatusBadRequest, "Invalid state parameter")
		return
	}

	token, err := s.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Printf("Error exchanging authorization code: %v", err)
		c.String(http.StatusUnauthorized, "Failed to complete login")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		c.String(http.StatusUnauthorized, "No id_token in token response")
		return
	}

	idToken, err := s.verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		log.Printf("Error verifying ID token: %v", err)
		c.String(http.StatusUnauthorized, "Failed to complete login")
		return
	}

	var profile struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&profile); err != nil {
		log.Printf("Error reading ID token claims: %v", err)
	}

	sess.Values["user"] = sessionUser{
		Subject:     idToken.Subject,
		Name:        profile.Name,
		Email:       profile.Email,
		Picture:     profile.Picture,
		AccessToken: token.AccessToken,
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("Error saving session: %v", err)
		c.String(http.StatusInternalServerError, "Failed to complete login")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	sess := s.session(c)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("Error clearing session: %v", err)
	}

	logoutURL := strings.TrimSuffix(s.cfg.Auth0IssuerBaseURL, "/") +
		"/v2/logout?client_id=" + url.QueryEscape(s.cfg.Auth0ClientID) +
		"&returnTo=" + url.QueryEscape(s.cfg.BaseURL)
	c.Redirect(http.StatusFound, logoutURL)
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
