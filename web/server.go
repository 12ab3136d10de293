// Package web is the authenticated web client: server-rendered pages backed
// by an identity-provider session, proxying all data operations to the API.
package web

import (
	"context"
	"embed"
	"html/template"

	"postdeck/client"
	"postdeck/config"
	"postdeck/middleware"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	cfg      *config.Web
	store    sessions.Store
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
	api      *client.Client
}

// New discovers the identity provider's endpoints and wires the session
// store, OAuth2 client, and API client together.
func New(ctx context.Context, cfg *config.Web, api *client.Client) (*Server, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Auth0IssuerBaseURL)
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}

	return &Server{
		cfg:   cfg,
		store: store,
		oauth: &oauth2.Config{
			ClientID:     cfg.Auth0ClientID,
			ClientSecret: cfg.Auth0ClientSecret,
			RedirectURL:  cfg.BaseURL + "/auth/callback",
			Endpoint:     provider.Endpoint(),
			Scopes:       cfg.LoginScopes,
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.Auth0ClientID}),
		api:      api,
	}, nil
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.handleIndex)
	r.GET("/auth/login", s.handleLogin)
	r.GET("/auth/callback", s.handleCallback)
	r.GET("/auth/logout", s.handleLogout)
	r.POST("/posts", s.handleCreatePost)
	r.POST("/posts/:id/delete", s.handleDeletePost)

	return r
}
