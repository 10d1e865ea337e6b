package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/viant/afs"
	ahttp "github.com/viant/afs/http"
	"github.com/viant/afs/url"
	"github.com/viant/mcp-protocol/authorization"
	"github.com/viant/mcp-protocol/oauth2/meta"
	"github.com/viant/mcp/server"
	authserver "github.com/viant/mcp/server/auth"
	"github.com/viant/scy"
	"github.com/viant/scy/auth/flow"
	"github.com/viant/scy/cred"
	"golang.org/x/oauth2"
)

// authOptions builds authorization middleware options when an OAuth2 client
// configuration is supplied; without one the endpoint stays open.
func (s *Service) authOptions(ctx context.Context) ([]server.Option, error) {
	if s.config.OAuth2ConfigURL == "" {
		return nil, nil
	}
	oauth2Config, err := s.loadAuthConfig(ctx)
	if err != nil {
		return nil, err
	}
	issuerURL := s.config.IssuerURL
	if issuerURL == "" && oauth2Config != nil {
		issuerURL, _ = url.Base(oauth2Config.Endpoint.AuthURL, ahttp.SecureScheme)
	}
	resource := s.config.Resource
	if resource == "" {
		resource = "https://classmap.viantinc.com"
	}
	policy := &authorization.Policy{
		ExcludeURI: "/sse",
		Global: &authorization.Authorization{
			ProtectedResourceMetadata: &meta.ProtectedResourceMetadata{
				Resource:             resource,
				AuthorizationServers: []string{issuerURL},
			},
			UseIdToken: true,
		},
	}
	header := flow.AuthorizationExchangeHeader
	if s.config.BFFExchangeHeader != "" {
		header = s.config.BFFExchangeHeader
	}
	authService, err := authserver.New(&authserver.Config{
		Policy: policy,
		BackendForFrontend: &authserver.BackendForFrontend{
			Client:                      oauth2Config,
			AuthorizationExchangeHeader: header,
			RedirectURI:                 s.config.BFFRedirectURI,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth server: %w", err)
	}
	return []server.Option{
		server.WithAuthorizer(authService.Middleware),
		server.WithProtectedResourcesHandler(authService.ProtectedResourcesHandler),
	}, nil
}

func (s *Service) loadAuthConfig(ctx context.Context) (*oauth2.Config, error) {
	authClientURL := s.config.OAuth2ConfigURL
	if url.IsRelative(authClientURL) {
		fs := afs.New()
		candidateLocation := path.Join(os.Getenv("HOME"), ".secret", authClientURL)
		if ok, _ := fs.Exists(ctx, candidateLocation); ok {
			authClientURL = candidateLocation
		}
	}
	keyURL := "blowfish://default"
	if index := strings.Index(authClientURL, "|"); index != -1 {
		keyURL = authClientURL[index+1:]
		authClientURL = authClientURL[:index]
	}
	resource := scy.NewResource(reflect.TypeOf(&cred.Oauth2Config{}), authClientURL, keyURL)
	secrets := scy.New()
	secret, err := secrets.Load(ctx, resource)
	if err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, fmt.Errorf("secret was nil")
	}
	oAuth2Config, ok := secret.Target.(*cred.Oauth2Config)
	if !ok {
		return nil, fmt.Errorf("secret was not of type *cred.Oauth2Config")
	}
	oAuth2Config.Endpoint.AuthStyle = oauth2.AuthStyleInHeader
	return &oAuth2Config.Config, nil
}
