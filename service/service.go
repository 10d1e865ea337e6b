// Package service exposes namespace resolution and class enumeration as MCP
// tools so that agent tooling can query class layout over the Model Context
// Protocol.
package service

import (
	"context"
	"strconv"

	"github.com/viant/classmap/resolver"
	"github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/mcp/server"
)

// Service wraps a resolver service with an MCP server.
type Service struct {
	resolver *resolver.Service
	config   *Config
	server   *server.Server
}

func (s *Service) init() error {
	newHandler := serverproto.WithDefaultHandler(context.Background(), func(h *serverproto.DefaultHandler) error {
		if err := serverproto.RegisterTool[*ResolveInput, *ResolveOutput](h.Registry, "resolveDirectory",
			"Resolve a namespace to its base directory", s.resolveDirectory); err != nil {
			return err
		}
		return serverproto.RegisterTool[*ListInput, *ListOutput](h.Registry, "listClasses",
			"List classes defined under a namespace", s.listClasses)
	})
	name := s.config.Name
	if name == "" {
		name = "classmap"
	}
	version := s.config.Version
	if version == "" {
		version = "0.1"
	}
	options := []server.Option{
		server.WithNewHandler(newHandler),
		server.WithImplementation(schema.Implementation{Name: name, Version: version}),
	}
	authOptions, err := s.authOptions(context.Background())
	if err != nil {
		return err
	}
	options = append(options, authOptions...)
	srv, err := server.New(options...)
	if err != nil {
		return err
	}
	s.server = srv
	return nil
}

// ListenAndServe starts the MCP endpoint: stdio when no port is configured,
// HTTP otherwise.
func (s *Service) ListenAndServe() error {
	ctx := context.Background()
	if s.config.Port == nil {
		return s.server.Stdio(ctx).ListenAndServe()
	}
	return s.server.HTTP(ctx, ":"+strconv.Itoa(*s.config.Port)).ListenAndServe()
}

// New creates an MCP service over the supplied resolver.
func New(aResolver *resolver.Service, config *Config) (*Service, error) {
	if config == nil {
		config = &Config{}
	}
	s := &Service{resolver: aResolver, config: config}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}
