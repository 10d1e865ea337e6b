package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/classmap/resolver"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type (
	// ResolveInput is the resolveDirectory tool input.
	ResolveInput struct {
		Namespace string `json:"namespace"`
	}

	// ResolveOutput is the resolveDirectory tool output.
	ResolveOutput struct {
		Directory string `json:"directory,omitempty"`
		Found     bool   `json:"found"`
	}

	// ListInput is the listClasses tool input.
	ListInput struct {
		Namespace string `json:"namespace"`
	}

	// ListOutput is the listClasses tool output.
	ListOutput struct {
		Classes []string `json:"classes"`
	}
)

func (s *Service) resolveDirectory(ctx context.Context, input *ResolveInput) (*schema.CallToolResult, *jsonrpc.Error) {
	directory, err := s.resolver.ResolveDirectory(ctx, input.Namespace)
	if err != nil {
		return nil, toolError(err)
	}
	output := &ResolveOutput{Directory: directory, Found: directory != ""}
	data, err := json.Marshal(output)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{{Text: string(data)}}}, nil
}

func (s *Service) listClasses(ctx context.Context, input *ListInput) (*schema.CallToolResult, *jsonrpc.Error) {
	classes, err := s.resolver.ListClasses(ctx, input.Namespace)
	if err != nil {
		return nil, toolError(err)
	}
	return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{{Text: strings.Join(classes, "\n")}}}, nil
}

// toolError maps resolver errors to jsonrpc errors; an unmapped namespace is a
// caller problem, everything else is internal. Each error carries a
// correlation id so a failure can be tied back to server logs.
func toolError(err error) *jsonrpc.Error {
	data, _ := json.Marshal(map[string]string{"correlationId": uuid.New().String()})
	var unmapped *resolver.UnmappedNamespaceError
	if errors.As(err, &unmapped) {
		return jsonrpc.NewInvalidParamsError(err.Error(), data)
	}
	return jsonrpc.NewInternalError(err.Error(), data)
}
