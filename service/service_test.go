package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/classmap/autoload"
	"github.com/viant/classmap/resolver"
	"github.com/viant/jsonrpc/transport/client/http/sse"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp/client"
)

const testServerPort = 4987

func TestService_tools(t *testing.T) {
	baseDir := t.TempDir()
	modelsDir := filepath.Join(baseDir, "Models")
	writeFile(t, filepath.Join(modelsDir, "User.php"), "<?php class User {}")
	writeFile(t, filepath.Join(modelsDir, "Sub", "Order.php"), "<?php class Order {}")
	canonicalModels, err := filepath.EvalSymlinks(modelsDir)
	if !assert.Nil(t, err) {
		return
	}

	aResolver := resolver.New(autoload.NewStatic(autoload.Map{
		{Prefix: `App\Models`, Directories: []string{modelsDir}},
	}))
	port := testServerPort
	svc, err := New(aResolver, &Config{Name: "classmap-test", Port: &port})
	if !assert.Nil(t, err) {
		return
	}
	go func() {
		if err := svc.ListenAndServe(); err != nil {
			t.Error(err)
		}
	}()
	time.Sleep(time.Second)

	ctx := context.Background()
	transport, err := sse.New(ctx, fmt.Sprintf("http://localhost:%d/sse", testServerPort))
	if !assert.Nil(t, err) {
		return
	}
	aClient := client.New("tester", "0.1", transport, client.WithCapabilities(schema.ClientCapabilities{}))
	initRes, err := aClient.Initialize(ctx)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "classmap-test", initRes.ServerInfo.Name)

	resolveParams, err := schema.NewCallToolRequestParams[*ResolveInput]("resolveDirectory", &ResolveInput{Namespace: `App\Models`})
	if !assert.Nil(t, err) {
		return
	}
	res, rerr := aClient.CallTool(ctx, resolveParams)
	if !assert.Nil(t, rerr) {
		return
	}
	output := &ResolveOutput{}
	if assert.True(t, len(res.Content) > 0) {
		assert.Nil(t, json.Unmarshal([]byte(res.Content[0].Text), output))
	}
	assert.True(t, output.Found)
	assert.Equal(t, canonicalModels, output.Directory)

	listParams, err := schema.NewCallToolRequestParams[*ListInput]("listClasses", &ListInput{Namespace: `App\Models`})
	if !assert.Nil(t, err) {
		return
	}
	res, rerr = aClient.CallTool(ctx, listParams)
	if !assert.Nil(t, rerr) {
		return
	}
	if assert.True(t, len(res.Content) > 0) {
		classes := strings.Split(res.Content[0].Text, "\n")
		assert.ElementsMatch(t, []string{`App\Models\User`, `App\Models\Sub\Order`}, classes)
	}

	unmappedParams, err := schema.NewCallToolRequestParams[*ListInput]("listClasses", &ListInput{Namespace: `Vendor\Library`})
	if !assert.Nil(t, err) {
		return
	}
	_, rerr = aClient.CallTool(ctx, unmappedParams)
	assert.NotNil(t, rerr)
}

func writeFile(t *testing.T, location, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(location, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
