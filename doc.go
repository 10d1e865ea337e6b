// Package classmap resolves namespaces to filesystem directories and
// enumerates the classes defined under them, driven by a class-autoloading
// configuration (an ordered mapping from namespace prefixes to candidate base
// directories).  It is consumed by tooling such as code generators and
// static-analysis helpers that need to discover what classes live under a
// namespace without a full compiler front end.
//
// The package is an umbrella over three building blocks:
//  1. autoload – the prefix mapping and its providers (in-memory, document,
//     executable script),
//  2. resolver – namespace resolution and class enumeration,
//  3. oracle – the injected class existence check that keeps enumeration
//     deterministic without a live autoloading runtime.
//
// Example:
//
//	provider := autoload.NewStatic(autoload.Map{
//		{Prefix: `App\Models`, Directories: []string{"/project/src/Models"}},
//	})
//	service := classmap.New(provider)
//	classes, _ := service.ListClasses(ctx, `App\Models`)
//
// The service module additionally exposes both operations as MCP tools, and
// cmd/classmap wraps everything in a small CLI.
package classmap
