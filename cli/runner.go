// Package cli implements the classmap command line entry point.
package cli

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/viant/classmap/autoload"
	"github.com/viant/classmap/resolver"
	"github.com/viant/classmap/service"
)

// Run parses arguments and executes the requested operation.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	provider, err := newProvider(ctx, options)
	if err != nil {
		return err
	}
	aResolver := resolver.New(provider,
		resolver.WithSeparator(options.Separator),
		resolver.WithExtension(options.Extension))

	switch {
	case options.Resolve != "":
		directory, err := aResolver.ResolveDirectory(ctx, options.Resolve)
		if err != nil {
			return err
		}
		if directory == "" {
			return fmt.Errorf("no autoload prefix matches namespace %v", options.Resolve)
		}
		fmt.Println(directory)
		return nil
	case options.List != "":
		classes, err := aResolver.ListClasses(ctx, options.List)
		if err != nil {
			return err
		}
		for _, class := range classes {
			fmt.Println(class)
		}
		return nil
	case options.Serve:
		srv, err := service.New(aResolver, &service.Config{Port: options.Port})
		if err != nil {
			return err
		}
		return srv.ListenAndServe()
	}
	return fmt.Errorf("nothing to do: use --resolve, --list or --serve")
}

func newProvider(ctx context.Context, options *Options) (autoload.Provider, error) {
	switch {
	case options.Exec != "":
		return autoload.NewExec(ctx, options.Exec)
	case options.Config != "":
		return autoload.NewFile(ctx, options.Config)
	}
	return nil, fmt.Errorf("missing configuration: use --config or --exec")
}
