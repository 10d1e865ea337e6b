package cli

// Options defines the classmap command line.
type Options struct {
	Config    string `short:"c" long:"config" description:"autoload configuration location (yaml/json)"`
	Exec      string `short:"e" long:"exec" description:"executable configuration script"`
	Resolve   string `short:"r" long:"resolve" description:"namespace to resolve to a directory"`
	List      string `short:"l" long:"list" description:"namespace to list classes for"`
	Serve     bool   `short:"s" long:"serve" description:"expose the resolver as an MCP endpoint"`
	Port      *int   `short:"p" long:"port" description:"mcp http port, stdio when unset"`
	Separator string `long:"separator" description:"namespace separator" default:"\\"`
	Extension string `long:"extension" description:"source file extension" default:".php"`
}
