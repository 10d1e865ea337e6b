package service

// Config describes the MCP endpoint exposing the resolver.
type Config struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	// Port switches the endpoint from stdio to HTTP when set.
	Port *int `yaml:"port" json:"port"`

	// OAuth2ConfigURL enables the authorization middleware; the location is a
	// scy resource, optionally suffixed with "|<keyURL>".
	OAuth2ConfigURL string `yaml:"oauth2ConfigURL" json:"oauth2ConfigURL"`
	IssuerURL       string `yaml:"issuerURL" json:"issuerURL"`
	// BFFExchangeHeader overrides the backend-for-frontend exchange header.
	BFFExchangeHeader string `yaml:"bffExchangeHeader" json:"bffExchangeHeader"`
	BFFRedirectURI    string `yaml:"bffRedirectURI" json:"bffRedirectURI"`
	// Resource identifies this server in protected resource metadata.
	Resource string `yaml:"resource" json:"resource"`
}
