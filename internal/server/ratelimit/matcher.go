package ratelimit

import "strings"

// unlimited is returned for liveness routes
var unlimited = EndpointConfig{}

// exempt lists liveness routes that are never limited
var exempt = map[string]string{
	"/healthcheck": "GET",
	"/":            "GET",
}

// MatchEndpoint returns the config for method and path, or nil when no route
// matches. Exact paths win over prefix paths.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if m, ok := exempt[path]; ok && m == method {
		match := unlimited
		return &match
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}
