package swagger

import _ "embed"

// OpenAPI contains the embedded OpenAPI YAML document of the analytics API.
//
//go:embed openapi.yaml
var OpenAPI []byte
