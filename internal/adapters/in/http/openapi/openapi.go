// Package openapi embeds the OpenAPI 3 description of the HTTP API and
// publishes it to the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// swaggerDoc feeds the validated document to echo-swagger as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger makes the document available under swag's default
// instance name. Safe to call more than once.
func RegisterSwagger(ctx context.Context) error {
	var err error
	registerOnce.Do(func() {
		var doc *openapi3.T
		if doc, err = Load(ctx); err != nil {
			return
		}

		var raw []byte
		if raw, err = json.Marshal(doc); err != nil {
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return err
}
