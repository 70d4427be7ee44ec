// Package docs serves the OpenAPI contract to echo-swagger through the swag
// registry.
package docs

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var (
	current  atomic.Value
	register sync.Once
)

type document struct{}

func (document) ReadDoc() string {
	if s, ok := current.Load().(string); ok {
		return s
	}
	return "{}"
}

// Register publishes doc under swag.Name. Later calls replace the served document.
func Register(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	current.Store(string(data))
	register.Do(func() {
		swag.Register(swag.Name, document{})
	})
	return nil
}
