// Package routes declares HTTP route groups once and uses the declaration
// both to register handlers on a ServeMux and to document them in an OpenAPI spec.
package routes

import (
	"net/http"

	"github.com/JaimeStill/codynn/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// Routes without an OpenAPI operation are served but left out of the spec.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group's routes and schemas in spec.
// Paths are recorded under basePath since that is how clients address them.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec, nil)
}

func (g *Group) addToSpec(parentPrefix string, spec *openapi.Spec, inherited []string) {
	prefix := parentPrefix + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = inherited
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, spec, tags)
	}
}

func (g *Group) register(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}
