// Package api assembles the catalog domains into the HTTP module mounted at
// the configured base path, together with its OpenAPI document and docs page.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/codynn/internal/config"
	"github.com/JaimeStill/codynn/internal/infrastructure"
	"github.com/JaimeStill/codynn/pkg/middleware"
	"github.com/JaimeStill/codynn/pkg/module"
	"github.com/JaimeStill/codynn/pkg/openapi"
	"github.com/JaimeStill/codynn/pkg/tracing"
	"github.com/JaimeStill/codynn/web/scalar"
)

// NewModule wires every domain system onto a ServeMux and wraps it in the
// API middleware chain.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, cfg.API.BasePath, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	docs, err := scalar.Handler(cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("docs handler: %w", err)
	}
	mux.HandleFunc("GET /docs", docs)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodyBytes()))
	if cfg.Tracing.Enabled {
		m.Use(tracing.Middleware(cfg.Tracing.ServiceName))
	}
	if runtime.Metrics != nil {
		m.Use(runtime.Metrics.Middleware())
	}

	return m, nil
}
