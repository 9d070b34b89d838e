package routes

import (
	"net/http"

	"github.com/JaimeStill/codynn/pkg/openapi"
)

// Register mounts every group on mux relative to the module root and adds
// their documentation to spec under basePath. A nil spec skips documentation.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
		if spec != nil {
			g.AddToSpec(basePath, spec)
		}
	}
}
