package api

import (
	"net/http"

	"github.com/JaimeStill/codynn/pkg/openapi"
	"github.com/JaimeStill/codynn/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, spec *openapi.Spec, basePath string, domain *Domain) {
	routes.Register(
		mux,
		basePath,
		spec,
		domain.Languages.Handler().Routes(),
		domain.Repositories.Handler().Routes(),
		domain.Videos.Handler().Routes(),
		domain.Documentation.Handler().Routes(),
		domain.JobRoles.Handler().Routes(),
		domain.Questions.Handler().Routes(),
	)
}
