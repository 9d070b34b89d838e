package docs

import "github.com/JaimeStill/codynn/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Search *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documentation",
		Description: "List articles with pagination. search matches title.",
		Parameters:  openapi.PageParams(false, "alphabetical", "popularity"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documentation list", "DocumentationPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find documentation",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Documentation ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documentation details", "Documentation"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary: "Search documentation",
		Parameters: append([]*openapi.Parameter{
			openapi.StringPathParam("term", "Substring matched against title"),
		}, openapi.PageParams(false, "alphabetical", "popularity")...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "DocumentationPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create documentation",
		RequestBody: openapi.RequestBodyJSON("CreateDocumentationCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Documentation created", "Documentation"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update documentation",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Documentation ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateDocumentationCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documentation updated", "Documentation"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete documentation",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Documentation ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Documentation deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	zero := 0.0
	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"title":      {Type: "string", Description: "Unique article title"},
			"content":    openapi.ArrayOf(&openapi.Schema{Type: "string"}),
			"popularity": {Type: "integer", Minimum: &zero},
		}
	}

	doc := fields()
	doc["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	doc["createdAt"] = &openapi.Schema{Type: "string", Format: "date-time"}
	doc["updatedAt"] = &openapi.Schema{Type: "string", Format: "date-time"}

	return map[string]*openapi.Schema{
		"Documentation": {Type: "object", Properties: doc},
		"CreateDocumentationCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"title", "content"},
		},
		"UpdateDocumentationCommand": {Type: "object", Properties: fields()},
		"DocumentationPageResult":    openapi.PageResultSchema("Documentation"),
	}
}
