package repositories

import "github.com/JaimeStill/codynn/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Search *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var languageFilter = &openapi.Parameter{
	Name:        "language",
	In:          "query",
	Description: "Only repositories for this language",
	Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List repositories",
		Description: "List repositories with pagination and an optional language filter. search matches title.",
		Parameters:  append(openapi.PageParams(false, "alphabetical"), languageFilter),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Repositories list", "RepositoryPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find repository",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Repository ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Repository details", "Repository"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary: "Search repositories",
		Parameters: append(append([]*openapi.Parameter{
			openapi.StringPathParam("term", "Substring matched against title"),
		}, openapi.PageParams(false, "alphabetical")...), languageFilter),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "RepositoryPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create repository",
		RequestBody: openapi.RequestBodyJSON("CreateRepositoryCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Repository created", "Repository"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update repository",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Repository ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateRepositoryCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Repository updated", "Repository"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete repository",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Repository ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Repository deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	zero := 0.0
	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"title":       {Type: "string"},
			"language":    {Type: "string", Format: "uuid", Description: "Owning language ID"},
			"noOfLessons": {Type: "integer", Minimum: &zero},
		}
	}

	repo := fields()
	repo["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	repo["createdAt"] = &openapi.Schema{Type: "string", Format: "date-time"}
	repo["updatedAt"] = &openapi.Schema{Type: "string", Format: "date-time"}

	return map[string]*openapi.Schema{
		"Repository": {Type: "object", Properties: repo},
		"CreateRepositoryCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"title", "language", "noOfLessons"},
		},
		"UpdateRepositoryCommand": {Type: "object", Properties: fields()},
		"RepositoryPageResult":    openapi.PageResultSchema("Repository"),
	}
}
