package jobroles

import "github.com/JaimeStill/codynn/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List job roles",
		Description: "List job roles with pagination. limit is required; search matches name.",
		Parameters:  openapi.PageParams(true, "alphabetical"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Job roles list", "JobRolePageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find job role",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Job role ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Job role details", "JobRole"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create job role",
		RequestBody: openapi.RequestBodyJSON("JobRoleCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Job role created", "JobRole"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Rename job role",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Job role ID")},
		RequestBody: openapi.RequestBodyJSON("JobRoleCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Job role updated", "JobRole"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete job role",
		Description: "Delete a job role. Rejected while interview questions reference it.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Job role ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Job role deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"JobRole": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"name":      {Type: "string", Description: "Unique role name"},
				"createdAt": {Type: "string", Format: "date-time"},
				"updatedAt": {Type: "string", Format: "date-time"},
			},
		},
		"JobRoleCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string", Description: "Unique role name"},
			},
			Required: []string{"name"},
		},
		"JobRolePageResult": openapi.PageResultSchema("JobRole"),
	}
}
