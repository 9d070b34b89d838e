package questions

import "github.com/JaimeStill/codynn/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Search *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

func filterParams() []*openapi.Parameter {
	return []*openapi.Parameter{
		{
			Name:        "jobRole",
			In:          "query",
			Description: "Only questions for this job role",
			Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
		},
		openapi.EnumQueryParam("level", "Only questions at this level", levelNames()...),
	}
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List interview questions",
		Description: "List questions with pagination and optional jobRole and level filters. search matches question.",
		Parameters:  append(openapi.PageParams(false, "alphabetical"), filterParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Questions list", "InterviewQuestionPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find interview question",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Question ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Question details", "InterviewQuestion"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary: "Search interview questions",
		Parameters: append(append([]*openapi.Parameter{
			openapi.StringPathParam("term", "Substring matched against question and answer"),
		}, openapi.PageParams(false, "alphabetical")...), filterParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "InterviewQuestionPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create interview question",
		RequestBody: openapi.RequestBodyJSON("CreateInterviewQuestionCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Question created", "InterviewQuestion"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update interview question",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Question ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateInterviewQuestionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Question updated", "InterviewQuestion"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete interview question",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Question ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Question deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	levels := make([]any, len(Levels))
	for i, l := range Levels {
		levels[i] = string(l)
	}

	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"question": {Type: "string"},
			"answer":   {Type: "string"},
			"jobRole":  {Type: "string", Format: "uuid", Description: "Owning job role ID"},
			"level":    {Type: "string", Enum: levels},
		}
	}

	question := fields()
	question["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	question["createdAt"] = &openapi.Schema{Type: "string", Format: "date-time"}
	question["updatedAt"] = &openapi.Schema{Type: "string", Format: "date-time"}

	return map[string]*openapi.Schema{
		"InterviewQuestion": {Type: "object", Properties: question},
		"CreateInterviewQuestionCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"question", "answer", "jobRole", "level"},
		},
		"UpdateInterviewQuestionCommand": {Type: "object", Properties: fields()},
		"InterviewQuestionPageResult":    openapi.PageResultSchema("InterviewQuestion"),
	}
}
