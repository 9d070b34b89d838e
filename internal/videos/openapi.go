package videos

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
			Name:        "language",
			In:          "query",
			Description: "Only videos for this language",
			Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
		},
		openapi.EnumQueryParam("level", "Only videos at this level", levelNames()...),
	}
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List videos",
		Description: "List videos with pagination and optional language and level filters. search matches title.",
		Parameters:  append(openapi.PageParams(false, "alphabetical"), filterParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Videos list", "VideoPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find video",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Video ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Video details", "Video"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary: "Search videos",
		Parameters: append(append([]*openapi.Parameter{
			openapi.StringPathParam("term", "Substring matched against title"),
		}, openapi.PageParams(false, "alphabetical")...), filterParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "VideoPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create video",
		RequestBody: openapi.RequestBodyJSON("CreateVideoCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Video created", "Video"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update video",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Video ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateVideoCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Video updated", "Video"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete video",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Video ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Video deleted"},
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
			"title":    {Type: "string"},
			"duration": {Type: "string", Example: "12:30"},
			"level":    {Type: "string", Enum: levels},
			"language": {Type: "string", Format: "uuid", Description: "Owning language ID"},
			"url":      {Type: "string"},
			"image":    {Type: "string", Description: "Optional thumbnail URL"},
		}
	}

	video := fields()
	video["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	video["createdAt"] = &openapi.Schema{Type: "string", Format: "date-time"}
	video["updatedAt"] = &openapi.Schema{Type: "string", Format: "date-time"}

	return map[string]*openapi.Schema{
		"Video": {Type: "object", Properties: video},
		"CreateVideoCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"title", "duration", "level", "language", "url"},
		},
		"UpdateVideoCommand": {Type: "object", Properties: fields()},
		"VideoPageResult":    openapi.PageResultSchema("Video"),
	}
}
