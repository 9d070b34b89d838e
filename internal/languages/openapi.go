package languages

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
		Summary:     "List languages",
		Description: "List languages with pagination. limit is required; search matches languageType and applicationName.",
		Parameters:  openapi.PageParams(true, "alphabetical"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Languages list", "LanguagePageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find language",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Language ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Language details", "Language"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create language",
		RequestBody: openapi.RequestBodyJSON("CreateLanguageCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Language created", "Language"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update language",
		Description: "Partially update a language. Omitted fields keep their stored value.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Language ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateLanguageCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Language updated", "Language"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete language",
		Description: "Delete a language. Rejected while a video or repository references it.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Language ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Language deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	str := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "string", Description: desc}
	}
	strs := openapi.ArrayOf(&openapi.Schema{Type: "string"})
	features := openapi.ArrayOf(openapi.SchemaRef("LanguageFeature"))

	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"languageType":      str("Unique language name"),
			"languageExtension": str("Source file extension"),
			"appIcon":           str("Icon URL"),
			"applicationName":   str("Companion app name"),
			"appStoreLink":      str("App Store URL"),
			"bannerImage":       str("Banner image URL"),
			"description":       strs,
			"playstoreLink":     str("Play Store URL"),
			"images":            strs,
			"qrImage":           str("QR code image URL"),
			"features":          features,
		}
	}

	language := fields()
	language["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	language["createdAt"] = &openapi.Schema{Type: "string", Format: "date-time"}
	language["updatedAt"] = &openapi.Schema{Type: "string", Format: "date-time"}

	return map[string]*openapi.Schema{
		"LanguageFeature": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"featureTitle":       {Type: "string"},
				"featureDescription": {Type: "string"},
			},
			Required: []string{"featureTitle", "featureDescription"},
		},
		"Language": {
			Type:       "object",
			Properties: language,
		},
		"CreateLanguageCommand": {
			Type:       "object",
			Properties: fields(),
			Required:   []string{"languageType", "appIcon", "applicationName", "description", "images", "features"},
		},
		"UpdateLanguageCommand": {
			Type:       "object",
			Properties: fields(),
		},
		"LanguagePageResult": openapi.PageResultSchema("Language"),
	}
}
