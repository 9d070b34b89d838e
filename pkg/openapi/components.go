package openapi

// NewComponents creates components pre-populated with the shared error
// schema and the error responses every domain references.
func NewComponents() *Components {
	errorSchema := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"error": {Type: "string", Description: "Human-readable error message"},
		},
		Required: []string{"error"},
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": errorSchema,
			"Conflict": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string"},
					"blocking": {
						Type:        "object",
						Description: "The entity preventing the operation",
						Properties: map[string]*Schema{
							"kind": {Type: "string"},
							"id":   {Type: "string", Format: "uuid"},
						},
					},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      ResponseJSON("Invalid request", "Error"),
			"NotFound":        ResponseJSON("Resource not found", "Error"),
			"Conflict":        ResponseJSON("Conflicts with existing data", "Conflict"),
			"PayloadTooLarge": ResponseJSON("Request body too large", "Error"),
		},
	}
}

// AddSchemas merges schemas into the component set, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema, len(schemas))
	}
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}
