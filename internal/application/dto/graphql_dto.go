package dto

// GraphQLRequest cuerpo de una petición GraphQL sobre HTTP.
type GraphQLRequest struct {
	Query         string         `json:"query" query:"query" validate:"required"`
	OperationName string         `json:"operationName" query:"operationName" validate:"omitempty,max=200"`
	Variables     map[string]any `json:"variables"`
}

// GraphQLLocation posición dentro del documento (1-based).
type GraphQLLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError error en formato GraphQL.
type GraphQLError struct {
	Message   string            `json:"message"`
	Path      []any             `json:"path,omitempty"`
	Locations []GraphQLLocation `json:"locations,omitempty"`
}

// GraphQLResponse respuesta GraphQL. Data es null si la petición no superó la validación.
type GraphQLResponse struct {
	Data   any            `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}
