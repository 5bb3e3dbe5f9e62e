package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
)

//go:embed openapi.json
var openapiJSON string

// SpecMutator adjusts the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mutators []SpecMutator
	// docReader is swapped in tests
	docReader = func() string { return openapiJSON }
)

// Register adds a mutator. Mutators run in registration order on every request
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func errorExample(status int, code int, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code,
					"error":       msg,
					"request_id":  "host/abc-000001",
				},
			},
		},
	}
}

// commonResponses are added to every operation that does not declare them
var commonResponses = map[string]map[string]any{
	"400": errorExample(http.StatusBadRequest, 3, "granularity must be one of [language variant]"),
	"500": errorExample(http.StatusInternalServerError, 1, "internal error"),
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
		}
		eachOperation(spec, func(op map[string]any) {
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			for status, resp := range commonResponses {
				if _, ok := responses[status]; !ok {
					responses[status] = resp
				}
			}
		})
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

func eachOperation(spec map[string]any, fn func(map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		methods, _ := item.(map[string]any)
		for _, op := range methods {
			if op, ok := op.(map[string]any); ok {
				fn(op)
			}
		}
	}
}
