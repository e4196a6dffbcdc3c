package docs

import (
	"encoding/json"
	"strings"
	"testing"
)

// Every $ref in the rendered document must point at a declared definition,
// otherwise the swagger UI shows broken model links.
func TestSwaggerRefsResolve(t *testing.T) {
	doc := SwaggerInfo.ReadDoc()

	var root any
	if err := json.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	var spec struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("decode definitions: %v", err)
	}

	var refs []string
	var walk func(v any)
	walk = func(v any) {
		switch node := v.(type) {
		case map[string]any:
			for key, val := range node {
				if key == "$ref" {
					if s, ok := val.(string); ok {
						refs = append(refs, s)
					}
				}
				walk(val)
			}
		case []any:
			for _, val := range node {
				walk(val)
			}
		}
	}
	walk(root)

	if len(refs) == 0 {
		t.Fatalf("no $ref entries found in the document")
	}
	for _, ref := range refs {
		name := strings.TrimPrefix(ref, "#/definitions/")
		if name == ref {
			t.Fatalf("non-local ref %q", ref)
		}
		if _, ok := spec.Definitions[name]; !ok {
			t.Fatalf("ref %q has no matching definition", ref)
		}
	}
}
