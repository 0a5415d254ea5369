package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/eks-decision-api/internal/decision"
	"github.com/phrazzld/eks-decision-api/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// Title is the API title shown in the OpenAPI document and the docs pages.
const Title = "EKS Decision Engine API"

// OpenAPIPath is where the JSON OpenAPI document is served.
const OpenAPIPath = "/openapi.json"

//go:embed openapi.yaml
var openAPISource []byte

// BuildOpenAPI renders the embedded OpenAPI YAML as JSON. The version and
// the decision example are filled in from Version and the live table.
func BuildOpenAPI(service DecisionService) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(openAPISource, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI source: %w", err)
	}

	doc, ok := normalizeYAML(raw).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("OpenAPI source is not a mapping")
	}

	info, ok := doc["info"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("OpenAPI source has no info section")
	}
	info["title"] = Title
	info["version"] = Version

	if example, ok := decisionExample(service); ok {
		err := setPath(doc, example,
			"paths", "/decision/{profile_name}", "get", "responses", "200",
			"content", "application/json", "example")
		if err != nil {
			return nil, err
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	return out, nil
}

// decisionExample picks dev-public when present, otherwise the first profile.
func decisionExample(service DecisionService) (ProfileDecisionResponse, bool) {
	names := []string{decision.ProfileDevPublic}
	names = append(names, service.Profiles()...)

	for _, name := range names {
		rec, err := service.Lookup(name)
		if err == nil {
			return ProfileDecisionResponse{Profile: name, Decision: decisionToResponse(rec)}, true
		}
	}
	return ProfileDecisionResponse{}, false
}

// setPath assigns value at the nested mapping key path in doc.
func setPath(doc map[string]interface{}, value interface{}, keys ...string) error {
	current := doc
	for i, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return fmt.Errorf("OpenAPI source is missing %v", keys[:i+1])
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
	return nil
}

// normalizeYAML converts any map[interface{}]interface{} produced by the YAML
// decoder into map[string]interface{} so the tree can be JSON encoded.
func normalizeYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

var docsPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - {{.Kind}}</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
{{- if eq .Kind "ReDoc"}}
</head>
<body>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
{{- else}}
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: "{{.SpecURL}}", dom_id: "#swagger-ui"});
</script>
{{- end}}
</body>
</html>
`))

// DocsHandler serves the OpenAPI document and the HTML pages that render it.
type DocsHandler struct {
	spec   []byte
	logger *slog.Logger
}

// NewDocsHandler builds the OpenAPI document once for the lifetime of the handler.
func NewDocsHandler(service DecisionService, logger *slog.Logger) (*DocsHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	spec, err := BuildOpenAPI(service)
	if err != nil {
		return nil, err
	}

	return &DocsHandler{
		spec:   spec,
		logger: logger.With(slog.String("component", "docs_handler")),
	}, nil
}

// OpenAPI handles GET /openapi.json requests.
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.spec); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to write OpenAPI document", "error", err)
	}
}

// SwaggerUI handles GET /docs requests.
func (h *DocsHandler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Swagger UI")
}

// ReDoc handles GET /redoc requests.
func (h *DocsHandler) ReDoc(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "ReDoc")
}

func (h *DocsHandler) renderPage(w http.ResponseWriter, r *http.Request, kind string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	err := docsPage.Execute(w, struct {
		Title   string
		Kind    string
		SpecURL string
	}{Title: Title, Kind: kind, SpecURL: OpenAPIPath})
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to render docs page",
			"page", kind, "error", err)
	}
}
