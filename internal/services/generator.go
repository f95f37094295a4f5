package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"
)

// ErrUnknownTool is returned for tools missing from the registry
var ErrUnknownTool = errors.New("unknown generator tool")

// ValidationError flags a missing caller-supplied field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// GenerateRequest carries the caller-supplied inputs shared by all
// generator tools. Fields a tool does not use are simply ignored.
type GenerateRequest struct {
	Topic    string   `json:"topic"`
	Company  string   `json:"company"`
	Industry string   `json:"industry"`
	Product  string   `json:"product"`
	Audience string   `json:"audience"`
	Platform string   `json:"platform"`
	Tone     string   `json:"tone"`
	Language string   `json:"language"`
	Keywords []string `json:"keywords"`
	Content  string   `json:"content"`
	URL      string   `json:"url"`
	Count    int      `json:"count"`
}

func (r *GenerateRequest) field(name string) string {
	switch name {
	case "topic":
		return r.Topic
	case "company":
		return r.Company
	case "industry":
		return r.Industry
	case "product":
		return r.Product
	case "audience":
		return r.Audience
	case "platform":
		return r.Platform
	case "content":
		return r.Content
	case "url":
		return r.URL
	default:
		return ""
	}
}

func (r *GenerateRequest) count(def int) int {
	if r.Count > 0 {
		return r.Count
	}
	return def
}

func (r *GenerateRequest) language() string {
	if r.Language != "" {
		return r.Language
	}
	return "English"
}

// ToolSpec describes one generator tool: which inputs it needs, how its
// prompt is built and the deterministic object returned when the model
// reply cannot be parsed.
type ToolSpec struct {
	Name        string
	Description string
	Required    []string
	Prompt      func(r *GenerateRequest) string
	Fallback    map[string]interface{}
}

// GeneratorService forwards tool requests to the AI gateway and
// strict-parses the replies
type GeneratorService struct {
	gateway *AIGateway
}

// NewGeneratorService creates a generator service
func NewGeneratorService(gateway *AIGateway) *GeneratorService {
	return &GeneratorService{gateway: gateway}
}

// Configured reports whether the underlying gateway has an API key
func (s *GeneratorService) Configured() bool {
	return s.gateway.Configured()
}

const systemPrompt = `You are a senior marketing strategist for a digital growth agency. ` +
	`Always answer with a single valid JSON object matching the shape requested by the user. ` +
	`No prose, no markdown fences, no commentary outside the JSON object.`

// Generate runs one tool invocation. The returned bool reports whether
// the deterministic fallback object was used because the model reply did
// not parse as a JSON object.
func (s *GeneratorService) Generate(ctx context.Context, tool string, req *GenerateRequest) (json.RawMessage, bool, error) {
	spec, ok := Tools[tool]
	if !ok {
		return nil, false, ErrUnknownTool
	}

	for _, field := range spec.Required {
		if strings.TrimSpace(req.field(field)) == "" {
			return nil, false, &ValidationError{Field: field}
		}
	}

	raw, err := s.gateway.CompleteJSON(ctx, systemPrompt, spec.Prompt(req))
	if err != nil {
		return nil, false, err
	}

	// Strict parse: the reply must be a JSON object. Anything else gets
	// the tool's typed fallback, never a best-effort extraction.
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) == 0 {
		logging.Warnf("Tool %s returned unparseable output, serving fallback: %v", tool, err)
		fallback, _ := json.Marshal(spec.Fallback)
		return fallback, true, nil
	}

	return raw, false, nil
}

// ToolNames lists the registered tools
func ToolNames() []string {
	names := make([]string, 0, len(Tools))
	for name := range Tools {
		names = append(names, name)
	}
	return names
}
