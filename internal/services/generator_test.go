package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToolRegistryIsComplete(t *testing.T) {
	require.Len(t, Tools, 20)

	sample := &GenerateRequest{
		Topic:    "growth",
		Company:  "Acme",
		Industry: "SaaS",
		Product:  "Widget",
		Audience: "founders",
		Platform: "Instagram",
		Content:  "some content",
		URL:      "https://example.com",
		Keywords: []string{"seo"},
	}

	for key, spec := range Tools {
		require.Equal(t, key, spec.Name, "registry key and spec name must match")
		require.NotEmpty(t, spec.Description, "%s needs a description", key)
		require.NotNil(t, spec.Prompt, "%s needs a prompt builder", key)
		require.NotEmpty(t, spec.Fallback, "%s needs a fallback object", key)

		// Required fields must be resolvable from the request
		for _, field := range spec.Required {
			require.NotEmpty(t, sample.field(field),
				"%s requires %q which the request cannot supply", key, field)
		}

		// Prompts must ask for JSON and marshal cleanly
		prompt := spec.Prompt(sample)
		require.Contains(t, prompt, "JSON", "%s prompt must request JSON output", key)

		raw, err := json.Marshal(spec.Fallback)
		require.NoError(t, err, "%s fallback must marshal", key)
		require.True(t, strings.HasPrefix(string(raw), "{"), "%s fallback must be an object", key)
	}
}

func TestGenerateRequestDefaults(t *testing.T) {
	req := &GenerateRequest{}
	require.Equal(t, 4, req.count(4))
	require.Equal(t, "English", req.language())

	req = &GenerateRequest{Count: 10, Language: "Spanish"}
	require.Equal(t, 10, req.count(4))
	require.Equal(t, "Spanish", req.language())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "topic"}
	require.Equal(t, "missing required field: topic", err.Error())
}
