package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

//go:embed schema.json
var schemaJSON []byte

// Load parses the embedded reference dataset and validates it against the
// embedded JSON schema. The schema checks shapes and enum values only; it
// deliberately does not assert (module, content_type) uniqueness or that
// exactly one option per exercise is correct — those stay unenforced
// data-quality assumptions, as in the reference store.
func Load() (*Dataset, error) {
	var raw any
	if err := yaml.Unmarshal(datasetYAML, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding dataset for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validating dataset: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return nil, fmt.Errorf("dataset does not match schema: %s", strings.Join(issues, "; "))
	}

	var ds Dataset
	if err := yaml.Unmarshal(datasetYAML, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	slog.Info("seed dataset loaded", "grades", len(ds.Grades))
	return &ds, nil
}
