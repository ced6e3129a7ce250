package treespec

import "sigs.k8s.io/yaml"

// FromYAML parses a tree spec authored in YAML, converting it to the JSON
// grammar of spec.md §6.4 via sigs.k8s.io/yaml's JSON-compatible round trip
// and then through FromJSON. This is an enrichment over the original
// Erlang-term spec input (which had no YAML front door at all) and exists
// purely for authoring convenience; the authoritative grammar remains the
// JSON tuple form.
func FromYAML(raw []byte) (*Spec, error) {
	jsonBytes, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return nil, &BadSpecError{Reason: "invalid YAML: " + err.Error()}
	}
	return FromJSON(jsonBytes)
}
