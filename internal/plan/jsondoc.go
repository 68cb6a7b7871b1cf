package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Structured-document handling for the terminal and editor settings JSON
// targets. Documents are decoded into generic trees with json.Number so
// untouched numeric values survive a round trip, and re-encoded with
// indentation and sorted keys for stable, human-diffable output.

// decodeDocument parses a settings JSON document into a generic tree.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings document: %w", err)
	}
	return doc, nil
}

// encodeDocument serializes a settings document with stable formatting.
func encodeDocument(doc map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize settings document: %w", err)
	}
	return append(data, '\n'), nil
}

// upsertScheme removes any existing scheme whose name matches the new
// scheme's name, then appends the new scheme. The scheme list is keyed by
// name, never by index.
func upsertScheme(doc map[string]any, scheme map[string]any) {
	name, _ := scheme["name"].(string)

	schemes, _ := doc["schemes"].([]any)
	kept := make([]any, 0, len(schemes)+1)
	for _, s := range schemes {
		entry, ok := s.(map[string]any)
		if ok {
			if existing, _ := entry["name"].(string); existing == name {
				continue
			}
		}
		kept = append(kept, s)
	}

	doc["schemes"] = append(kept, scheme)
}

// mergeProfileDefaults merges the configured keys into the profile
// defaults object. The profiles value may be an object holding "defaults"
// and "list" or a bare list; a bare list has no defaults object, so the
// merge only applies to the object form (created when absent).
func mergeProfileDefaults(doc map[string]any, defaults map[string]any) {
	switch profiles := doc["profiles"].(type) {
	case map[string]any:
		target, ok := profiles["defaults"].(map[string]any)
		if !ok {
			target = make(map[string]any)
			profiles["defaults"] = target
		}
		for k, v := range defaults {
			target[k] = v
		}
	case nil:
		doc["profiles"] = map[string]any{"defaults": cloneMap(defaults)}
	}
}

// patchProfiles updates profile entries whose name or source matches a
// configured patch, leaving all other entries untouched. The match keys
// themselves are not rewritten.
func patchProfiles(doc map[string]any, patches []map[string]any) {
	list := profileList(doc)

	for _, entry := range list {
		profile, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for _, patch := range patches {
			if !profileMatches(profile, patch) {
				continue
			}
			for k, v := range patch {
				if k == "name" || k == "source" {
					continue
				}
				profile[k] = v
			}
		}
	}
}

// profileList returns the mutable profile entries regardless of whether
// the document uses the bare-list or object form.
func profileList(doc map[string]any) []any {
	switch profiles := doc["profiles"].(type) {
	case []any:
		return profiles
	case map[string]any:
		list, _ := profiles["list"].([]any)
		return list
	default:
		return nil
	}
}

func profileMatches(profile, patch map[string]any) bool {
	if want, _ := patch["name"].(string); want != "" {
		if got, _ := profile["name"].(string); got == want {
			return true
		}
	}
	if want, _ := patch["source"].(string); want != "" {
		if got, _ := profile["source"].(string); got == want {
			return true
		}
	}
	return false
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
