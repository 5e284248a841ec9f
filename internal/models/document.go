package models

import "encoding/json"

// mergeJSON encodes v and adds every key of extra that v does not already
// define, so documents keep fields the typed struct does not model.
func mergeJSON(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := out[k]; ok {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		out[k] = raw
	}
	return json.Marshal(out)
}

// splitJSON returns the keys of data that are not in known.
func splitJSON(data []byte, known ...string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}
