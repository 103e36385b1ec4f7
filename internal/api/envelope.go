package api

import "encoding/json"

// listKeys are the conventional envelope keys list-bearing endpoints use,
// probed in priority order. The backend is not consistent about its envelope
// shape, so schema drift is tolerated instead of raised.
var listKeys = []string{"data", "items", "orders", "results", "verifications", "products", "docs"}

// ExtractList normalizes a decoded response payload into a plain list.
//
// A bare list is returned as-is. For object payloads the conventional keys
// are probed in order, then the nested data.items shape. Anything else
// degrades to an empty list.
func ExtractList(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range listKeys {
			if list, ok := v[key].([]any); ok {
				return list
			}
		}
		if data, ok := v["data"].(map[string]any); ok {
			if list, ok := data["items"].([]any); ok {
				return list
			}
		}
	}
	return []any{}
}

// ExtractRecord unwraps the single-record {"data": {...}} envelope. Payloads
// of any other shape are returned unchanged.
func ExtractRecord(payload any) any {
	if m, ok := payload.(map[string]any); ok {
		if data, ok := m["data"].(map[string]any); ok {
			return data
		}
	}
	return payload
}

// Decode re-encodes a dynamically-typed payload fragment into a typed value.
func Decode[T any](v any) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeList extracts the list from payload and decodes every element into T.
func DecodeList[T any](payload any) ([]T, error) {
	return Decode[[]T](ExtractList(payload))
}
