package event

import "encoding/json"

// DecodePayload decodes an event payload into T via type assertion then JSON
// fallback. Events published through the in-process MemoryBus already carry
// the concrete payload struct; payloads that arrived serialized go through
// the JSON round trip instead.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
