package ir

import "encoding/json"

// unmarshalPair decodes a JSON two-element array into pair.
func unmarshalPair(data []byte, pair *[2]int) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return json.Unmarshal(data, pair) // produce a consistent "cannot unmarshal" error
	}
	pair[0], pair[1] = raw[0], raw[1]
	return nil
}
