package settings

import (
	"encoding/json"
	"fmt"
)

// Encode serializes p into the blob format Load reads. Payloads carrying
// unrecognized keys or invalid values are refused so that every encoded blob
// restores cleanly.
func Encode(p Payload) (string, error) {
	if len(p) == 0 {
		return "", ErrNoRecognizedKeys
	}

	for key, value := range p {
		valid := lookup(key)
		if valid == nil {
			return "", fmt.Errorf("%w: unrecognized key %q", ErrShape, key)
		}
		if !valid(value) {
			return "", fmt.Errorf("%w: invalid value %v for %q", ErrShape, value, key)
		}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}
	return string(data), nil
}
