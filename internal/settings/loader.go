package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

var (
	// ErrSyntax means the blob is not valid JSON.
	ErrSyntax = errors.New("settings blob is not valid JSON")

	// ErrShape means the blob decoded but is not an object, or a recognized
	// key holds a value of the wrong type.
	ErrShape = errors.New("settings blob has an unexpected shape")

	// ErrNoRecognizedKeys means the blob is an object with none of the
	// recognized keys.
	ErrNoRecognizedKeys = errors.New("settings blob has no recognized keys")
)

// Load restores the settings in raw and dispatches them to the root store.
//
// Dispatch happens at most once, with constants.ActionRestoreSettings and
// DispatchOptions{Root: true}. Any failure leaves dispatch uncalled; Load
// never returns an error.
func Load(dispatch Dispatcher, raw string) {
	if dispatch == nil {
		return
	}

	payload, err := Restore(raw)
	if err != nil {
		return
	}

	dispatch.Dispatch(constants.ActionRestoreSettings, payload, DispatchOptions{Root: true})
}

// Restore decodes raw, validates the recognized keys and merges them over
// Defaults. Unrecognized keys are dropped. A single invalid recognized key
// rejects the whole blob.
//
// The returned error wraps ErrSyntax, ErrShape or ErrNoRecognizedKeys.
func Restore(raw string) (Payload, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	object, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %s, want object", ErrShape, kind(decoded))
	}

	filtered, err := filter(object)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, ErrNoRecognizedKeys
	}

	merged := Defaults()
	for key, value := range filtered {
		merged[key] = value
	}
	return merged, nil
}

// filter keeps the recognized keys of object, failing on the first one whose
// value does not satisfy its predicate.
func filter(object map[string]any) (Payload, error) {
	filtered := Payload{}
	for _, f := range schema {
		value, present := object[f.key]
		if !present {
			continue
		}
		if !f.valid(value) {
			return nil, fmt.Errorf("%w: invalid value %v (%s) for %q", ErrShape, value, kind(value), f.key)
		}
		filtered[f.key] = value
	}
	return filtered, nil
}

// kind names the JSON type of a value produced by encoding/json.
func kind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
