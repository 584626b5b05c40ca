package nostr

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// KindFromEventJSON reads only the "kind" field of a raw event object.
func KindFromEventJSON(raw []byte) (Kind, error) {
	if !gjson.ValidBytes(raw) {
		return 0, fmt.Errorf("malformed event json")
	}

	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return 0, fmt.Errorf("event is not an object")
	}

	field := r.Get("kind")
	if !field.Exists() {
		return 0, fmt.Errorf("event has no 'kind' field")
	}
	if field.Type != gjson.Number {
		return 0, fmt.Errorf("invalid 'kind' field: %s", field.Raw)
	}

	if field.Num < 0 || field.Num > 65535 {
		return 0, fmt.Errorf("invalid 'kind' field: %w: %s", ErrKindOutOfRange, field.Raw)
	}

	// reject fractional values instead of truncating them
	if float64(field.Int()) != field.Num {
		return 0, fmt.Errorf("invalid 'kind' field: %s is not an integer", field.Raw)
	}

	kind, err := KindFromInteger(field.Int())
	if err != nil {
		return 0, fmt.Errorf("invalid 'kind' field: %w", err)
	}
	return kind, nil
}
