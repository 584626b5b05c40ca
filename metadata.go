package nostr

import (
	"encoding/json"
	"fmt"
)

type ProfileMetadata struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	About       string `json:"about,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Website     string `json:"website,omitempty"`
	NIP05       string `json:"nip05,omitempty"`
	LUD16       string `json:"lud16,omitempty"`
}

// NewMetadata builds a kind 0 event carrying the profile as its content.
func NewMetadata(meta ProfileMetadata) (Event, error) {
	content, err := json.Marshal(meta)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode metadata: %w", err)
	}
	return newEvent(FromVariant(VariantMetadata), string(content), nil), nil
}

func ParseMetadata(event Event) (*ProfileMetadata, error) {
	if !event.Is(VariantMetadata) {
		return nil, fmt.Errorf("event is kind %s, not %d", event.Kind, KindProfileMetadata)
	}

	var meta ProfileMetadata
	err := json.Unmarshal([]byte(event.Content), &meta)
	if err != nil {
		cont := event.Content
		if len(cont) > 100 {
			cont = cont[0:99]
		}
		return nil, fmt.Errorf("failed to parse metadata (%s): %w", cont, err)
	}

	return &meta, nil
}
