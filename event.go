package nostr

// Event is an unsigned event as produced by the builders below. Hashing,
// signing and wire serialization are left to whoever publishes it.
type Event struct {
	PubKey    string
	CreatedAt Timestamp
	Kind      Kind
	Tags      Tags
	Content   string
}

// NewTextNote builds a kind 1 event.
func NewTextNote(content string, tags ...Tag) Event {
	return newEvent(FromVariant(VariantTextNote), content, tags)
}

func newEvent(kind Kind, content string, tags Tags) Event {
	if tags == nil {
		tags = make(Tags, 0)
	}
	evt := Event{
		CreatedAt: Now(),
		Kind:      kind,
		Tags:      tags,
		Content:   content,
	}
	InfoLogger.Printf("built event of kind %s", kind)
	return evt
}

// NewEvent builds an event of any kind, known or custom.
func NewEvent(kind Kind, content string, tags ...Tag) Event {
	return newEvent(kind, content, tags)
}

// Is reports whether the event's kind classifies as the given variant.
func (evt Event) Is(v Variant) bool {
	return evt.Kind.Variant() == v
}
