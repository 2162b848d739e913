package model

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// EventType classifies an Event.
type EventType string

const (
	EventTypeMeeting      EventType = "meeting"
	EventTypeConsultation EventType = "consultation"
	EventTypeSurgery      EventType = "surgery"
	EventTypeConference   EventType = "conference"
	EventTypeWebinar      EventType = "webinar"
	EventTypeBreak        EventType = "break"
	EventTypeRounds       EventType = "rounds"
	EventTypePersonal     EventType = "personal"
	EventTypeResearch     EventType = "research"
	EventTypeOther        EventType = "other"
)

var eventTypes = []EventType{
	EventTypeMeeting,
	EventTypeConsultation,
	EventTypeSurgery,
	EventTypeConference,
	EventTypeWebinar,
	EventTypeBreak,
	EventTypeRounds,
	EventTypePersonal,
	EventTypeResearch,
	EventTypeOther,
}

// EventTypes returns all valid event types in display order.
func EventTypes() []EventType {
	return slices.Clone(eventTypes)
}

func (t EventType) IsValid() bool {
	return slices.Contains(eventTypes, t)
}

// EventTypeInfo holds display metadata of an EventType.
// swagger:model
type EventTypeInfo struct {
	Type  EventType `json:"type" yaml:"type"`
	Label string    `json:"label" yaml:"label"`
	Color string    `json:"color" yaml:"color"`
}

//go:embed eventTypes.yaml
var eventTypesYAML []byte

// LoadEventTypeCatalog parses the embedded event type catalog. Every EventType is guaranteed to
// have exactly one entry.
func LoadEventTypeCatalog() ([]EventTypeInfo, error) {
	return parseEventTypeCatalog(eventTypesYAML)
}

func parseEventTypeCatalog(data []byte) ([]EventTypeInfo, error) {
	var catalog []EventTypeInfo
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse event type catalog: %v", err)
	}

	seen := make(map[EventType]bool, len(catalog))
	for _, info := range catalog {
		if !info.Type.IsValid() {
			return nil, fmt.Errorf("unknown event type %q in catalog", info.Type)
		}
		if seen[info.Type] {
			return nil, fmt.Errorf("duplicate event type %q in catalog", info.Type)
		}
		seen[info.Type] = true
	}
	for _, t := range eventTypes {
		if !seen[t] {
			return nil, fmt.Errorf("event type %q missing from catalog", t)
		}
	}

	return catalog, nil
}
