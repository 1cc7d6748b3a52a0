package services

import (
	"encoding/json"

	"coursemap/internal/models/response_models"
	"coursemap/pkg/utils"
)

// ParseRoadmapPayload parses an untrusted roadmap payload for presentation.
// A payload whose modules key is absent, null, or not an array is wholly
// invalid; a present-but-empty modules array is a valid roadmap that simply
// has nothing in it, and the two cases must not be conflated.
func ParseRoadmapPayload(raw []byte) (*response_models.Roadmap, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, utils.ErrInvalidRoadmap
	}

	modulesRaw, ok := fields["modules"]
	if !ok || string(modulesRaw) == "null" {
		return nil, utils.ErrInvalidRoadmap
	}

	var modules []response_models.RoadmapModule
	if err := json.Unmarshal(modulesRaw, &modules); err != nil {
		return nil, utils.ErrInvalidRoadmap
	}

	var roadmap response_models.Roadmap
	if err := json.Unmarshal(raw, &roadmap); err != nil {
		return nil, utils.ErrInvalidRoadmap
	}
	if roadmap.Modules == nil {
		roadmap.Modules = []response_models.RoadmapModule{}
	}

	return &roadmap, nil
}
