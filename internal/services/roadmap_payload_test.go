package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursemap/internal/models/response_models"
	"coursemap/pkg/utils"
)

func TestParseRoadmapPayloadValid(t *testing.T) {
	raw := []byte(`{"title":"X","description":"Y","modules":[{"title":"M","topics":["a","b"]}]}`)

	roadmap, err := ParseRoadmapPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, "X", roadmap.Title)
	require.Len(t, roadmap.Modules, 1)
	assert.Equal(t, []string{"a", "b"}, roadmap.Modules[0].Topics)
}

func TestParseRoadmapPayloadEmptyModulesIsValid(t *testing.T) {
	// modules present and an array, just empty: a roadmap with nothing in
	// it, not invalid data
	raw := []byte(`{"title":"X","description":"Y","modules":[]}`)

	roadmap, err := ParseRoadmapPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, "X", roadmap.Title)
	assert.NotNil(t, roadmap.Modules)
	assert.Empty(t, roadmap.Modules)
}

func TestParseRoadmapPayloadMissingModules(t *testing.T) {
	_, err := ParseRoadmapPayload([]byte(`{"title":"X","description":"Y"}`))
	assert.ErrorIs(t, err, utils.ErrInvalidRoadmap)
}

func TestParseRoadmapPayloadNullModules(t *testing.T) {
	_, err := ParseRoadmapPayload([]byte(`{"title":"X","modules":null}`))
	assert.ErrorIs(t, err, utils.ErrInvalidRoadmap)
}

func TestParseRoadmapPayloadModulesNotArray(t *testing.T) {
	_, err := ParseRoadmapPayload([]byte(`{"title":"X","modules":"nope"}`))
	assert.ErrorIs(t, err, utils.ErrInvalidRoadmap)
}

func TestParseRoadmapPayloadNotJSON(t *testing.T) {
	_, err := ParseRoadmapPayload([]byte(`<html>`))
	assert.ErrorIs(t, err, utils.ErrInvalidRoadmap)
}

func TestParseRoadmapPayloadRoundTrip(t *testing.T) {
	original := response_models.Roadmap{
		Title:       "Python Foundations",
		Description: "From zero to scripts",
		Modules: []response_models.RoadmapModule{
			{Title: "Getting Started", Topics: []string{"Installing Python", "The REPL"}},
			{Title: "Core Concepts", Topics: []string{"Variables", "Functions"}},
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, err := ParseRoadmapPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, original, *parsed)

	// parsing the same payload again yields the identical structure
	again, err := ParseRoadmapPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, parsed, again)
}
