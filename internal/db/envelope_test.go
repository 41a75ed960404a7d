package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deeploop/internal/model"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	state := &model.State{
		Party: []*model.Character{{
			ID: 1, Name: "Aric the Bold", Class: "warrior", Race: "human",
			Level: 3, HP: 40, MaxHP: 50, Alive: true,
		}},
		Inventory: model.Inventory{Gold: 120},
		Prestige:  model.Prestige{Level: 1, Points: 4, Upgrades: map[string]int{"vitality": 2}},
		GamePhase: model.PhaseExploring,
		TickCount: 99,
	}

	data, err := MarshalEnvelope(state, time.Now())
	require.NoError(t, err)

	got, err := UnmarshalEnvelope(data)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 120, got.Inventory.Gold)
	assert.Equal(t, 99, got.TickCount)
	require.Len(t, got.Party, 1)
	assert.Equal(t, "Aric the Bold", got.Party[0].Name)
	assert.Equal(t, 2, got.Prestige.Upgrades["vitality"])
}

func TestUnmarshalVersionMismatchIsNoSave(t *testing.T) {
	t.Parallel()

	got, err := UnmarshalEnvelope([]byte(`{"version": 2, "timestamp": 0, "state": {}}`))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnmarshalGarbageIsNoSave(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{"", "not json", `{"version": 1}`, `[]`} {
		got, err := UnmarshalEnvelope([]byte(payload))
		assert.NoError(t, err, "payload %q", payload)
		assert.Nil(t, got, "payload %q", payload)
	}
}

func TestUnmarshalBackfillsLegacyGaps(t *testing.T) {
	t.Parallel()

	// a legacy save missing shop, upgrades, challenge map and buff lists
	payload := []byte(`{
		"version": 1,
		"timestamp": 0,
		"state": {
			"party": [{"id": 1, "name": "Bren", "class": "warrior", "race": "human",
			           "level": 1, "hp": 10, "maxHp": 10, "alive": true}],
			"inventory": {"gold": 5},
			"stats": {}
		}
	}`)

	got, err := UnmarshalEnvelope(payload)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.NotNil(t, got.Shop)
	assert.NotNil(t, got.Inventory.Items)
	assert.NotNil(t, got.Prestige.Upgrades)
	assert.NotNil(t, got.Stats.ChallengesCompleted)
	assert.NotNil(t, got.Achievements)
	assert.NotNil(t, got.Log)
	assert.Equal(t, model.PhaseExploring, got.GamePhase)
	require.Len(t, got.Party, 1)
	assert.NotNil(t, got.Party[0].Buffs)
	assert.NotNil(t, got.Party[0].Skills)
}
