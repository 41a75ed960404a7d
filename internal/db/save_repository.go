package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/udisondev/deeploop/internal/model"
)

// SaveVersion is the current envelope version. A stored save with any other
// version loads as "no save".
const SaveVersion = 1

// Envelope is the persisted wire format around a run state.
type Envelope struct {
	Version   int          `json:"version"`
	Timestamp int64        `json:"timestamp"`
	State     *model.State `json:"state"`
}

// MarshalEnvelope wraps the state in a versioned envelope and encodes it.
func MarshalEnvelope(state *model.State, now time.Time) ([]byte, error) {
	env := Envelope{
		Version:   SaveVersion,
		Timestamp: now.UnixMilli(),
		State:     state,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding save envelope: %w", err)
	}
	return data, nil
}

// UnmarshalEnvelope decodes a persisted envelope. Version mismatch or a
// parse failure is "no save": (nil, nil), never an error. Missing optional
// fields are backfilled.
func UnmarshalEnvelope(data []byte) (*model.State, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil
	}
	if env.Version != SaveVersion || env.State == nil {
		return nil, nil
	}
	env.State.Backfill()
	return env.State, nil
}

// SaveRepository stores run states by slot name.
type SaveRepository struct {
	db *DB
}

// NewSaveRepository returns a repository over the given handle.
func NewSaveRepository(db *DB) *SaveRepository {
	return &SaveRepository{db: db}
}

// Store upserts the state into its slot.
func (r *SaveRepository) Store(ctx context.Context, slot string, state *model.State) error {
	data, err := MarshalEnvelope(state, time.Now())
	if err != nil {
		return err
	}
	_, err = r.db.pool.Exec(ctx,
		`INSERT INTO saves (slot, version, saved_at, state)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (slot) DO UPDATE
		 SET version = EXCLUDED.version, saved_at = EXCLUDED.saved_at, state = EXCLUDED.state`,
		slot, SaveVersion, time.Now(), data,
	)
	if err != nil {
		return fmt.Errorf("storing save %q: %w", slot, err)
	}
	return nil
}

// Load reads the state in a slot. An empty slot, a version mismatch or a
// corrupt payload all return (nil, nil).
func (r *SaveRepository) Load(ctx context.Context, slot string) (*model.State, error) {
	var data []byte
	err := r.db.pool.QueryRow(ctx,
		`SELECT state FROM saves WHERE slot = $1`, slot,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading save %q: %w", slot, err)
	}
	return UnmarshalEnvelope(data)
}
