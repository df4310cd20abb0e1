package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, validateTuning(DefaultTuning()))
}

func TestDefaultTuningMatchesDataFile(t *testing.T) {
	cfg, err := LoadTuning(filepath.Join("..", "..", "data", "tuning.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), cfg)
}

func TestTrackBounds(t *testing.T) {
	cfg := DefaultTuning()
	assert.Equal(t, 100.0, cfg.TrackLeft())
	assert.Equal(t, 700.0, cfg.TrackRight())
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Tuning)
	}{
		{
			name:        "partial file keeps defaults",
			yamlContent: "obstacle:\n  maxActive: 8\n",
			validate: func(t *testing.T, cfg *Tuning) {
				assert.Equal(t, 8, cfg.Obstacle.MaxActive)
				assert.Equal(t, 0.02, cfg.Obstacle.SpawnChance)
				assert.Equal(t, 3, cfg.Car.StartLives)
			},
		},
		{
			name:        "uncapped speed boost",
			yamlContent: "powerUp:\n  maxSpeed: 0\n",
			validate: func(t *testing.T, cfg *Tuning) {
				assert.Zero(t, cfg.PowerUp.MaxSpeed)
			},
		},
		{
			name:        "spawn chance above one",
			yamlContent: "obstacle:\n  spawnChance: 1.5\n",
			wantErr:     true,
			errContains: "obstacle.spawnChance",
		},
		{
			name:        "inverted speed range",
			yamlContent: "obstacle:\n  minSpeed: 7\n  maxSpeed: 3\n",
			wantErr:     true,
			errContains: "speed range",
		},
		{
			name:        "car wider than track",
			yamlContent: "car:\n  width: 650\n",
			wantErr:     true,
			errContains: "does not fit",
		},
		{
			name:        "zero ticks per point",
			yamlContent: "score:\n  ticksPerPoint: 0\n",
			wantErr:     true,
			errContains: "ticksPerPoint",
		},
		{
			name:        "malformed yaml",
			yamlContent: "car: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTuning([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
