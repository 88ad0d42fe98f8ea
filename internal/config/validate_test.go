package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfetch/vfetch/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *Config) {},
		},
		{
			name:   "center align",
			modify: func(cfg *Config) { cfg.AlignMode = "center" },
		},
		{
			name:    "unknown align mode",
			modify:  func(cfg *Config) { cfg.AlignMode = "justify" },
			wantErr: "alignMode",
		},
		{
			name:    "negative align space",
			modify:  func(cfg *Config) { cfg.AlignSpace = -1 },
			wantErr: "alignSpace",
		},
		{
			name:    "color index too high",
			modify:  func(cfg *Config) { cfg.ColorIndex = 16 },
			wantErr: "colorIndex",
		},
		{
			name:    "color index negative",
			modify:  func(cfg *Config) { cfg.ColorIndex = -2 },
			wantErr: "colorIndex",
		},
		{
			name:    "offset with one number",
			modify:  func(cfg *Config) { cfg.Offset = []int{1} },
			wantErr: "offset",
		},
		{
			name:    "negative offset",
			modify:  func(cfg *Config) { cfg.Offset = []int{0, -1} },
			wantErr: "negative",
		},
		{
			name:    "unknown data entry",
			modify:  func(cfg *Config) { cfg.Data = []string{"os", "gpu"} },
			wantErr: "gpu",
		},
		{
			name:   "empty data is allowed",
			modify: func(cfg *Config) { cfg.Data = nil },
		},
		{
			name:    "ascii without image",
			modify:  func(cfg *Config) { cfg.DisplayAscii = true },
			wantErr: "asciiImage",
		},
		{
			name: "ascii with image",
			modify: func(cfg *Config) {
				cfg.DisplayAscii = true
				cfg.AsciiImage = "/tmp/art.txt"
			},
		},
		{
			name:    "unknown backend",
			modify:  func(cfg *Config) { cfg.Backend = "ncurses" },
			wantErr: "backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidateSuggestsNearMiss(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data = []string{"os", "kernal"}

	err := Validate(cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Did you mean 'kernel'?")
	}

	cfg = DefaultConfig()
	cfg.AlignMode = "centre"
	err = Validate(cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Did you mean 'center'?")
	}
}
