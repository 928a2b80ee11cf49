package ordering

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeds(t *testing.T) {
	t.Run("EvenlySpaced", func(t *testing.T) {
		seeds := Seeds(12, DefaultStep, DefaultPalette)
		require.Len(t, seeds, 12)

		for i, s := range seeds {
			assert.Equal(t, float64(i+1)*DefaultStep, s.Position)
			if i > 0 {
				assert.Greater(t, s.Position, seeds[i-1].Position)
			}
		}
	})

	t.Run("PaletteWraps", func(t *testing.T) {
		seeds := Seeds(7, DefaultStep, DefaultPalette)
		assert.Equal(t, DefaultPalette[0].Background, seeds[5].Color)
		assert.Equal(t, DefaultPalette[1].Foreground, seeds[6].FgColor)
		assert.Equal(t, "Item 7", seeds[6].Label)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Seeds(0, DefaultStep, DefaultPalette))
		assert.Empty(t, Seeds(3, DefaultStep, nil))
	})

	t.Run("Golden", func(t *testing.T) {
		g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
		g.AssertJson(t, "default_seeds", Seeds(len(DefaultPalette), DefaultStep, DefaultPalette))
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Default", DefaultConfig(), false},
		{"ZeroThreshold", Config{Step: 10, Threshold: 0, ItemsCount: 1}, false},
		{"ZeroStep", Config{Step: 0, Threshold: 0.1}, true},
		{"NegativeThreshold", Config{Step: 10, Threshold: -1}, true},
		{"ThresholdEatsGap", Config{Step: 10, Threshold: 5}, true},
		{"NegativeCount", Config{Step: 10, Threshold: 1, ItemsCount: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
