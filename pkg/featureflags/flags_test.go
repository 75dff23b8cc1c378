package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsWhenUnset(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, DescriptionEnhancement))
	assert.True(t, manager.IsEnabled(ctx, GeocodeFallback))
	assert.False(t, manager.IsEnabled(ctx, "unknown_flag"))
}

func TestEnvManager_DisabledWhenFlagSetFalse(t *testing.T) {
	os.Setenv("TEST_FEATURE_GEOCODE_FALLBACK", "false")
	defer os.Unsetenv("TEST_FEATURE_GEOCODE_FALLBACK")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(context.Background(), GeocodeFallback))
	assert.True(t, manager.IsEnabled(context.Background(), DescriptionEnhancement))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")

			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_DESCRIPTION_ENHANCEMENT", "true")
	defer os.Unsetenv("TEST_FEATURE_DESCRIPTION_ENHANCEMENT")

	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(DescriptionEnhancement, false)

	assert.False(t, manager.IsEnabled(context.Background(), DescriptionEnhancement))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(GeocodeFallback, false)

	flags := manager.GetAllFlags()

	assert.Len(t, flags, 2)
	assert.True(t, flags[DescriptionEnhancement])
	assert.False(t, flags[GeocodeFallback])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		DescriptionEnhancement: false,
	})
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, DescriptionEnhancement))
	assert.False(t, manager.IsEnabled(ctx, GeocodeFallback))

	manager.SetEnabled(GeocodeFallback, true)
	assert.True(t, manager.IsEnabled(ctx, GeocodeFallback))

	flags := manager.GetAllFlags()
	flags[GeocodeFallback] = false
	assert.True(t, manager.IsEnabled(ctx, GeocodeFallback), "GetAllFlags must return a copy")
}

func TestStaticManager_NilStartsFromDefaults(t *testing.T) {
	manager := NewStaticManager(nil)

	assert.Equal(t, Defaults(), manager.GetAllFlags())
}
