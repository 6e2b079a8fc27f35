package utils

import (
	"os"
	"testing"
)

func TestGetConfig_EnvFallbackWhenFileAbsent(t *testing.T) {
	if configLoaded {
		t.Skip("config file loaded in this process")
	}

	os.Setenv("SPOONACULAR_ENABLED", "true")
	defer os.Unsetenv("SPOONACULAR_ENABLED")

	if got := GetConfig("SPOONACULAR_ENABLED"); got != "true" {
		t.Fatalf("expected env fallback for boolean key, got %q", got)
	}
}

func TestGetConfig_DefaultsApplyWithoutFile(t *testing.T) {
	if got := GetConfig("MEALDB_BASE_URL"); got != "https://www.themealdb.com/api/json/v1/1" {
		t.Fatalf("unexpected default base url: %q", got)
	}
	if got := GetConfig("OPENAI_MODEL"); got != "gpt-4o-mini" {
		t.Fatalf("unexpected default model: %q", got)
	}
}

func TestGetConfig_UnknownKeyFallsBackToEnv(t *testing.T) {
	os.Setenv("SOME_EXTRA_KEY", "value")
	defer os.Unsetenv("SOME_EXTRA_KEY")

	if got := GetConfig("SOME_EXTRA_KEY"); got != "value" {
		t.Fatalf("expected env fallback, got %q", got)
	}
}
