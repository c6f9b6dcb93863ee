package models_test

import (
	"testing"

	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestLocalizePicksRequestedLanguage(t *testing.T) {
	name := models.MultilingualText{"en": "White shrimp feed", "ta": "வெள்ளை இறால் தீவனம்"}
	assert.Equal(t, "வெள்ளை இறால் தீவனம்", models.Localize(name, "ta"))
}

func TestLocalizeFallsBackToEnglish(t *testing.T) {
	name := models.MultilingualText{"en": "Lime"}
	assert.Equal(t, "Lime", models.Localize(name, "ta"))
}

func TestLocalizeFallsBackToAnyValue(t *testing.T) {
	name := models.MultilingualText{"ta": "சுண்ணாம்பு"}
	assert.Equal(t, "சுண்ணாம்பு", models.Localize(name, "fr"))
}

func TestLocalizeEmptyText(t *testing.T) {
	assert.Equal(t, "", models.Localize(nil, "en"))
	assert.Equal(t, "", models.Localize(models.MultilingualText{}, "en"))
}

func TestLocalizeSkipsEmptyRequestedValue(t *testing.T) {
	name := models.MultilingualText{"ta": "", "en": "Molasses"}
	assert.Equal(t, "Molasses", models.Localize(name, "ta"))
}
