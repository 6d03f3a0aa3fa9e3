// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedI18n(t *testing.T) *I18n {
	t.Helper()
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  "en",
	}
	require.NoError(t, i.LoadTranslations("./locales"))
	return i
}

func TestTranslationsLoad(t *testing.T) {
	i := loadedI18n(t)

	assert.NotEqual(t, KeyAssetCreated, i.T("en", KeyAssetCreated))
	assert.NotEqual(t, KeyAssetCreated, i.T("de", KeyAssetCreated))
}

func TestTranslationFallsBackToEnglish(t *testing.T) {
	i := loadedI18n(t)

	// Unknown language falls back to the default catalog
	assert.Equal(t, i.T("en", KeyAssetCreated), i.T("fr", KeyAssetCreated))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	i := loadedI18n(t)

	assert.Equal(t, "no.such.key", i.T("en", "no.such.key"))
}

func TestSupportedLanguagesListsCatalogs(t *testing.T) {
	i := loadedI18n(t)

	assert.Equal(t, []string{"de", "en"}, i.SupportedLanguages())
}

func TestGlobalTWithoutInitialize(t *testing.T) {
	// The package-level helper degrades to the key before Initialize
	assert.NotEmpty(t, T("en", KeyAssetCreated))
}
