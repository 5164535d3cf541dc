package cli

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_EmbeddedPtBR(t *testing.T) {
	c, err := LoadCatalog(DefaultLocale)
	require.NoError(t, err)

	for _, key := range []string{
		"welcome", "bye", "unknown_command", "help_entry", "help_home", "greeting",
		"prompt_carteira", "prompt_senha", "login_ok", "logout_ok",
		"quick_login_disabled", "not_logged_in", "session_not_saved",
	} {
		assert.Contains(t, c, key)
	}
	assert.Equal(t, "Olá, Ana", c.T("greeting", "Ana"))
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog("en-US")
	require.Error(t, err)

	fsys := fstest.MapFS{
		"bad.yaml":   {Data: []byte("greeting: [unterminated")},
		"empty.yaml": {Data: []byte("")},
	}
	_, err = loadCatalogFS(fsys, "bad.yaml")
	require.ErrorContains(t, err, "parse catalog")

	_, err = loadCatalogFS(fsys, "empty.yaml")
	require.ErrorContains(t, err, "empty")
}

func TestCatalog_UnknownKeyAndNil(t *testing.T) {
	c := Catalog{"bye": "Até logo!"}
	assert.Equal(t, "Até logo!", c.T("bye"))
	assert.Equal(t, "missing", c.T("missing"))

	var empty Catalog
	assert.Equal(t, "bye", empty.T("bye"))
}
