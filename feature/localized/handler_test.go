package localized

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"l10n-manager/core/record"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, f fixture) *fiber.App {
	app := fiber.New()
	feature := NewFeature(f.service(2, nil, nil))
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleImport(t *testing.T) {
	f := newFixture(t)
	f.writeStrings(t, f.layout.LocalePath("fr"), []record.TextRecord{record.New("s1", "vieux", true)})
	f.writeCSV(t, "french", "english value 1,nouveau\n")
	app := setupTestApp(t, f)

	status, body := post(t, app, "/localized", `{"mapping":{"french":"fr"}}`)
	assert.Equal(t, 200, status)
	assert.NotEmpty(t, body["run_id"])
	assert.Equal(t, []record.TextRecord{record.New("s1", "nouveau", true)}, f.readLocale(t, "fr"))
}

func TestHandleImport_DryRun(t *testing.T) {
	f := newFixture(t)
	f.writeStrings(t, f.layout.LocalePath("fr"), []record.TextRecord{record.New("s1", "vieux", true)})
	f.writeCSV(t, "french", "english value 1,nouveau\n")
	app := setupTestApp(t, f)

	status, body := post(t, app, "/localized?dry_run=true", `{"mapping":{"french":"fr"}}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["dry_run"])
	assert.Equal(t, []record.TextRecord{record.New("s1", "vieux", true)}, f.readLocale(t, "fr"))
}

func TestHandleImport_BadRequests(t *testing.T) {
	app := setupTestApp(t, newFixture(t))

	tests := []struct {
		name string
		body string
	}{
		{"InvalidJSON", `{"mapping":`},
		{"EmptyMapping", `{"mapping":{}}`},
		{"InvalidLocale", `{"mapping":{"french":"../fr"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, app, "/localized", tt.body)
			assert.Equal(t, 400, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleImport_LocaleFailure(t *testing.T) {
	f := newFixture(t)
	app := setupTestApp(t, f)

	status, body := post(t, app, "/localized", `{"mapping":{"french":"fr"}}`)
	assert.Equal(t, 422, status)
	locales, ok := body["locales"].([]any)
	require.True(t, ok)
	require.Len(t, locales, 1)
	assert.NotEmpty(t, locales[0].(map[string]any)["error"])
}
