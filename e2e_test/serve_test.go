//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/fretwise/cmd"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/view"
	"github.com/stretchr/testify/assert"
)

func createBody(v any) io.Reader {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func do(req *http.Request) (*http.Response, []byte) {
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody
}

func TestDetectE2E(t *testing.T) {
	body := createBody(model.DetectRequest{Notes: []string{"E", "G", "C"}})
	req := httptest.NewRequest(http.MethodPost, "/detect", body)
	w := httptest.NewRecorder()
	cmd.HandleDetect(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var detectResponse model.DetectResponse
	err := json.Unmarshal(respBody, &detectResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("CM/E", detectResponse.Chords[0])
	assert.LessOrEqual(len(detectResponse.Chords), constants.MaxChordResults)
	assert.NotEmpty(detectResponse.Scales)
	assert.LessOrEqual(len(detectResponse.Scales), constants.MaxScaleResults)
}

func TestDetectTooFewNotesE2E(t *testing.T) {
	resp, respBody := do(httptest.NewRequest(http.MethodPost, "/detect", createBody(model.DetectRequest{Notes: []string{"C"}})))
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"chords": [], "scales": []}`, string(respBody))
}

func TestScaleViewE2E(t *testing.T) {
	body := createBody(map[string]any{"view_mode": "scale", "tonic": "D", "mode": "dorian"})
	resp, respBody := do(httptest.NewRequest(http.MethodPost, "/view", body))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	var d view.Display
	assert.NoError(json.Unmarshal(respBody, &d))
	assert.Equal("D Dorian", d.Title)
	assert.Equal([]string{"D", "E", "F", "G", "A", "B", "C"}, d.ActiveNotes)
	assert.Len(d.Circle, 12)
	assert.Len(d.Fretboard, 6*(constants.FretCount+1))
}

func TestEmptyViewBodyUsesDefaultsE2E(t *testing.T) {
	resp, respBody := do(httptest.NewRequest(http.MethodPost, "/view", nil))
	assert.Equal(t, 200, resp.StatusCode)

	var d view.Display
	assert.NoError(t, json.Unmarshal(respBody, &d))
	assert.Equal(t, "C Major", d.Title)
}

func TestInvalidViewE2E(t *testing.T) {
	for name, body := range map[string]map[string]any{
		"tonic":     {"tonic": "H"},
		"view mode": {"view_mode": "diagonal"},
		"inversion": {"inversion": "first"},
	} {
		t.Run(name, func(t *testing.T) {
			resp, respBody := do(httptest.NewRequest(http.MethodPost, "/view", createBody(body)))
			assert.Equal(t, 400, resp.StatusCode)

			var e model.ErrorResponse
			assert.NoError(t, json.Unmarshal(respBody, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestCatalogE2E(t *testing.T) {
	resp, respBody := do(httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Equal(t, 200, resp.StatusCode)

	var c model.Catalog
	assert.NoError(t, json.Unmarshal(respBody, &c))
	assert.Len(t, c.Modes, 11)
	assert.Len(t, c.ChordTypes, 22)
	assert.Len(t, c.Tonics, 12)
	assert.Len(t, c.Instruments, 2)
}

func TestRequestIDAndCORSE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set("X-Request-Id", "abc")
	req.Header.Set("Origin", "http://localhost:5173")
	resp, _ := do(req)

	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWrongMethodE2E(t *testing.T) {
	resp, _ := do(httptest.NewRequest(http.MethodGet, "/view", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestOversizedBodyE2E(t *testing.T) {
	notes := `{"notes": ["` + strings.Repeat("C", constants.MaxRequestBytes) + `"]}`
	for _, path := range []string{"/detect", "/view"} {
		t.Run(path, func(t *testing.T) {
			resp, respBody := do(httptest.NewRequest(http.MethodPost, path, strings.NewReader(notes)))
			assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

			var e model.ErrorResponse
			assert.NoError(t, json.Unmarshal(respBody, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}
