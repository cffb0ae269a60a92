// Package integrationtest provides helpers used in end to end tests of the http server.
package integrationtest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Envelope is the undecoded response body of the ledger API.
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// SetupServer returns test server backed by an empty ledger.
func SetupServer(t *testing.T, config configpkg.Config) *httpserver.Server {
	t.Helper()

	server, err := httpserver.New(ledgerrepo.NewRepoMem(), zerolog.Nop(), config)
	if err != nil {
		t.Fatalf("httpserver.New(ledger, logger, config) returned error: %v", err)
	}

	return server
}

// Do sends a JSON request to server, checks the status code and decodes data into out.
func Do(t *testing.T, server http.Handler, method, url string, body any, wantCode int, out any) Envelope {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, wantCode, recorder.Code, "%s %s: %s", method, url, recorder.Body.String())

	var res Envelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	if out != nil {
		require.NoError(t, json.Unmarshal(res.Data, out))
	}

	return res
}
