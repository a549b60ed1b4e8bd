package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"token123","token_type":"bearer","expires_in":3600}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTPClientSetsBearer(t *testing.T) {
	tokens := tokenServer(t)
	var got string
	sheet := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("ok"))
	}))
	defer sheet.Close()

	conf := Conf{ClientID: "id", ClientSecret: "secret", AuthURL: tokens.URL}
	client := NewHTTPClient(context.Background(), conf, &http.Client{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(sheet.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "Bearer token123", got)
}

func TestNewHTTPClientDisabled(t *testing.T) {
	base := &http.Client{}
	assert.Same(t, base, NewHTTPClient(context.Background(), Conf{}, base))
	assert.Same(t, http.DefaultClient, NewHTTPClient(context.Background(), Conf{}, nil))
}

func TestToken(t *testing.T) {
	tokens := tokenServer(t)
	tok, err := Token(context.Background(), Conf{ClientID: "id", ClientSecret: "s", AuthURL: tokens.URL}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "token123", tok.AccessToken)
	assert.True(t, tok.Valid())
}
