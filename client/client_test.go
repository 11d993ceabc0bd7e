package client

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/mock"
	"github.com/MKhiriev/go-virtual-cards/models"
)

const keyID = "device-key"

type fixture struct {
	keys *LocalKeyService
	pub  *rsa.PublicKey
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keys, err := NewLocalKeyService(0)
	require.NoError(t, err)
	keys.AddPrivateKey(keyID, priv)
	return fixture{keys: keys, pub: &priv.PublicKey}
}

func (f fixture) seal(t *testing.T, plaintext string) string {
	t.Helper()
	s, err := crypto.Seal(f.pub, []byte(plaintext))
	require.NoError(t, err)
	return s
}

func (f fixture) card(t *testing.T, id, holder, algorithm string) models.SealedCard {
	return models.SealedCard{
		ID:         id,
		Owner:      "owner-1",
		Version:    1,
		Algorithm:  algorithm,
		KeyID:      keyID,
		Currency:   "USD",
		State:      string(models.CardStateActive),
		Last4:      "4242",
		CardHolder: f.seal(t, holder),
		PAN:        f.seal(t, "4242424242424242"),
		CSC:        f.seal(t, "123"),
		Expiry:     models.SealedExpiry{MM: f.seal(t, "01"), YYYY: f.seal(t, "2031")},
	}
}

// graphQLBackend отвечает на каждую операцию заранее заданными данными
func graphQLBackend(t *testing.T, data map[string]any, seen func(r *http.Request, operation string, vars map[string]any)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		if seen != nil {
			seen(r, payload.OperationName, payload.Variables)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(endpoint string) *Config {
	cfg := DefaultConfig()
	cfg.Adapter.GraphQLEndpoint = endpoint
	return cfg
}

// ── constructors ──

func TestNew_RequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)

	_, err := New(nil, f.keys, WithoutLogging())
	assert.ErrorIs(t, err, ErrNoTransport)

	_, err = New(mock.NewMockTransport(ctrl), nil, WithoutLogging())
	assert.ErrorIs(t, err, ErrNoKeyService)

	_, err = New(mock.NewMockTransport(ctrl), f.keys, WithoutLogging(), WithPageLimit(config.MaxPageLimit+1))
	assert.ErrorIs(t, err, config.ErrInvalidPaginationConfigs)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := NewFromConfig(nil, nil, f.keys)
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = NewFromConfig(DefaultConfig(), nil, f.keys, WithoutLogging())
	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)

	_, err = NewFromConfig(testConfig("https://api.example/graphql"), nil, nil)
	assert.ErrorIs(t, err, ErrNoKeyService)
}

func TestWithConfig_DoesNotMutateCaller(t *testing.T) {
	cfg := testConfig("https://api.example/graphql")
	cfg.Crypto.Algorithms = map[string]int{"A": 128}

	o := collect(config.Default(), []Option{WithConfig(cfg), WithKeyBlockSize("B", 512), WithPageLimit(7), WithoutLogging()})
	assert.Equal(t, map[string]int{"A": 128, "B": 512}, o.cfg.Crypto.Algorithms)
	assert.Equal(t, 7, o.cfg.Pagination.DefaultLimit)

	assert.Equal(t, map[string]int{"A": 128}, cfg.Crypto.Algorithms)
	assert.Equal(t, config.DefaultPageLimit, cfg.Pagination.DefaultLimit)
}

// ── end to end ──

func TestClient_OverGraphQL(t *testing.T) {
	f := newFixture(t)

	broken := f.card(t, "card-2", "Broken", crypto.AlgorithmAESCBCPKCS7)
	broken.CSC = "AAAA"
	token := "page-2"

	var authHeaders, requestIDs []string
	srv := graphQLBackend(t, map[string]any{
		"listCards": models.Page[models.SealedCard]{
			Items:     []models.SealedCard{f.card(t, "card-1", "Jane Doe", crypto.AlgorithmAESCBCPKCS7), broken},
			NextToken: &token,
		},
	}, func(r *http.Request, operation string, vars map[string]any) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		requestIDs = append(requestIDs, r.Header.Get(adapter.HeaderRequestID))
		assert.Equal(t, adapter.OpListCards, operation)
		assert.Equal(t, float64(config.DefaultPageLimit), vars["limit"])
	})

	c, err := NewFromConfig(testConfig(srv.URL+"/graphql"), StaticToken("opaque-token"), f.keys, WithoutLogging())
	require.NoError(t, err)

	result, err := c.ListVirtualCards(WithRequestID(context.Background(), "checkout-42"), models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPartial, result.Status)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Jane Doe", result.Items[0].CardHolder)
	assert.Equal(t, "4242424242424242", result.Items[0].PAN)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "Broken", result.Failed[0].Partial.CardHolder)
	assert.ErrorIs(t, result.Failed[0].Cause, crypto.ErrSealedDataTooShort)
	assert.Equal(t, &token, result.NextToken)

	assert.Equal(t, []string{"Bearer opaque-token"}, authHeaders)
	assert.Equal(t, []string{"checkout-42"}, requestIDs)
}

func TestClient_CancelledContext(t *testing.T) {
	f := newFixture(t)
	srv := graphQLBackend(t, map[string]any{"getCard": nil}, func(*http.Request, string, map[string]any) {
		t.Error("backend must not be reached")
	})

	c, err := NewFromConfig(testConfig(srv.URL+"/graphql"), nil, f.keys, WithoutLogging())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.GetVirtualCard(ctx, "card-1")
	assert.Equal(t, context.Canceled, err)
}

func TestNewFromEnv(t *testing.T) {
	f := newFixture(t)
	srv := graphQLBackend(t, map[string]any{"getCard": f.card(t, "card-1", "Env User", crypto.AlgorithmAESCBCPKCS7)}, nil)

	t.Setenv("VCARDS_ADAPTER_GRAPHQL_ENDPOINT", srv.URL+"/graphql")
	t.Setenv("VCARDS_DOTENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("VCARDS_LOG_LEVEL", "error")

	c, err := NewFromEnv(nil, f.keys, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	card, err := c.GetVirtualCard(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Env User", card.CardHolder)
}

// ── injected transport ──

func TestNew_InjectedTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	transport := mock.NewMockTransport(ctrl)

	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req Request, out any) error {
			assert.Equal(t, 25, req.Variables["limit"])
			body, err := json.Marshal(map[string]any{"listFundingSources": models.Page[models.SealedFundingSource]{}})
			require.NoError(t, err)
			return json.Unmarshal(body, out)
		})

	c, err := New(transport, f.keys, WithPageLimit(25), WithoutLogging())
	require.NoError(t, err)

	result, err := c.ListFundingSources(context.Background(), models.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, result.Status)
	assert.Empty(t, result.Items)
}

func TestWithKeyBlockSize(t *testing.T) {
	const algorithm = "AES/CBC/PKCS5Padding"
	f := newFixture(t)
	wire := f.card(t, "card-1", "Jane Doe", algorithm)

	respond := func(_ context.Context, _ Request, out any) error {
		body, err := json.Marshal(map[string]any{"getCard": wire})
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	}

	t.Run("unknown algorithm fails to unseal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transport := mock.NewMockTransport(ctrl)
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(respond)

		c, err := New(transport, f.keys, WithoutLogging())
		require.NoError(t, err)
		_, err = c.GetVirtualCard(context.Background(), "card-1")
		assert.True(t, models.HasKind(err, models.KindUnsealing))
		assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
	})

	t.Run("registered algorithm unseals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transport := mock.NewMockTransport(ctrl)
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(respond)

		c, err := New(transport, f.keys, WithKeyBlockSize(algorithm, crypto.DefaultKeyBlockSize), WithoutLogging())
		require.NoError(t, err)
		card, err := c.GetVirtualCard(context.Background(), "card-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", card.CardHolder)
	})
}
