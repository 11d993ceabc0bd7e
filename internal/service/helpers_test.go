package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/logger"
	"github.com/MKhiriev/go-virtual-cards/internal/mock"
	"github.com/MKhiriev/go-virtual-cards/internal/validators"
	"github.com/MKhiriev/go-virtual-cards/models"
)

const (
	testKeyID     = "key-1"
	otherKeyID    = "key-2"
	testAlgorithm = crypto.AlgorithmAESCBCPKCS7
)

var (
	testKeysOnce sync.Once
	testKeys     map[string]*rsa.PrivateKey
)

// privateKey возвращает общий для всех тестов RSA-ключ по его id
func privateKey(t *testing.T, keyID string) *rsa.PrivateKey {
	t.Helper()
	testKeysOnce.Do(func() {
		testKeys = map[string]*rsa.PrivateKey{}
		for _, id := range []string{testKeyID, otherKeyID} {
			key, err := rsa.GenerateKey(rand.Reader, 2048)
			if err != nil {
				panic(err)
			}
			testKeys[id] = key
		}
	})
	return testKeys[keyID]
}

func newTestUnsealer(t *testing.T) *crypto.Unsealer {
	t.Helper()
	keys, err := crypto.NewLocalKeyService(crypto.DefaultLocalKeyCapacity)
	require.NoError(t, err)
	keys.AddPrivateKey(testKeyID, privateKey(t, testKeyID))
	keys.AddPrivateKey(otherKeyID, privateKey(t, otherKeyID))
	return crypto.NewUnsealer(keys, nil)
}

// sealWith запечатывает plaintext ключом keyID
func sealWith(t *testing.T, keyID, plaintext string) string {
	t.Helper()
	s, err := crypto.Seal(&privateKey(t, keyID).PublicKey, []byte(plaintext))
	require.NoError(t, err)
	return s
}

func seal(t *testing.T, plaintext string) string {
	t.Helper()
	return sealWith(t, testKeyID, plaintext)
}

func sealPtr(t *testing.T, plaintext string) *string {
	s := seal(t, plaintext)
	return &s
}

// tooShort is valid base64 that decodes to fewer bytes than a key block.
const tooShort = "AAAA"

// notBase64 is not base64 at all.
const notBase64 = "%%%"

func sealedAmount(t *testing.T, currency, amount string) models.SealedCurrencyAmount {
	return models.SealedCurrencyAmount{Currency: seal(t, currency), Amount: seal(t, amount)}
}

func sealedTransaction(t *testing.T, id string) models.SealedTransaction {
	t.Helper()
	return models.SealedTransaction{
		ID:                  id,
		Owner:               "owner-1",
		Version:             1,
		CreatedAtEpochMs:    1700000000000,
		UpdatedAtEpochMs:    1700000001000,
		SortDateEpochMs:     1700000002000,
		Algorithm:           testAlgorithm,
		KeyID:               testKeyID,
		CardID:              "card-1",
		SequenceID:          "seq-1",
		Type:                string(models.TransactionTypeComplete),
		TransactedAtEpochMs: seal(t, "1700000003000"),
		BilledAmount:        sealedAmount(t, "USD", "1250"),
		TransactedAmount:    sealedAmount(t, "USD", "1250"),
		Description:         seal(t, "Coffee"),
		Detail: []models.SealedTransactionDetail{{
			VirtualCardAmount: sealedAmount(t, "USD", "1250"),
			Markup: models.SealedMarkup{
				Percent:   seal(t, "2990"),
				Flat:      seal(t, "31"),
				MinCharge: seal(t, "50"),
			},
			MarkupAmount:        sealedAmount(t, "USD", "68"),
			FundingSourceAmount: sealedAmount(t, "USD", "1318"),
			FundingSourceID:     "fs-1",
			Description:         seal(t, "Visa 4242"),
		}},
	}
}

func sealedCard(t *testing.T, id, holder string) models.SealedCard {
	t.Helper()
	return models.SealedCard{
		ID:               id,
		Owner:            "owner-1",
		Version:          2,
		CreatedAtEpochMs: 1700000000000,
		UpdatedAtEpochMs: 1700000001000,
		Algorithm:        testAlgorithm,
		KeyID:            testKeyID,
		FundingSourceID:  "fs-1",
		Currency:         "USD",
		State:            string(models.CardStateActive),
		ActiveToEpochMs:  1800000000000,
		Last4:            "4242",
		CardHolder:       seal(t, holder),
		Alias:            sealPtr(t, "Groceries"),
		PAN:              seal(t, "4242424242424242"),
		CSC:              seal(t, "123"),
		BillingAddress: &models.SealedBillingAddress{
			AddressLine1: seal(t, "1 Main St"),
			City:         seal(t, "Springfield"),
			State:        seal(t, "IL"),
			PostalCode:   seal(t, "62701"),
			Country:      seal(t, "US"),
		},
		Expiry: models.SealedExpiry{MM: seal(t, "12"), YYYY: seal(t, "2030")},
	}
}

func sealedAttribute(t *testing.T, keyID, plaintext string) *models.SealedAttribute {
	return &models.SealedAttribute{
		KeyID:                   keyID,
		Algorithm:               testAlgorithm,
		PlainTextType:           "string",
		Base64EncodedSealedData: sealWith(t, keyID, plaintext),
	}
}

func bankAccountSource(t *testing.T, id string) models.SealedFundingSource {
	t.Helper()
	return models.SealedFundingSource{
		Typename:         models.TypenameBankAccountFundingSource,
		ID:               id,
		Owner:            "owner-1",
		Version:          1,
		CreatedAtEpochMs: 1700000000000,
		UpdatedAtEpochMs: 1700000000000,
		State:            string(models.FundingSourceStateActive),
		Currency:         "USD",
		Last4:            "6789",
		BankAccountType:  "CHECKING",
		InstitutionName:  sealedAttribute(t, otherKeyID, "First Bank"),
		InstitutionLogo:  sealedAttribute(t, otherKeyID, `{"type":"image/png","data":"iVBORw0"}`),
	}
}

func creditCardSource(id string) models.SealedFundingSource {
	return models.SealedFundingSource{
		Typename:         models.TypenameCreditCardFundingSource,
		ID:               id,
		Owner:            "owner-1",
		Version:          1,
		CreatedAtEpochMs: 1700000000000,
		UpdatedAtEpochMs: 1700000000000,
		State:            string(models.FundingSourceStateActive),
		Currency:         "USD",
		Last4:            "4242",
		Network:          "VISA",
		CardType:         "CREDIT",
	}
}

// respond отдаёт data[root] = v через JSON, как это делает настоящий транспорт
func respond(root string, v any) func(context.Context, adapter.Request, any) error {
	return func(_ context.Context, _ adapter.Request, out any) error {
		body, err := json.Marshal(map[string]any{root: v})
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	}
}

// newTestServices собирает сервисы с мок-транспортом и настоящим Unsealer
func newTestServices(t *testing.T, ctrl *gomock.Controller) (*ClientServices, *mock.MockTransport) {
	t.Helper()
	transport := mock.NewMockTransport(ctrl)
	svc, err := NewClientServices(
		transport,
		newTestUnsealer(t),
		validators.NewInputValidator(),
		config.Pagination{DefaultLimit: config.DefaultPageLimit},
		logger.Nop(),
	)
	require.NoError(t, err)
	return svc, transport
}

func backendError(code string, info map[string]any) *adapter.BackendErrors {
	return &adapter.BackendErrors{
		Operation: "Test",
		Errors:    []adapter.BackendError{{ErrorType: code, Message: "backend says no", ErrorInfo: info}},
	}
}

func requireKind(t *testing.T, err error, family models.ErrorFamily, kind models.ErrorKind) *models.SdkError {
	t.Helper()
	require.Error(t, err)
	sdkErr, ok := err.(*models.SdkError)
	require.True(t, ok, "expected *models.SdkError, got %T: %v", err, err)
	require.Equal(t, kind, sdkErr.Kind, "kind of %v", err)
	require.Equal(t, family, sdkErr.Family)
	return sdkErr
}
