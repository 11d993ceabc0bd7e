package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/app"
	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/mock"
	"github.com/MKhiriev/go-virtual-cards/internal/validators"
	"github.com/MKhiriev/go-virtual-cards/models"
)

func decodePayload(t *testing.T, raw any) map[string]any {
	t.Helper()
	s, ok := raw.(string)
	require.True(t, ok, "payload is %T", raw)
	body, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ── client configuration ──

func TestFundingSourceService_GetClientConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	data := encodePayload(t, map[string]any{"fundingSourceTypes": []map[string]any{
		{"type": "stripe", "version": 1, "apiKey": "pk_test"},
		{"type": "checkout", "version": 1, "apiKey": "pk_co"},
	}})

	var req adapter.Request
	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(capture(&req, respond("getFundingSourceClientConfiguration", map[string]any{"data": data})))

	cfg, err := svc.FundingSourceService.GetFundingSourceClientConfiguration(context.Background())
	require.NoError(t, err)
	require.Len(t, cfg.FundingSourceTypes, 2)
	assert.Equal(t, models.FundingSourceTypeConfig{Type: "stripe", Version: 1, APIKey: "pk_test"}, cfg.FundingSourceTypes[0])
	assert.Equal(t, adapter.OpGetFundingSourceClientConfig, req.OperationName)
	assert.Empty(t, req.Variables)
}

func TestFundingSourceService_GetClientConfiguration_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)
	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond("getFundingSourceClientConfiguration", map[string]any{"data": notBase64}))

	_, err := svc.FundingSourceService.GetFundingSourceClientConfiguration(context.Background())
	requireKind(t, err, models.FamilyFundingSource, models.KindUnknown)
}

// ── setup / complete / refresh ──

func TestFundingSourceService_SetupFundingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	setup := encodePayload(t, map[string]any{
		"provider":  "checkout",
		"type":      "BANK_ACCOUNT",
		"version":   1,
		"linkToken": "link-1",
	})

	var req adapter.Request
	transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(capture(&req, respond("setupFundingSource", models.WireProvisionalFundingSource{
			ID:               "pfs-1",
			Type:             string(models.FundingSourceTypeBankAccount),
			State:            string(models.ProvisionalFundingSourceStatePending),
			ProvisioningData: setup,
		})))

	got, err := svc.FundingSourceService.SetupFundingSource(context.Background(), models.SetupFundingSourceInput{
		Type:               models.FundingSourceTypeBankAccount,
		Currency:           "USD",
		SupportedProviders: []string{"checkout"},
		ApplicationName:    "webapp",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProvisionalFundingSourceStatePending, got.State)
	assert.Equal(t, models.CheckoutBankAccountSetupData{LinkToken: "link-1"}, got.ProvisioningData)

	input := req.Variables["input"].(map[string]any)
	assert.Equal(t, "BANK_ACCOUNT", input["type"])
	assert.Equal(t, []any{"checkout"}, input["supportedProviders"])
	assert.Equal(t, "webapp", input["applicationName"])
}

func TestFundingSourceService_SetupFundingSource_Failures(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestServices(t, ctrl)
		_, err := svc.FundingSourceService.SetupFundingSource(context.Background(), models.SetupFundingSourceInput{
			Type: "CASH", Currency: "USD",
		})
		requireKind(t, err, models.FamilyFundingSource, models.KindInvalidArgument)
		assert.ErrorIs(t, err, validators.ErrInvalidFundingSourceType)
	})

	t.Run("undecodable provisioning data is raised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, transport := newTestServices(t, ctrl)
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respond("setupFundingSource", models.WireProvisionalFundingSource{ID: "pfs-1", ProvisioningData: notBase64}))

		_, err := svc.FundingSourceService.SetupFundingSource(context.Background(), models.SetupFundingSourceInput{
			Type: models.FundingSourceTypeCreditCard, Currency: "USD",
		})
		requireKind(t, err, models.FamilyFundingSource, models.KindUnknown)
	})

	t.Run("setup failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, transport := newTestServices(t, ctrl)
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backendError("sudoplatform.virtual-cards.SetupFailedError", nil))

		_, err := svc.FundingSourceService.SetupFundingSource(context.Background(), models.SetupFundingSourceInput{
			Type: models.FundingSourceTypeCreditCard, Currency: "USD",
		})
		requireKind(t, err, models.FamilyFundingSource, models.KindSetupFailed)
	})
}

func TestFundingSourceService_CompleteFundingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	var req adapter.Request
	transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(capture(&req, respond("completeFundingSource", creditCardSource("fs-1"))))

	update := true
	fs, err := svc.FundingSourceService.CompleteFundingSource(context.Background(), models.CompleteFundingSourceInput{
		ID:                      "pfs-1",
		CompletionData:          models.StripeCardCompletionData{PaymentMethod: "pm_1"},
		UpdateCardFundingSource: &update,
	})
	require.NoError(t, err)
	assert.Equal(t, "fs-1", fs.ID)
	assert.Equal(t, models.FundingSourceTypeCreditCard, fs.Type)

	input := req.Variables["input"].(map[string]any)
	assert.Equal(t, "pfs-1", input["id"])
	assert.Equal(t, true, input["updateCardFundingSource"])
	assert.Equal(t, map[string]any{
		"provider":      "stripe",
		"type":          "CREDIT_CARD",
		"version":       float64(1),
		"paymentMethod": "pm_1",
	}, decodePayload(t, input["completionData"]))
}

func TestFundingSourceService_CompleteFundingSource_Failures(t *testing.T) {
	t.Run("no completion data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestServices(t, ctrl)
		_, err := svc.FundingSourceService.CompleteFundingSource(context.Background(), models.CompleteFundingSourceInput{ID: "pfs-1"})
		requireKind(t, err, models.FamilyFundingSource, models.KindInvalidArgument)
		assert.ErrorIs(t, err, validators.ErrNoCompletionData)
	})

	tests := []struct {
		code string
		want models.ErrorKind
	}{
		{"sudoplatform.virtual-cards.FundingSourceCompletionDataInvalidError", models.KindCompletionDataInvalid},
		{"sudoplatform.virtual-cards.ProvisionalFundingSourceNotFoundError", models.KindProvisionalFundingSourceNotFound},
		{"sudoplatform.virtual-cards.UnacceptableFundingSourceError", models.KindUnacceptableFundingSource},
		{"sudoplatform.virtual-cards.DuplicateFundingSourceError", models.KindDuplicateFundingSource},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, transport := newTestServices(t, ctrl)
			transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).Return(backendError(tt.code, nil))

			_, err := svc.FundingSourceService.CompleteFundingSource(context.Background(), models.CompleteFundingSourceInput{
				ID:             "pfs-1",
				CompletionData: models.CheckoutCardCompletionData{PaymentToken: "tok_1"},
			})
			requireKind(t, err, models.FamilyFundingSource, tt.want)
		})
	}
}

func TestFundingSourceService_CompleteFundingSource_RequiresUserInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	interaction := encodePayload(t, map[string]any{
		"provider":    "checkout",
		"type":        "CREDIT_CARD",
		"version":     1,
		"redirectUrl": "https://3ds.example/redirect",
		"successUrl":  "https://app.example/ok",
		"failureUrl":  "https://app.example/fail",
	})
	transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(backendError("sudoplatform.virtual-cards.FundingSourceRequiresUserInteractionError",
			map[string]any{app.InfoProvisioningData: interaction}))

	_, err := svc.FundingSourceService.CompleteFundingSource(context.Background(), models.CompleteFundingSourceInput{
		ID:             "pfs-1",
		CompletionData: models.CheckoutCardCompletionData{PaymentToken: "tok_1"},
	})
	sdkErr := requireKind(t, err, models.FamilyFundingSource, models.KindRequiresUserInteraction)
	assert.Equal(t, models.CheckoutCardInteractionData{
		RedirectURL: "https://3ds.example/redirect",
		SuccessURL:  "https://app.example/ok",
		FailureURL:  "https://app.example/fail",
	}, sdkErr.Interaction)
}

func TestFundingSourceService_RefreshFundingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	var req adapter.Request
	transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(capture(&req, respond("refreshFundingSource", bankAccountSource(t, "fs-2"))))

	account := "acc-1"
	language := "en-US"
	fs, err := svc.FundingSourceService.RefreshFundingSource(context.Background(), models.RefreshFundingSourceInput{
		ID:          "fs-2",
		RefreshData: models.CheckoutBankAccountRefreshData{AccountID: &account},
		Language:    &language,
	})
	require.NoError(t, err)
	assert.Equal(t, "First Bank", fs.InstitutionName)

	input := req.Variables["input"].(map[string]any)
	assert.Equal(t, "en-US", input["language"])
	payload := decodePayload(t, input["refreshData"])
	assert.Equal(t, "checkout", payload["provider"])
	assert.Equal(t, "BANK_ACCOUNT", payload["type"])
	assert.Equal(t, "acc-1", payload["accountId"])
}

func TestFundingSourceService_RefreshFundingSource_Failures(t *testing.T) {
	refresh := models.RefreshFundingSourceInput{ID: "fs-2", RefreshData: models.CheckoutBankAccountRefreshData{}}

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, transport := newTestServices(t, ctrl)
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(transportFailure(http.StatusInternalServerError, goerrors.CategoryExternal))

		_, err := svc.FundingSourceService.RefreshFundingSource(context.Background(), refresh)
		requireKind(t, err, models.FamilyFundingSource, models.KindRefreshFailed)
		assert.ErrorIs(t, err, models.ErrFundingSourceRefreshFailed)
	})

	t.Run("relink required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, transport := newTestServices(t, ctrl)
		interaction := encodePayload(t, map[string]any{
			"provider":          "checkout",
			"type":              "BANK_ACCOUNT",
			"version":           1,
			"linkToken":         "link-2",
			"authorizationText": []map[string]any{{"language": "en-US", "content": "ok"}},
		})
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backendError(app.CodeFundingSourceRequiresUserInteraction, map[string]any{
				app.InfoInteractionData: interaction,
				app.InfoProvider:        "checkoutBankAccount",
			}))

		_, err := svc.FundingSourceService.RefreshFundingSource(context.Background(), refresh)
		sdkErr := requireKind(t, err, models.FamilyFundingSource, models.KindRequiresUserInteraction)
		data := sdkErr.Interaction.(models.CheckoutBankAccountInteractionData)
		assert.Equal(t, "link-2", data.LinkToken)
		require.Len(t, data.AuthorizationText, 1)
		assert.Equal(t, "ok", data.AuthorizationText[0].Content)
	})
}

// ── get / list / cancel ──

func TestFundingSourceService_ListFundingSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	broken := bankAccountSource(t, "fs-3")
	broken.InstitutionLogo.Base64EncodedSealedData = tooShort

	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond("listFundingSources", models.Page[models.SealedFundingSource]{
			Items: []models.SealedFundingSource{creditCardSource("fs-1"), bankAccountSource(t, "fs-2"), broken},
		}))

	result, err := svc.FundingSourceService.ListFundingSources(context.Background(), models.ListOptions{})
	require.NoError(t, err)
	assert.True(t, result.IsPartial())
	require.Len(t, result.Items, 2)
	assert.Equal(t, models.FundingSourceTypeCreditCard, result.Items[0].Type)
	assert.Equal(t, models.FundingSourceTypeBankAccount, result.Items[1].Type)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "First Bank", result.Failed[0].Partial.InstitutionName)
	assert.Nil(t, result.Failed[0].Partial.InstitutionLogo)
}

func TestFundingSourceService_ListFundingSources_UnknownTypename(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	odd := creditCardSource("fs-9")
	odd.Typename = "CryptoWalletFundingSource"
	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond("listFundingSources", models.Page[models.SealedFundingSource]{
			Items: []models.SealedFundingSource{creditCardSource("fs-1"), odd},
		}))

	// незнакомый тип не скрывает остальные записи страницы
	result, err := svc.FundingSourceService.ListFundingSources(context.Background(), models.ListOptions{})
	require.NoError(t, err)
	assert.True(t, result.IsPartial())
	require.Len(t, result.Items, 1)
	assert.Equal(t, "fs-1", result.Items[0].ID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "fs-9", result.Failed[0].Partial.ID)
	assert.ErrorIs(t, result.Failed[0].Cause, ErrUnknownFundingSourceType)
}

func TestFundingSourceService_GetFundingSource_UnknownTypename(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	odd := creditCardSource("fs-9")
	odd.Typename = "CryptoWalletFundingSource"
	transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(respond("getFundingSource", odd))

	fs, err := svc.FundingSourceService.GetFundingSource(context.Background(), "fs-9")
	assert.Nil(t, fs)
	requireKind(t, err, models.FamilyFundingSource, models.KindUnknown)
	assert.ErrorIs(t, err, ErrUnknownFundingSourceType)
}

func TestFundingSourceService_GetFundingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	gomock.InOrder(
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respond("getFundingSource", bankAccountSource(t, "fs-2"))),
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respond("getFundingSource", nil)),
	)

	fs, err := svc.FundingSourceService.GetFundingSource(context.Background(), "fs-2")
	require.NoError(t, err)
	assert.Equal(t, "First Bank", fs.InstitutionName)

	fs, err = svc.FundingSourceService.GetFundingSource(context.Background(), "fs-404")
	assert.NoError(t, err)
	assert.Nil(t, fs)
}

func TestFundingSourceService_CancelFundingSource(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.ErrorKind
	}{
		{"forbidden", transportFailure(http.StatusForbidden, goerrors.CategoryAuthz), models.KindCancelFailed},
		{"not found", backendError(app.CodeFundingSourceNotFound, nil), models.KindNotFound},
		{"wrong state", backendError(app.CodeFundingSourceState, nil), models.KindStateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, transport := newTestServices(t, ctrl)
			transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.err)

			_, err := svc.FundingSourceService.CancelFundingSource(context.Background(), "fs-1")
			requireKind(t, err, models.FamilyFundingSource, tt.want)
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, transport := newTestServices(t, ctrl)
		w := creditCardSource("fs-1")
		w.State = string(models.FundingSourceStateInactive)
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(respond("cancelFundingSource", w))

		fs, err := svc.FundingSourceService.CancelFundingSource(context.Background(), "fs-1")
		require.NoError(t, err)
		assert.Equal(t, models.FundingSourceStateInactive, fs.State)
	})
}

// ── provisional funding sources ──

func TestFundingSourceService_ProvisionalFundingSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)

	good := models.WireProvisionalFundingSource{
		ID:    "pfs-1",
		Type:  string(models.FundingSourceTypeCreditCard),
		State: string(models.ProvisionalFundingSourceStateProvisioning),
		ProvisioningData: encodePayload(t, map[string]any{
			"provider": "stripe", "type": "CREDIT_CARD", "version": 1,
			"clientSecret": "cs", "intent": "seti",
		}),
	}
	bad := models.WireProvisionalFundingSource{ID: "pfs-2", ProvisioningData: notBase64}

	var listReq adapter.Request
	gomock.InOrder(
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respond("getProvisionalFundingSource", good)),
		transport.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(capture(&listReq, respond("listProvisionalFundingSources", models.Page[models.WireProvisionalFundingSource]{
				Items: []models.WireProvisionalFundingSource{good, bad},
			}))),
		transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backendError("sudoplatform.virtual-cards.ProvisionalFundingSourceNotFoundError", nil)),
	)

	got, err := svc.FundingSourceService.GetProvisionalFundingSource(context.Background(), "pfs-1")
	require.NoError(t, err)
	assert.Equal(t, models.StripeCardSetupData{ClientSecret: "cs", Intent: "seti"}, got.ProvisioningData)

	list, err := svc.FundingSourceService.ListProvisionalFundingSources(context.Background(), models.ListOptions{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, adapter.OpListProvisionalFundingSources, listReq.OperationName)
	assert.Equal(t, 5, listReq.Variables["limit"])
	assert.True(t, list.IsPartial())
	require.Len(t, list.Items, 1)
	require.Len(t, list.Failed, 1)
	assert.Equal(t, "pfs-2", list.Failed[0].Partial.ID)

	_, err = svc.FundingSourceService.CancelProvisionalFundingSource(context.Background(), "pfs-3")
	requireKind(t, err, models.FamilyProvisionalFundingSource, models.KindProvisionalFundingSourceNotFound)
	assert.ErrorIs(t, err, models.ErrProvisionalFundingSourceNotFound)
}

func TestFundingSourceService_CancelProvisionalFundingSource_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, transport := newTestServices(t, ctrl)
	transport.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(transportFailure(http.StatusForbidden, goerrors.CategoryAuthz))

	_, err := svc.FundingSourceService.CancelProvisionalFundingSource(context.Background(), "pfs-1")
	requireKind(t, err, models.FamilyProvisionalFundingSource, models.KindCancelFailed)
}

func TestNewClientServices_RequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewClientServices(nil, newTestUnsealer(t), nil, config.Pagination{}, nil)
	assert.ErrorIs(t, err, ErrNoTransport)

	_, err = NewClientServices(mock.NewMockTransport(ctrl), nil, nil, config.Pagination{}, nil)
	assert.ErrorIs(t, err, ErrNoKeyService)

	// нулевой лимит заменяется значением по умолчанию
	svc, err := NewClientServices(mock.NewMockTransport(ctrl), newTestUnsealer(t), nil, config.Pagination{}, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPageLimit, svc.CardService.(*cardService).limit)
}
