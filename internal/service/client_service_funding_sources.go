package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/provider"
	"github.com/MKhiriev/go-virtual-cards/models"
)

type fundingSourceService struct {
	*base
}

func newFundingSourceService(b *base) FundingSourceService {
	return &fundingSourceService{base: b}
}

type clientConfigurationData struct {
	Data string `json:"data"`
}

func (s *fundingSourceService) GetFundingSourceClientConfiguration(ctx context.Context) (*models.FundingSourceClientConfiguration, error) {
	req := adapter.Request{
		OperationName: adapter.OpGetFundingSourceClientConfig,
		Query:         adapter.GetFundingSourceClientConfigurationQuery,
	}
	wire, err := fetch[clientConfigurationData](ctx, s.transport.Query, req, "getFundingSourceClientConfiguration")
	if err != nil {
		return nil, s.errors.classify(models.FamilyFundingSource, opDefault, err)
	}
	if wire == nil {
		return nil, nil
	}

	cfg, err := provider.DecodeClientConfiguration(wire.Data)
	if err != nil {
		return nil, s.errors.classify(models.FamilyFundingSource, opDefault, err)
	}
	return &cfg, nil
}

func (s *fundingSourceService) SetupFundingSource(ctx context.Context, in models.SetupFundingSourceInput) (*models.ProvisionalFundingSource, error) {
	if err := s.validate(ctx, models.FamilyFundingSource, in); err != nil {
		return nil, err
	}
	vars, err := inputVariables(in)
	if err != nil {
		return nil, invalidArgument(models.FamilyFundingSource, err)
	}

	req := adapter.Request{
		OperationName: adapter.OpSetupFundingSource,
		Query:         adapter.SetupFundingSourceMutation,
		Variables:     map[string]any{"input": vars},
	}
	return mutateRecord(ctx, s.base, models.FamilyFundingSource, opDefault, req, "setupFundingSource", projectProvisionalFundingSource)
}

func (s *fundingSourceService) CompleteFundingSource(ctx context.Context, in models.CompleteFundingSourceInput) (*models.FundingSource, error) {
	if err := s.validate(ctx, models.FamilyFundingSource, in); err != nil {
		return nil, err
	}
	completion, err := provider.EncodeCompletion(in.CompletionData)
	if err != nil {
		return nil, invalidArgument(models.FamilyFundingSource, err)
	}
	vars, err := inputVariables(in)
	if err != nil {
		return nil, invalidArgument(models.FamilyFundingSource, err)
	}
	vars["completionData"] = completion

	req := adapter.Request{
		OperationName: adapter.OpCompleteFundingSource,
		Query:         adapter.CompleteFundingSourceMutation,
		Variables:     map[string]any{"input": vars},
	}
	return mutateRecord(ctx, s.base, models.FamilyFundingSource, opDefault, req, "completeFundingSource", projectFundingSource)
}

func (s *fundingSourceService) RefreshFundingSource(ctx context.Context, in models.RefreshFundingSourceInput) (*models.FundingSource, error) {
	if err := s.validate(ctx, models.FamilyFundingSource, in); err != nil {
		return nil, err
	}
	refresh, err := provider.EncodeRefresh(in.RefreshData)
	if err != nil {
		return nil, invalidArgument(models.FamilyFundingSource, err)
	}
	vars, err := inputVariables(in)
	if err != nil {
		return nil, invalidArgument(models.FamilyFundingSource, err)
	}
	vars["refreshData"] = refresh

	req := adapter.Request{
		OperationName: adapter.OpRefreshFundingSource,
		Query:         adapter.RefreshFundingSourceMutation,
		Variables:     map[string]any{"input": vars},
	}
	return mutateRecord(ctx, s.base, models.FamilyFundingSource, opRefresh, req, "refreshFundingSource", projectFundingSource)
}

func (s *fundingSourceService) GetFundingSource(ctx context.Context, id string) (*models.FundingSource, error) {
	if err := s.validate(ctx, models.FamilyFundingSource, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpGetFundingSource,
		Query:         adapter.GetFundingSourceQuery,
		Variables:     map[string]any{"id": id},
	}
	return getRecord(ctx, s.base, models.FamilyFundingSource, req, "getFundingSource", projectFundingSource)
}

func (s *fundingSourceService) ListFundingSources(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.FundingSource], error) {
	if err := s.validate(ctx, models.FamilyFundingSource, opts); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpListFundingSources,
		Query:         adapter.ListFundingSourcesQuery,
		Variables:     s.pageVariables(opts),
	}
	return listRecords(ctx, s.base, models.FamilyFundingSource, req, "listFundingSources", projectFundingSource)
}

func (s *fundingSourceService) CancelFundingSource(ctx context.Context, id string) (*models.FundingSource, error) {
	if err := s.validate(ctx, models.FamilyFundingSource, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpCancelFundingSource,
		Query:         adapter.CancelFundingSourceMutation,
		Variables:     map[string]any{"input": map[string]any{"id": id}},
	}
	return mutateRecord(ctx, s.base, models.FamilyFundingSource, opCancel, req, "cancelFundingSource", projectFundingSource)
}

func (s *fundingSourceService) GetProvisionalFundingSource(ctx context.Context, id string) (*models.ProvisionalFundingSource, error) {
	if err := s.validate(ctx, models.FamilyProvisionalFundingSource, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpGetProvisionalFundingSource,
		Query:         adapter.GetProvisionalFundingSourceQuery,
		Variables:     map[string]any{"id": id},
	}
	return getRecord(ctx, s.base, models.FamilyProvisionalFundingSource, req, "getProvisionalFundingSource", projectProvisionalFundingSource)
}

func (s *fundingSourceService) ListProvisionalFundingSources(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.ProvisionalFundingSource], error) {
	if err := s.validate(ctx, models.FamilyProvisionalFundingSource, opts); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpListProvisionalFundingSources,
		Query:         adapter.ListProvisionalFundingSourcesQuery,
		Variables:     s.pageVariables(opts),
	}
	return listRecords(ctx, s.base, models.FamilyProvisionalFundingSource, req, "listProvisionalFundingSources", projectProvisionalFundingSource)
}

func (s *fundingSourceService) CancelProvisionalFundingSource(ctx context.Context, id string) (*models.ProvisionalFundingSource, error) {
	if err := s.validate(ctx, models.FamilyProvisionalFundingSource, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpCancelProvisionalFundingSource,
		Query:         adapter.CancelProvisionalFundingSourceMutation,
		Variables:     map[string]any{"input": map[string]any{"id": id}},
	}
	return mutateRecord(ctx, s.base, models.FamilyProvisionalFundingSource, opCancel, req, "cancelProvisionalFundingSource", projectProvisionalFundingSource)
}
