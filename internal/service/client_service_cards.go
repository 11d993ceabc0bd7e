package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/models"
)

type cardService struct {
	*base
}

func newCardService(b *base) CardService {
	return &cardService{base: b}
}

func (s *cardService) ProvisionVirtualCard(ctx context.Context, in models.ProvisionVirtualCardInput) (*models.ProvisionalCard, error) {
	if err := s.validate(ctx, models.FamilyCard, in); err != nil {
		return nil, err
	}
	vars, err := inputVariables(in)
	if err != nil {
		return nil, invalidArgument(models.FamilyCard, err)
	}

	req := adapter.Request{
		OperationName: adapter.OpProvisionVirtualCard,
		Query:         adapter.ProvisionVirtualCardMutation,
		Variables:     map[string]any{"input": vars},
	}
	return mutateRecord(ctx, s.base, models.FamilyCard, opDefault, req, "cardProvision", projectProvisionalCard)
}

func (s *cardService) GetProvisionalCard(ctx context.Context, id string) (*models.ProvisionalCard, error) {
	if err := s.validate(ctx, models.FamilyCard, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpGetProvisionalCard,
		Query:         adapter.GetProvisionalCardQuery,
		Variables:     map[string]any{"id": id},
	}
	return getRecord(ctx, s.base, models.FamilyCard, req, "getProvisionalCard", projectProvisionalCard)
}

func (s *cardService) ListProvisionalCards(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.ProvisionalCard], error) {
	if err := s.validate(ctx, models.FamilyCard, opts); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpListProvisionalCards,
		Query:         adapter.ListProvisionalCardsQuery,
		Variables:     s.pageVariables(opts),
	}
	return listRecords(ctx, s.base, models.FamilyCard, req, "listProvisionalCards", projectProvisionalCard)
}

func (s *cardService) GetVirtualCard(ctx context.Context, id string) (*models.Card, error) {
	if err := s.validate(ctx, models.FamilyCard, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpGetCard,
		Query:         adapter.GetCardQuery,
		Variables:     map[string]any{"id": id},
	}
	return getRecord(ctx, s.base, models.FamilyCard, req, "getCard", projectCard)
}

func (s *cardService) ListVirtualCards(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.Card], error) {
	if err := s.validate(ctx, models.FamilyCard, opts); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpListCards,
		Query:         adapter.ListCardsQuery,
		Variables:     s.pageVariables(opts),
	}
	return listRecords(ctx, s.base, models.FamilyCard, req, "listCards", projectCard)
}

func (s *cardService) UpdateVirtualCard(ctx context.Context, in models.UpdateVirtualCardInput) (*models.SingleResult[models.Card], error) {
	if err := s.validate(ctx, models.FamilyCard, in); err != nil {
		return nil, err
	}
	vars, err := inputVariables(in)
	if err != nil {
		return nil, invalidArgument(models.FamilyCard, err)
	}

	req := adapter.Request{
		OperationName: adapter.OpUpdateVirtualCard,
		Query:         adapter.UpdateVirtualCardMutation,
		Variables:     map[string]any{"input": vars},
	}
	return mutateSingle(ctx, s.base, models.FamilyCard, opDefault, req, "updateCard", projectCard)
}

func (s *cardService) CancelVirtualCard(ctx context.Context, id string) (*models.SingleResult[models.Card], error) {
	if err := s.validate(ctx, models.FamilyCard, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpCancelVirtualCard,
		Query:         adapter.CancelVirtualCardMutation,
		Variables:     map[string]any{"input": map[string]any{"id": id}},
	}
	return mutateSingle(ctx, s.base, models.FamilyCard, opCancel, req, "cancelCard", projectCard)
}
