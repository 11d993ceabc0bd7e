package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/logger"
	"github.com/MKhiriev/go-virtual-cards/internal/validators"
	"github.com/MKhiriev/go-virtual-cards/models"
)

type ClientServices struct {
	CardService          CardService
	TransactionService   TransactionService
	FundingSourceService FundingSourceService
}

func NewClientServices(
	transport adapter.Transport,
	unsealer *crypto.Unsealer,
	validator validators.Validator,
	pagination config.Pagination,
	log *logger.Logger,
) (*ClientServices, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	if unsealer == nil {
		return nil, ErrNoKeyService
	}
	if validator == nil {
		validator = validators.NewInputValidator()
	}
	if log == nil {
		log = logger.Nop()
	}
	limit := pagination.DefaultLimit
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}

	b := &base{
		transport: transport,
		unsealer:  unsealer,
		validator: validator,
		errors:    newErrorClassifier(log),
		limit:     limit,
		logger:    log,
	}

	return &ClientServices{
		CardService:          newCardService(b),
		TransactionService:   newTransactionService(b),
		FundingSourceService: newFundingSourceService(b),
	}, nil
}

// base carries what every operation needs: validate, call, project,
// classify.
type base struct {
	transport adapter.Transport
	unsealer  *crypto.Unsealer
	validator validators.Validator
	errors    *errorClassifier
	limit     int
	logger    *logger.Logger
}

func (b *base) validate(ctx context.Context, family models.ErrorFamily, obj any, fields ...string) error {
	if err := b.validator.Validate(ctx, obj, fields...); err != nil {
		return invalidArgument(family, err)
	}
	return nil
}

// pageVariables returns the limit and nextToken variables of a list call.
func (b *base) pageVariables(opts models.ListOptions) map[string]any {
	limit := opts.Limit
	if limit == 0 {
		limit = b.limit
	}
	vars := map[string]any{"limit": limit}
	if opts.NextToken != nil {
		vars["nextToken"] = *opts.NextToken
	}
	return vars
}

func (b *base) logPartial(operation string, failed int, cause error) {
	b.logger.Debug().
		Str("operation", operation).
		Int("failed", failed).
		AnErr("first_cause", cause).
		Msg("partial result")
}

type call func(ctx context.Context, req adapter.Request, out any) error

// fetch executes req and returns the record under the data root. A null
// root yields nil.
func fetch[W any](ctx context.Context, do call, req adapter.Request, root string) (*W, error) {
	var data map[string]*W
	if err := do(ctx, req, &data); err != nil {
		return nil, err
	}
	return data[root], nil
}

// getRecord runs a single-record query. An unsealing failure is raised, as
// a Get has no partial representation.
func getRecord[W, T any](
	ctx context.Context,
	b *base,
	family models.ErrorFamily,
	req adapter.Request,
	root string,
	project projectFunc[W, T],
) (*T, error) {
	wire, err := fetch[W](ctx, b.transport.Query, req, root)
	if err != nil {
		return nil, b.errors.classify(family, opDefault, err)
	}
	return raiseFailed(ctx, b, family, wire, project)
}

// mutateRecord runs a mutation returning one record. Like getRecord, an
// unsealing failure is raised. A mutation that returns no record is
// classified as unknown.
func mutateRecord[W, T any](
	ctx context.Context,
	b *base,
	family models.ErrorFamily,
	op operation,
	req adapter.Request,
	root string,
	project projectFunc[W, T],
) (*T, error) {
	wire, err := fetch[W](ctx, b.transport.Mutate, req, root)
	if err != nil {
		return nil, b.errors.classify(family, op, err)
	}
	if wire == nil {
		return nil, b.errors.classify(family, op, fmt.Errorf("%s: %w", req.OperationName, adapter.ErrNoResponse))
	}
	return raiseFailed(ctx, b, family, wire, project)
}

func raiseFailed[W, T any](ctx context.Context, b *base, family models.ErrorFamily, wire *W, project projectFunc[W, T]) (*T, error) {
	record, failed, err := projectOne(ctx, b.unsealer, wire, project)
	if err != nil {
		return nil, b.errors.classify(family, opDefault, err)
	}
	if failed != nil {
		return nil, b.errors.classify(family, opDefault, failed.Cause)
	}
	return record, nil
}

// mutateSingle runs a mutation whose record may come back partially
// unsealed.
func mutateSingle[W, T any](
	ctx context.Context,
	b *base,
	family models.ErrorFamily,
	op operation,
	req adapter.Request,
	root string,
	project projectFunc[W, T],
) (*models.SingleResult[T], error) {
	wire, err := fetch[W](ctx, b.transport.Mutate, req, root)
	if err != nil {
		return nil, b.errors.classify(family, op, err)
	}
	if wire == nil {
		return nil, b.errors.classify(family, op, fmt.Errorf("%s: %w", req.OperationName, adapter.ErrNoResponse))
	}

	result, err := single(ctx, b.unsealer, *wire, project)
	if err != nil {
		return nil, b.errors.classify(family, op, err)
	}
	if result.Failed != nil {
		b.logPartial(req.OperationName, 1, result.Failed.Cause)
	}
	return result, nil
}

// listRecords runs a list query and aggregates the page.
func listRecords[W any, T models.Identifiable](
	ctx context.Context,
	b *base,
	family models.ErrorFamily,
	req adapter.Request,
	root string,
	project projectFunc[W, T],
) (*models.ListResult[T], error) {
	page, err := fetch[models.Page[W]](ctx, b.transport.Query, req, root)
	if err != nil {
		return nil, b.errors.classify(family, opDefault, err)
	}
	if page == nil {
		page = &models.Page[W]{}
	}

	result, err := aggregate(ctx, b.unsealer, *page, project)
	if err != nil {
		return nil, b.errors.classify(family, opDefault, err)
	}
	if len(result.Failed) > 0 {
		b.logPartial(req.OperationName, len(result.Failed), result.Failed[0].Cause)
	}
	return result, nil
}

// inputVariables converts a tagged input struct into a GraphQL input object.
func inputVariables(in any) (map[string]any, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}
	vars := map[string]any{}
	if err = json.Unmarshal(body, &vars); err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}
	return vars, nil
}
