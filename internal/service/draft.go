package service

import (
	"context"
	"errors"
	"time"

	"github.com/crewdesk/crewdesk/internal/api/dto"
	"github.com/crewdesk/crewdesk/internal/domain/draft"
	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/types"
)

type DraftService interface {
	CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*dto.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error)
	UpdateDraft(ctx context.Context, id string, req dto.UpdateDraftRequest) (*dto.DraftResponse, error)
	AddItem(ctx context.Context, id string) (*dto.DraftResponse, error)
	RemoveItem(ctx context.Context, id string, index int) (*dto.DraftResponse, error)
	UpdateItem(ctx context.Context, id string, index int, req dto.UpdateLineItemRequest) (*dto.DraftResponse, error)
	SelectServiceRequest(ctx context.Context, id string, req dto.SelectServiceRequest) (*dto.DraftResponse, error)
	SubmitDraft(ctx context.Context, id string) (*dto.SubmitDraftResponse, error)
}

type draftService struct {
	ServiceParams
}

func NewDraftService(params ServiceParams) DraftService {
	return &draftService{
		ServiceParams: params,
	}
}

func (s *draftService) CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := draft.New()
	d.SessionID = types.GetSessionID(ctx)
	d = d.SetHeader(req.DueDate, &req.PaymentTerms, &req.Currency, &req.Notes)

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.Logger.Infow("draft created",
		"draft_id", d.ID,
		"reference", d.Reference)

	return dto.NewDraftResponse(d), nil
}

func (s *draftService) GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(d), nil
}

func (s *draftService) UpdateDraft(ctx context.Context, id string, req dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	d = d.SetHeader(req.DueDate, req.PaymentTerms, req.Currency, req.Notes)

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(d), nil
}

func (s *draftService) AddItem(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	d = d.AddItem()

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(d), nil
}

func (s *draftService) RemoveItem(ctx context.Context, id string, index int) (*dto.DraftResponse, error) {
	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	// Removing the last remaining item is a no-op, not an error; the
	// updated (possibly unchanged) state is returned either way.
	d, err = d.RemoveItem(index)
	if err != nil {
		return nil, s.itemIndexError(err, id, index)
	}

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(d), nil
}

func (s *draftService) UpdateItem(ctx context.Context, id string, index int, req dto.UpdateLineItemRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if d, err = d.SetDescription(index, *req.Description); err != nil {
			return nil, s.itemIndexError(err, id, index)
		}
	}
	if req.Quantity != nil {
		if d, err = d.SetQuantity(index, *req.Quantity); err != nil {
			return nil, s.itemIndexError(err, id, index)
		}
	}
	if req.Rate != nil {
		if d, err = d.SetRate(index, *req.Rate); err != nil {
			return nil, s.itemIndexError(err, id, index)
		}
	}

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(d), nil
}

// SelectServiceRequest replaces the draft's whole item collection with
// one item seeded from the selected service. When the selection cannot
// be resolved the draft is left untouched: the binding fails closed.
func (s *draftService) SelectServiceRequest(ctx context.Context, id string, req dto.SelectServiceRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	sr, err := s.ServiceRequestRepo.Get(ctx, req.ServiceRequestID)
	if err != nil {
		if errors.Is(err, servicerequest.ErrServiceRequestNotFound) {
			return nil, ierr.NewError("service request could not be resolved").
				WithHint("The selected service request no longer exists").
				WithReportableDetails(map[string]any{
					"service_request_id": req.ServiceRequestID,
				}).
				Mark(ierr.ErrServiceUnresolved)
		}
		return nil, err
	}

	if !sr.Resolvable() {
		s.Logger.Warnw("service request has no usable service, leaving draft untouched",
			"draft_id", id,
			"service_request_id", req.ServiceRequestID)
		return nil, ierr.NewError("service request carries no service").
			WithHint("The selected service request has no priced service attached").
			WithReportableDetails(map[string]any{
				"service_request_id": req.ServiceRequestID,
			}).
			Mark(ierr.ErrServiceUnresolved)
	}

	d = d.ApplyService(sr.ID, sr.Service.Name, sr.Service.BasePrice)

	if err := s.DraftRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.Logger.Infow("draft items replaced from service selection",
		"draft_id", id,
		"service_request_id", sr.ID,
		"base_price", sr.Service.BasePrice)

	return dto.NewDraftResponse(d), nil
}

// SubmitDraft validates the draft, assembles the outbound payload and
// posts it to the external invoice endpoint. On success the draft is
// discarded; on any failure it is kept unchanged so the user can
// retry without re-entering data.
func (s *draftService) SubmitDraft(ctx context.Context, id string) (*dto.SubmitDraftResponse, error) {
	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.ValidateForSubmission(time.Now().UTC()); err != nil {
		return nil, err
	}

	payload := invoicing.NewCreateInvoiceRequest(d)

	created, err := s.InvoicingGateway.CreateInvoice(ctx, payload)
	if err != nil {
		s.Logger.Errorw("draft submission failed, draft retained",
			"error", err,
			"draft_id", id)
		return nil, err
	}

	if err := s.DraftRepo.Delete(ctx, id); err != nil {
		// The invoice exists upstream; losing the cleanup only means
		// the draft lingers until its TTL.
		s.Logger.Warnw("failed to delete submitted draft",
			"error", err,
			"draft_id", id)
	}

	s.Logger.Infow("draft submitted",
		"draft_id", id,
		"invoice_id", created.ID)

	return &dto.SubmitDraftResponse{
		InvoiceID:     created.ID,
		InvoiceNumber: created.InvoiceNumber,
	}, nil
}

// getDraft loads a draft and enforces session ownership: a draft bound
// to an editing session is invisible to every other session. The
// mismatch is reported as not-found so a foreign session cannot probe
// for draft IDs.
func (s *draftService) getDraft(ctx context.Context, id string) (draft.Draft, error) {
	d, err := s.DraftRepo.Get(ctx, id)
	if err != nil {
		if draft.IsNotFoundError(err) {
			return draft.Draft{}, s.draftNotFoundError(id)
		}
		return draft.Draft{}, err
	}

	if d.SessionID != "" && d.SessionID != types.GetSessionID(ctx) {
		s.Logger.Warnw("draft requested from a foreign editing session",
			"draft_id", id)
		return draft.Draft{}, s.draftNotFoundError(id)
	}

	return d, nil
}

func (s *draftService) draftNotFoundError(id string) error {
	return ierr.NewError("draft not found").
		WithHint("The draft does not exist or the editing session has expired").
		WithReportableDetails(map[string]any{
			"draft_id": id,
		}).
		Mark(ierr.ErrNotFound)
}

func (s *draftService) itemIndexError(err error, id string, index int) error {
	if errors.Is(err, draft.ErrItemIndexOutOfRange) {
		return ierr.NewError("line item index out of range").
			WithHint("The referenced line item does not exist").
			WithReportableDetails(map[string]any{
				"draft_id": id,
				"index":    index,
			}).
			Mark(ierr.ErrValidation)
	}
	return err
}
