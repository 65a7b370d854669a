package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"paydesk/internal/domain/entities"
	"paydesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrEvidenceNotFound    = errors.New("evidence file not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrInvalidPaymentID    = errors.New("invalid payment id")
	ErrInvalidPage         = errors.New("invalid page or size")
	ErrEmptyPatch          = errors.New("empty update patch")
	ErrEmptyEvidence       = errors.New("empty evidence file")
)

// RecordError marks a single record that could not be fully derived during a
// listing. The listing itself still succeeds.
type RecordError struct {
	PaymentID string `json:"payment_id"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
}

// DerivedPayment is a stored payment plus its read-time projections.
type DerivedPayment struct {
	entities.Payment
	EffectiveStatus entities.PaymentStatus
}

// ListResult is one page of payments with per-record derivation errors.
type ListResult struct {
	Payments []DerivedPayment
	Errors   []RecordError
}

// IPaymentUseCase exposes the record service operations.

type IPaymentUseCase interface {
	List(ctx context.Context, statusFilter string, page, size int) (ListResult, error)
	Create(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
	UploadEvidence(ctx context.Context, id string, data []byte) (string, error)
	DownloadEvidence(ctx context.Context, blobID string) ([]byte, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	evidence interfaces.IEvidenceStore
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, evidence interfaces.IEvidenceStore) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, evidence: evidence, now: time.Now}
}

// List fetches one page and independently re-derives total_due and the
// transient effective status for every record. A malformed due date marks that
// record in Errors and leaves its stored status in place; it never fails the
// page.
func (u *PaymentUseCase) List(ctx context.Context, statusFilter string, page, size int) (ListResult, error) {
	if page < 1 || size < 1 {
		return ListResult{}, ErrInvalidPage
	}

	skip := (page - 1) * size
	stored, err := u.repo.Find(ctx, strings.TrimSpace(statusFilter), skip, size)
	if err != nil {
		return ListResult{}, err
	}

	today := u.now().UTC()
	res := ListResult{Payments: make([]DerivedPayment, 0, len(stored))}
	for _, p := range stored {
		p.TotalDue = TotalDue(p.DueAmount, p.DiscountPercent, p.TaxPercent)
		effective, derr := EffectiveStatus(p.Status, p.PayeeDueDate, today)
		if derr != nil {
			log.Printf("[payment][usecase] list derivation failed payment_id=%s due_date=%q err=%v", p.ID, p.PayeeDueDate, derr)
			res.Errors = append(res.Errors, RecordError{
				PaymentID: p.ID,
				Field:     entities.FieldDueDate,
				Reason:    derr.Error(),
			})
		}
		res.Payments = append(res.Payments, DerivedPayment{Payment: p, EffectiveStatus: effective})
	}
	return res, nil
}

// Create persists an arbitrary field map as-is; the pipeline's normalization
// and validation are not re-run here. The repository assigns the identifier.
func (u *PaymentUseCase) Create(ctx context.Context, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", ErrEmptyPatch
	}

	id, err := u.repo.InsertOne(ctx, entities.PaymentFromFields(fields))
	if err != nil {
		log.Printf("[payment][usecase] create failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][usecase] create success payment_id=%s", id)
	return id, nil
}

// Update merges the patch into the stored record field by field. If any of the
// three monetary inputs is patched, total_due is recomputed in the same write
// to keep the derived-value invariant; it never waits for a reprocessing pass.
func (u *PaymentUseCase) Update(ctx context.Context, id string, patch map[string]any) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}
	if len(patch) == 0 {
		return ErrEmptyPatch
	}

	if touchesMonetaryInput(patch) {
		existing, err := u.repo.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			return ErrPaymentNotFound
		}

		merged := existing.Fields()
		for k, v := range patch {
			merged[k] = v
		}
		after := entities.PaymentFromFields(merged)
		patch[entities.FieldTotalDue] = TotalDue(after.DueAmount, after.DiscountPercent, after.TaxPercent)
	}

	matched, err := u.repo.UpdateOne(ctx, id, patch)
	if err != nil {
		log.Printf("[payment][usecase] update failed payment_id=%s err=%v", id, err)
		return err
	}
	if matched == 0 {
		return ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] update success payment_id=%s fields=%d", id, len(patch))
	return nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}

	deleted, err := u.repo.DeleteOne(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] delete failed payment_id=%s err=%v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] delete success payment_id=%s", id)
	return nil
}

// UploadEvidence stores the attachment and records its blob id on the payment.
// Only payments whose stored status is exactly "completed" may carry evidence.
func (u *PaymentUseCase) UploadEvidence(ctx context.Context, id string, data []byte) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidPaymentID
	}
	if len(data) == 0 {
		return "", ErrEmptyEvidence
	}

	p, err := u.repo.FindOne(ctx, id)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusCompleted {
		log.Printf("[payment][usecase] evidence rejected payment_id=%s status=%s", id, p.Status)
		return "", ErrPaymentNotCompleted
	}

	blobID, err := u.evidence.Put(ctx, data, uuid.NewString())
	if err != nil {
		log.Printf("[payment][usecase] evidence store put failed payment_id=%s err=%v", id, err)
		return "", err
	}

	if _, err := u.repo.UpdateOne(ctx, id, map[string]any{entities.FieldEvidenceFileID: blobID}); err != nil {
		log.Printf("[payment][usecase] evidence link failed payment_id=%s blob_id=%s err=%v", id, blobID, err)
		return "", err
	}
	log.Printf("[payment][usecase] evidence stored payment_id=%s blob_id=%s bytes=%d", id, blobID, len(data))
	return blobID, nil
}

func (u *PaymentUseCase) DownloadEvidence(ctx context.Context, blobID string) ([]byte, error) {
	blobID = strings.TrimSpace(blobID)
	if blobID == "" {
		return nil, ErrEvidenceNotFound
	}

	data, err := u.evidence.Get(ctx, blobID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrEvidenceNotFound
	}
	return data, nil
}

func touchesMonetaryInput(patch map[string]any) bool {
	for _, k := range []string{entities.FieldDueAmount, entities.FieldDiscountPercent, entities.FieldTaxPercent} {
		if _, ok := patch[k]; ok {
			return true
		}
	}
	return false
}
