package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/floramart/flowerex/internal/domain"
)

type ReviewUC struct {
	Users   domain.UserRepo
	Lots    domain.LotRepo
	Reviews domain.ReviewRepo
}

func (uc *ReviewUC) checkContext(text string) error {
	if text == "" {
		return &domain.ValidationError{Reason: "review text is empty"}
	}
	if utf8.RuneCountInString(text) > domain.MaxReviewLen {
		return &domain.ValidationError{Reason: "review text exceeds 2000 characters"}
	}
	return nil
}

// CreateLotReview stores feedback on a lot. The lot and the author must
// exist; the text is persisted verbatim.
func (uc *ReviewUC) CreateLotReview(ctx context.Context, authorID, lotID uuid.UUID, text string) (*domain.LotReview, error) {
	if err := uc.checkContext(text); err != nil {
		return nil, err
	}
	if _, err := uc.Users.FindByID(ctx, authorID); err != nil {
		return nil, err
	}
	if _, err := uc.Lots.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	r := &domain.LotReview{
		ID:      uuid.New(),
		UserID:  authorID,
		LotID:   lotID,
		Context: text,
	}
	if err := uc.Reviews.SaveLotReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateSalesmanReview stores feedback on a salesman. The target must
// exist and actually hold the salesman role.
func (uc *ReviewUC) CreateSalesmanReview(ctx context.Context, authorID, salesmanID uuid.UUID, text string) (*domain.SalesmanReview, error) {
	if err := uc.checkContext(text); err != nil {
		return nil, err
	}
	if _, err := uc.Users.FindByID(ctx, authorID); err != nil {
		return nil, err
	}
	target, err := uc.Users.FindByID(ctx, salesmanID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireRole(target, domain.RoleSalesman); err != nil {
		return nil, err
	}
	r := &domain.SalesmanReview{
		ID:         uuid.New(),
		UserID:     authorID,
		SalesmanID: salesmanID,
		Context:    text,
	}
	if err := uc.Reviews.SaveSalesmanReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ReviewUC) ListLotReviews(ctx context.Context, lotID uuid.UUID) ([]domain.LotReview, error) {
	if _, err := uc.Lots.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	return uc.Reviews.ListForLot(ctx, lotID)
}

func (uc *ReviewUC) ListSalesmanReviews(ctx context.Context, salesmanID uuid.UUID) ([]domain.SalesmanReview, error) {
	if _, err := uc.Users.FindByID(ctx, salesmanID); err != nil {
		return nil, err
	}
	return uc.Reviews.ListForSalesman(ctx, salesmanID)
}
