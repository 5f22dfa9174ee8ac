package onboarding

import (
	"context"
	"errors"
	"io"
	"testing"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

type stubApplicationRepo struct {
	created   []*models.RestaurantApplication
	createErr error
	found     *models.RestaurantApplication
	findErr   error
	updated   map[int64]enums.ApplicationStatus
}

func (s *stubApplicationRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubApplicationRepo) Create(ctx context.Context, application *models.RestaurantApplication) (*models.RestaurantApplication, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	application.ID = int64(len(s.created) + 1)
	s.created = append(s.created, application)
	return application, nil
}

func (s *stubApplicationRepo) FindByID(ctx context.Context, id int64) (*models.RestaurantApplication, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func (s *stubApplicationRepo) List(ctx context.Context, status enums.ApplicationStatus) ([]models.RestaurantApplication, error) {
	return nil, nil
}

func (s *stubApplicationRepo) UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus) error {
	if s.updated == nil {
		s.updated = map[int64]enums.ApplicationStatus{}
	}
	s.updated[id] = status
	return nil
}

type stubCreator struct {
	created []*models.Restaurant
}

func (s *stubCreator) CreateTx(ctx context.Context, tx *gorm.DB, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.ID = int64(len(s.created) + 7)
	s.created = append(s.created, restaurant)
	return restaurant, nil
}

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T, repo Repository, creator restaurantCreator) Service {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "onboarding-test", Output: io.Discard})
	svc, err := NewService(repo, creator, passthroughTx{}, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validSubmit() SubmitInput {
	return SubmitInput{
		RestaurantName: "Mangal Keyfi",
		OwnerName:      "Hasan Demir",
		Phone:          "0532 123 45 67",
		Email:          "Hasan@Example.com",
		Address:        "Caferağa Mahallesi, Moda Caddesi No:15, Kadıköy",
		Cuisine:        "Türk",
		Description:    "Kömür ateşinde mangal.",
	}
}

func TestSubmitStoresPendingApplication(t *testing.T) {
	t.Parallel()

	repo := &stubApplicationRepo{}
	svc := newTestService(t, repo, &stubCreator{})

	application, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if application.Status != enums.ApplicationStatusPending {
		t.Fatalf("unexpected status %q", application.Status)
	}
	if application.Email != "hasan@example.com" {
		t.Fatalf("email not lowercased: %q", application.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored application, got %d", len(repo.created))
	}
}

func TestSubmitRejectsNonTurkishMobile(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubApplicationRepo{}, &stubCreator{})

	for _, phone := range []string{"0212 123 45 67", "1234567", "+1 555 0100", "0632 123 45 67"} {
		input := validSubmit()
		input.Phone = phone
		_, err := svc.Submit(context.Background(), input)
		coded := pkgerrors.As(err)
		if coded == nil || coded.Code() != pkgerrors.CodeValidation {
			t.Fatalf("phone %q: expected validation error, got %v", phone, err)
		}
	}

	for _, phone := range []string{"05321234567", "+905321234567", "5321234567", "0532 123 45 67"} {
		input := validSubmit()
		input.Phone = phone
		if _, err := svc.Submit(context.Background(), input); err != nil {
			t.Fatalf("phone %q: unexpected error %v", phone, err)
		}
	}
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubApplicationRepo{}, &stubCreator{})

	input := validSubmit()
	input.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), input)
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitDuplicatePendingEmailIsConflict(t *testing.T) {
	t.Parallel()

	repo := &stubApplicationRepo{
		createErr: errors.New(`duplicate key value violates unique constraint "uq_restaurant_applications_email_pending"`),
	}
	svc := newTestService(t, repo, &stubCreator{})

	_, err := svc.Submit(context.Background(), validSubmit())
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDecideApproveOpensRestaurant(t *testing.T) {
	t.Parallel()

	repo := &stubApplicationRepo{
		found: &models.RestaurantApplication{
			ID:             3,
			RestaurantName: "Mangal Keyfi",
			Cuisine:        "Türk",
			Status:         enums.ApplicationStatusPending,
		},
	}
	creator := &stubCreator{}
	svc := newTestService(t, repo, creator)

	application, err := svc.Decide(context.Background(), 3, true)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if application.Status != enums.ApplicationStatusApproved {
		t.Fatalf("unexpected status %q", application.Status)
	}
	if repo.updated[3] != enums.ApplicationStatusApproved {
		t.Fatalf("status not written: %v", repo.updated)
	}
	if len(creator.created) != 1 || creator.created[0].Name != "Mangal Keyfi" {
		t.Fatalf("restaurant not opened: %+v", creator.created)
	}
	if !creator.created[0].IsActive {
		t.Fatal("opened restaurant must be active")
	}
}

func TestDecideRejectLeavesRestaurantsAlone(t *testing.T) {
	t.Parallel()

	repo := &stubApplicationRepo{
		found: &models.RestaurantApplication{ID: 3, Status: enums.ApplicationStatusPending},
	}
	creator := &stubCreator{}
	svc := newTestService(t, repo, creator)

	application, err := svc.Decide(context.Background(), 3, false)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if application.Status != enums.ApplicationStatusRejected {
		t.Fatalf("unexpected status %q", application.Status)
	}
	if len(creator.created) != 0 {
		t.Fatal("rejection must not open a restaurant")
	}
}

func TestDecideSettledApplicationIsStateConflict(t *testing.T) {
	t.Parallel()

	repo := &stubApplicationRepo{
		found: &models.RestaurantApplication{ID: 3, Status: enums.ApplicationStatusApproved},
	}
	svc := newTestService(t, repo, &stubCreator{})

	_, err := svc.Decide(context.Background(), 3, true)
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state-conflict error, got %v", err)
	}
}
