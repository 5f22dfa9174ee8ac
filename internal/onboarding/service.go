package onboarding

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db"
	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

// Turkish mobile numbers: optional +90 or 0 prefix, then a 5xx number.
var trMobileRe = regexp.MustCompile(`^(\+90|0)?5[0-9]{9}$`)

const pendingEmailConstraint = "uq_restaurant_applications_email_pending"

// restaurantCreator opens the restaurant row for an approved application.
type restaurantCreator interface {
	CreateTx(ctx context.Context, tx *gorm.DB, restaurant *models.Restaurant) (*models.Restaurant, error)
}

// transactor runs fn inside a database transaction.
type transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SubmitInput is a partner application as received from the storefront form.
type SubmitInput struct {
	RestaurantName string `validate:"required,min=2"`
	OwnerName      string `validate:"required,min=2"`
	Phone          string `validate:"required"`
	Email          string `validate:"required,email"`
	Address        string `validate:"required,min=10"`
	Cuisine        string `validate:"required"`
	Description    string
}

// Service runs the restaurant onboarding funnel.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*models.RestaurantApplication, error)
	List(ctx context.Context, status enums.ApplicationStatus) ([]models.RestaurantApplication, error)
	Decide(ctx context.Context, id int64, approve bool) (*models.RestaurantApplication, error)
}

type service struct {
	repo        Repository
	restaurants restaurantCreator
	tx          transactor
	validate    *validator.Validate
	logger      *logger.Logger
}

// NewService builds the onboarding service.
func NewService(repo Repository, restaurants restaurantCreator, tx transactor, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("onboarding repository required")
	}
	if restaurants == nil {
		return nil, fmt.Errorf("restaurants service required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transactor required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:        repo,
		restaurants: restaurants,
		tx:          tx,
		validate:    validator.New(),
		logger:      logg,
	}, nil
}

// Submit validates and stores a pending application. A second pending
// application with the same email is rejected.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.RestaurantApplication, error) {
	input = normalize(input)
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "application is incomplete").
			WithDetails(fieldErrors(err))
	}
	if !trMobileRe.MatchString(strings.ReplaceAll(input.Phone, " ", "")) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be a Turkish mobile number").
			WithDetails(map[string]any{"phone": input.Phone})
	}

	application := &models.RestaurantApplication{
		RestaurantName: input.RestaurantName,
		OwnerName:      input.OwnerName,
		Phone:          input.Phone,
		Email:          strings.ToLower(input.Email),
		Address:        input.Address,
		Cuisine:        input.Cuisine,
		Description:    input.Description,
		Status:         enums.ApplicationStatusPending,
	}
	if _, err := s.repo.Create(ctx, application); err != nil {
		if db.IsUniqueViolation(err, pendingEmailConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a pending application already exists for this email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store application")
	}

	logCtx := s.logger.WithFields(ctx, map[string]any{
		"application_id": application.ID,
		"cuisine":        application.Cuisine,
	})
	s.logger.Info(logCtx, "restaurant application received")
	return application, nil
}

// List returns applications, optionally narrowed to one status.
func (s *service) List(ctx context.Context, status enums.ApplicationStatus) ([]models.RestaurantApplication, error) {
	if status != "" && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown application status").
			WithDetails(map[string]any{"status": status.String()})
	}
	rows, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list applications")
	}
	return rows, nil
}

// Decide settles a pending application. Approval opens the restaurant row in
// the same transaction so the funnel never half-completes.
func (s *service) Decide(ctx context.Context, id int64, approve bool) (*models.RestaurantApplication, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "application id is required")
	}
	application, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load application")
	}
	if application.Status != enums.ApplicationStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "application is already settled").
			WithDetails(map[string]any{"status": application.Status.String()})
	}

	next := enums.ApplicationStatusRejected
	if approve {
		next = enums.ApplicationStatusApproved
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdateStatus(ctx, id, next); err != nil {
			return err
		}
		if !approve {
			return nil
		}
		_, err := s.restaurants.CreateTx(ctx, tx, &models.Restaurant{
			Name:         application.RestaurantName,
			Cuisine:      application.Cuisine,
			Description:  application.Description,
			Address:      application.Address,
			Phone:        application.Phone,
			DeliveryTime: "30-45 dk",
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "settle application")
	}

	application.Status = next
	logCtx := s.logger.WithFields(ctx, map[string]any{
		"application_id": id,
		"status":         next.String(),
	})
	s.logger.Info(logCtx, "restaurant application settled")
	return application, nil
}

func normalize(input SubmitInput) SubmitInput {
	input.RestaurantName = strings.TrimSpace(input.RestaurantName)
	input.OwnerName = strings.TrimSpace(input.OwnerName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	input.Cuisine = strings.TrimSpace(input.Cuisine)
	input.Description = strings.TrimSpace(input.Description)
	return input
}

func fieldErrors(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
