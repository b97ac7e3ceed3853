package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// CreateSolInput is the configuration captured when a group is created.
// Members are names in payout order.
type CreateSolInput struct {
	Name            string           `json:"name" validate:"required"`
	Frequency       models.Frequency `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly"`
	Amount          decimal.Decimal  `json:"amount"`
	MemberCount     int              `json:"memberCount" validate:"min=2"`
	WinnersPerRound int              `json:"winnersPerRound" validate:"min=1,ltefield=MemberCount"`
	Members         []string         `json:"members" validate:"dive,required"`
	StartDate       time.Time        `json:"startDate"`
}

// NewSol validates the input and builds a fresh, active Sol at round 1.
func (l *Ledger) NewSol(in CreateSolInput) (*models.Sol, error) {
	in.Name = strings.TrimSpace(in.Name)
	names := make([]string, len(in.Members))
	for i, n := range in.Members {
		names[i] = strings.TrimSpace(n)
	}
	in.Members = names

	if err := validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}
	if !in.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	if len(in.Members) != in.MemberCount {
		return nil, &ValidationError{
			Field:  "members",
			Reason: fmt.Sprintf("expected %d members, got %d", in.MemberCount, len(in.Members)),
		}
	}

	members := make([]models.Member, len(in.Members))
	for i, name := range in.Members {
		members[i] = models.Member{
			ID:       l.newID(),
			Name:     name,
			Position: i + 1,
		}
	}

	return &models.Sol{
		ID:              l.newID(),
		Name:            in.Name,
		Frequency:       in.Frequency,
		Amount:          in.Amount,
		MemberCount:     in.MemberCount,
		WinnersPerRound: in.WinnersPerRound,
		Members:         members,
		CurrentRound:    1,
		StartDate:       l.dateOr(in.StartDate),
		Status:          models.StatusActive,
		Payments:        []models.Payment{},
		Events:          []models.SolEvent{},
	}, nil
}

func toValidationError(err error) *ValidationError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}
	fe := errs[0]
	return &ValidationError{Field: fe.Field(), Reason: validationMessage(fe)}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "ltefield":
		return "must not exceed memberCount"
	}
	return "is invalid"
}
