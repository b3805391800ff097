package payout

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/cerror"
)

const dateLayout = "2006-01-02"

// FilterParams are the raw query parameter values; empty string means the
// filter is absent.
type FilterParams struct {
	Statuses         string
	StartDate        string
	EndDate          string
	PaymentStartDate string
	PaymentEndDate   string
	UserType         string
}

// Predicate is the normalized query predicate. It carries no driver types so
// the builder can be tested without a live store; the repository translates it
// to a bson filter. Absent fields mean no constraint.
type Predicate struct {
	Statuses    []Status
	UserType    *UserType
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	PaymentFrom *time.Time
	PaymentTo   *time.Time
}

// BuildPredicate combines the present filters with logical AND. End dates are
// expanded to end-of-day so the range is inclusive of the whole day.
func BuildPredicate(params FilterParams) (*Predicate, error) {
	predicate := &Predicate{}

	if params.Statuses != "" {
		statuses, err := parseStatuses(params.Statuses)
		if err != nil {
			return nil, err
		}
		predicate.Statuses = statuses
	}

	if params.UserType != "" {
		userType, err := parseUserType(params.UserType)
		if err != nil {
			return nil, err
		}
		predicate.UserType = &userType
	}

	var err error
	predicate.CreatedFrom, err = parseDate("start_date", params.StartDate, false)
	if err != nil {
		return nil, err
	}
	predicate.CreatedTo, err = parseDate("end_date", params.EndDate, true)
	if err != nil {
		return nil, err
	}
	predicate.PaymentFrom, err = parseDate("payment_start_date", params.PaymentStartDate, false)
	if err != nil {
		return nil, err
	}
	predicate.PaymentTo, err = parseDate("payment_end_date", params.PaymentEndDate, true)
	if err != nil {
		return nil, err
	}

	return predicate, nil
}

func parseStatuses(rawStatuses string) ([]Status, error) {
	var statuses []Status
	for _, rawStatus := range strings.Split(rawStatuses, ",") {
		rawStatus = strings.TrimSpace(rawStatus)
		switch status := Status(rawStatus); status {
		case StatusPending, StatusApproved, StatusRejected, StatusPaid:
			statuses = append(statuses, status)
		default:
			return nil, cerror.NewError(
				fiber.StatusBadRequest,
				fmt.Sprintf("invalid statuses: %s is not a recognized payout status", rawStatus),
			).SetSeverity(zapcore.WarnLevel)
		}
	}

	return statuses, nil
}

func parseUserType(rawUserType string) (UserType, error) {
	switch userType := UserType(rawUserType); userType {
	case UserTypeAffiliate, UserTypePartner:
		return userType, nil
	default:
		return "", cerror.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("invalid user_type: %s is not a recognized user type", rawUserType),
		).SetSeverity(zapcore.WarnLevel)
	}
}

func parseDate(parameterName, rawDate string, endOfDay bool) (*time.Time, error) {
	if rawDate == "" {
		return nil, nil
	}

	parsedDate, err := time.ParseInLocation(dateLayout, rawDate, time.UTC)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("invalid %s: expected YYYY-MM-DD", parameterName),
		).SetSeverity(zapcore.WarnLevel)
	}

	if endOfDay {
		parsedDate = parsedDate.Add(24*time.Hour - time.Nanosecond)
	}

	return &parsedDate, nil
}
