package payout

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/cerror"
	"payout-api/pkg/logger"
)

// errDataIntegrity marks a payout whose user reference cannot be resolved.
// It degrades the single record instead of failing the page.
var errDataIntegrity = errors.New("payout references a missing or blank user")

type Service interface {
	List(ctx context.Context, predicate *Predicate, page int) (*PageResult, error)
}

type service struct {
	payoutRepository Repository
}

func NewService(payoutRepository Repository) Service {
	return &service{
		payoutRepository: payoutRepository,
	}
}

// List counts the matching payouts, fetches the requested page ordered by
// created descending and enriches each record with the owning user's wallet
// balance. Count and fetch are two separate reads; a write landing between
// them can skew the page against the totals, which is an accepted
// eventual-consistency window.
func (s *service) List(ctx context.Context, predicate *Predicate, page int) (*PageResult, error) {
	if page < 1 {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"invalid page: must be greater than or equal to 1",
		).SetSeverity(zapcore.WarnLevel)
	}

	totalDocs, err := s.payoutRepository.CountPayouts(ctx, predicate)
	if err != nil {
		return nil, err
	}

	if totalDocs == 0 {
		return &PageResult{
			Page:       page,
			PageSize:   PageSize,
			TotalPages: 0,
			TotalDocs:  0,
			Results:    []PayoutItem{},
		}, nil
	}

	totalPages := int((totalDocs + PageSize - 1) / PageSize)
	if page > totalPages {
		return nil, cerror.NewError(
			fiber.StatusNotFound,
			"page not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	skip := int64(page-1) * PageSize
	payouts, err := s.payoutRepository.FindPayouts(ctx, predicate, skip, PageSize)
	if err != nil {
		return nil, err
	}

	results, err := s.enrich(ctx, payouts)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
		TotalDocs:  totalDocs,
		Results:    results,
	}, nil
}

func (s *service) enrich(ctx context.Context, payouts []PayoutDocument) ([]PayoutItem, error) {
	log := logger.FromContext(ctx)

	// Balances are memoised per user for the current page only; nothing is
	// cached across requests.
	balances := make(map[string]WalletBalance)

	results := make([]PayoutItem, 0, len(payouts))
	for _, payout := range payouts {
		item := PayoutItem{
			Id:          payout.Id,
			UserId:      payout.UserId,
			Amount:      payout.Amount,
			Status:      payout.Status,
			UserType:    payout.UserType,
			Created:     payout.Created,
			PaymentDate: payout.PaymentDate,
		}

		balance, err := s.balanceForUser(ctx, payout.UserId, balances)
		if err != nil {
			if !errors.Is(err, errDataIntegrity) {
				return nil, err
			}

			log.Warnw(
				"data integrity error while compute wallet balance",
				zap.String("payoutId", payout.Id),
				zap.String("userId", payout.UserId),
			)
			item.BalanceIncomplete = true
		} else {
			item.AvailableBalance = balance.AvailableBalance
			item.PendingBalance = balance.PendingBalance
		}

		results = append(results, item)
	}

	return results, nil
}

func (s *service) balanceForUser(
	ctx context.Context,
	userId string,
	balances map[string]WalletBalance,
) (WalletBalance, error) {
	if balance, isComputed := balances[userId]; isComputed {
		return balance, nil
	}

	if userId == "" {
		return WalletBalance{}, errDataIntegrity
	}

	userExists, err := s.payoutRepository.UserExists(ctx, userId)
	if err != nil {
		return WalletBalance{}, err
	}
	if !userExists {
		return WalletBalance{}, errDataIntegrity
	}

	userPayouts, err := s.payoutRepository.FindPayoutsWithUserId(ctx, userId)
	if err != nil {
		return WalletBalance{}, err
	}

	var balance WalletBalance
	now := time.Now().UTC()
	for _, userPayout := range userPayouts {
		if userPayout.PaymentDate != nil && !userPayout.PaymentDate.After(now) {
			balance.AvailableBalance += userPayout.Amount
		} else {
			balance.PendingBalance += userPayout.Amount
		}
	}

	balances[userId] = balance
	return balance, nil
}
