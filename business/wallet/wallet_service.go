package wallet

import (
	"context"

	"futureplus/domain"
	"futureplus/pkg/logger"
)

// TransactionRepository contract interface
type TransactionRepository interface {
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

const transactionHistoryLimit = 50

type walletService struct {
	transactionRepo TransactionRepository
}

func NewWalletService(transactionRepo TransactionRepository) *walletService {
	return &walletService{
		transactionRepo: transactionRepo,
	}
}

// GetTransactions returns the user's last 50 transactions, newest first.
// The ledger itself is append-only; settlement happens out-of-band.
func (s *walletService) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindRecentByUser(ctx, userID, transactionHistoryLimit)
	if err != nil {
		logger.Error("Failed to get transactions", err)
		return nil, err
	}

	return transactions, nil
}
