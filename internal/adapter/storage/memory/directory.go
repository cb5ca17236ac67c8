package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
)

// Directory is the in-memory transaction directory. It stands in for the
// external system of record: the engine reads transactions and writes only
// their status. Reads are fallible and meant to be retried by callers.
type Directory struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	sim          *Simulator
}

func NewDirectory(sim *Simulator) *Directory {
	return &Directory{
		transactions: make(map[string]*domain.Transaction),
		sim:          sim,
	}
}

// Seed loads transactions into the directory, replacing any with the same ID.
func (d *Directory) Seed(txs []domain.Transaction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range txs {
		tx := txs[i]
		d.transactions[tx.ID] = &tx
	}
}

func (d *Directory) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if err := d.sim.run(ctx, "directory.get", true); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	tx, ok := d.transactions[id]
	if !ok {
		return nil, apperror.ErrTransactionNotFound()
	}
	out := *tx
	return &out, nil
}

func (d *Directory) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error {
	if err := d.sim.run(ctx, "directory.update_status", true); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tx, ok := d.transactions[id]
	if !ok {
		return apperror.ErrTransactionNotFound()
	}
	tx.Status = status
	return nil
}

func (d *Directory) Search(ctx context.Context, params ports.TransactionSearchParams, page, pageSize int) (*ports.TransactionPage, error) {
	if err := d.sim.run(ctx, "directory.search", true); err != nil {
		return nil, err
	}

	d.mu.RLock()
	matched := make([]domain.Transaction, 0)
	for _, tx := range d.transactions {
		if matchesSearch(tx, params) {
			matched = append(matched, *tx)
		}
	}
	d.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		}
		return matched[i].ID > matched[j].ID
	})

	page, pageSize = normalizePage(page, pageSize)
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &ports.TransactionPage{
		Data:       matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func matchesSearch(tx *domain.Transaction, p ports.TransactionSearchParams) bool {
	if p.TransactionID != "" && !containsFold(tx.ID, p.TransactionID) {
		return false
	}
	if p.UserID != "" && !containsFold(tx.UserID, p.UserID) {
		return false
	}
	if p.UserName != "" && !containsFold(tx.UserName, p.UserName) {
		return false
	}
	if p.DateFrom != nil && tx.Timestamp.Before(*p.DateFrom) {
		return false
	}
	if p.DateTo != nil && tx.Timestamp.After(*p.DateTo) {
		return false
	}
	if p.Status != nil && tx.Status != *p.Status {
		return false
	}
	if p.Type != nil && tx.Type != *p.Type {
		return false
	}
	if p.MinAmount != nil && tx.Amount < *p.MinAmount {
		return false
	}
	if p.MaxAmount != nil && tx.Amount > *p.MaxAmount {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SampleTransactions generates n plausible transactions for seeding a
// development directory. Output is deterministic for a given n.
func SampleTransactions(n int, base time.Time) []domain.Transaction {
	users := []struct{ id, name string }{
		{"USR-1001", "Nguyen Van An"},
		{"USR-1002", "Tran Thi Binh"},
		{"USR-1003", "Le Minh Chau"},
		{"USR-1004", "Pham Quoc Dat"},
		{"USR-1005", "Hoang Thu Em"},
	}
	merchants := []string{"Shopee", "Lazada", "Tiki", "Grab", "Netflix"}
	types := []domain.TransactionType{
		domain.TransactionTypePayment,
		domain.TransactionTypeRefund,
		domain.TransactionTypeTransfer,
		domain.TransactionTypeWithdrawal,
		domain.TransactionTypeDeposit,
	}

	txs := make([]domain.Transaction, 0, n)
	for i := 0; i < n; i++ {
		u := users[i%len(users)]
		txs = append(txs, domain.Transaction{
			ID:            fmt.Sprintf("TXN-%09d", i+1),
			UserID:        u.id,
			UserName:      u.name,
			Amount:        int64((i%40 + 1) * 25000),
			Currency:      "VND",
			Type:          types[i%len(types)],
			Status:        domain.TransactionStatusCompleted,
			MerchantName:  merchants[i%len(merchants)],
			CardLast4:     fmt.Sprintf("%04d", 1000+i%9000),
			AccountNumber: fmt.Sprintf("ACC-%06d", 100000+i),
			Timestamp:     base.Add(-time.Duration(i) * 6 * time.Hour),
			Description:   fmt.Sprintf("%s order #%d", merchants[i%len(merchants)], 5000+i),
		})
	}
	return txs
}
