// Package storage provides BadgerDB-based persistence for generated reports
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/models"
)

const sequenceKey = "report"

// BadgerDB wraps badgerhold for typed storage
type BadgerDB struct {
	store  *badgerhold.Store
	logger *common.Logger
}

// NewBadgerDB opens (or creates) the store at the configured path.
func NewBadgerDB(logger *common.Logger, config *common.StorageConfig) (*BadgerDB, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = config.Path
	opts.ValueDir = config.Path
	opts.Logger = nil // Disable badger's internal logging

	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	logger.Debug().Str("path", config.Path).Msg("BadgerDB opened")

	return &BadgerDB{store: store, logger: logger}, nil
}

// Close closes the database
func (db *BadgerDB) Close() error {
	if db.store != nil {
		return db.store.Close()
	}
	return nil
}

// reportStorage implements ReportStorage using BadgerDB
type reportStorage struct {
	db     *BadgerDB
	logger *common.Logger

	// guards the sequence counter read+write
	seqMu sync.Mutex
}

// NewReportStorage returns BadgerDB-backed report persistence.
func NewReportStorage(db *BadgerDB, logger *common.Logger) interfaces.ReportStorage {
	return &reportStorage{db: db, logger: logger}
}

func (s *reportStorage) SaveReport(ctx context.Context, record *models.ReportRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("report record requires an ID")
	}
	if err := s.db.store.Upsert(record.ID, record); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	s.logger.Debug().Str("id", record.ID).Int("number", record.Number).Msg("Report saved")
	return nil
}

func (s *reportStorage) GetReport(ctx context.Context, id string) (*models.ReportRecord, error) {
	var record models.ReportRecord
	err := s.db.store.Get(id, &record)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("report '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &record, nil
}

func (s *reportStorage) ListReports(ctx context.Context) ([]string, error) {
	var records []models.ReportRecord
	if err := s.db.store.Find(&records, nil); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].GeneratedAt.After(records[j].GeneratedAt)
	})

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids, nil
}

func (s *reportStorage) DeleteReport(ctx context.Context, id string) error {
	err := s.db.store.Delete(id, models.ReportRecord{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("report '%s' not found", id)
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// NextReportNumber allocates output numbers strictly monotonically. The
// counter is persisted so numbering survives restarts; the mutex keeps
// concurrent generations from receiving the same number.
func (s *reportStorage) NextReportNumber(ctx context.Context) (int, error) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	var seq models.ReportSequence
	err := s.db.store.Get(sequenceKey, &seq)
	if err != nil {
		if err != badgerhold.ErrNotFound {
			return 0, fmt.Errorf("failed to read report sequence: %w", err)
		}
		seq = models.ReportSequence{Key: sequenceKey, Next: 1}
	}

	n := seq.Next
	seq.Next = n + 1
	if err := s.db.store.Upsert(sequenceKey, &seq); err != nil {
		return 0, fmt.Errorf("failed to advance report sequence: %w", err)
	}
	return n, nil
}

func (s *reportStorage) Close() error {
	return s.db.Close()
}

var _ interfaces.ReportStorage = (*reportStorage)(nil)
