package importing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// DefaultBatchSize é o número de linhas gravadas por transação
const DefaultBatchSize = 1000

// Progress recebe o total de linhas gravadas até o momento
type Progress func(written int)

type Service struct {
	salesRepository repository.SalesRepository
	batchSize       int
}

func NewService(salesRepository repository.SalesRepository, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Service{
		salesRepository: salesRepository,
		batchSize:       batchSize,
	}
}

// batchWriter acumula vendas e grava um lote a cada batchSize linhas
type batchWriter struct {
	ctx      context.Context
	repo     repository.SalesRepository
	size     int
	pending  []*domain.SalesTransaction
	written  int
	progress Progress
}

func (s *Service) newBatchWriter(ctx context.Context, progress Progress) *batchWriter {
	return &batchWriter{
		ctx:      ctx,
		repo:     s.salesRepository,
		size:     s.batchSize,
		pending:  make([]*domain.SalesTransaction, 0, s.batchSize),
		progress: progress,
	}
}

func (w *batchWriter) Add(sale *domain.SalesTransaction) error {
	w.pending = append(w.pending, sale)
	if len(w.pending) < w.size {
		return nil
	}
	return w.Flush()
}

func (w *batchWriter) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	if err := w.repo.InsertBatch(w.ctx, w.pending); err != nil {
		return errors.Wrapf(ErrInsertBatch, "após %d linhas: %s", w.written, err.Error())
	}

	w.written += len(w.pending)
	w.pending = make([]*domain.SalesTransaction, 0, w.size)

	if w.progress != nil {
		w.progress(w.written)
	}

	return nil
}

// clear remove as vendas existentes antes de uma nova carga
func (s *Service) clear(ctx context.Context) error {
	logrus.Info("Limpando vendas existentes...")
	if err := s.salesRepository.DeleteAll(ctx); err != nil {
		return errors.Wrap(ErrClearSales, err.Error())
	}
	return nil
}
