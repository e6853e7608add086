package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/erp/mockerp/internal/domain/procurement"
)

const (
	requisitionNumberPrefix = "PR"
	orderNumberPrefix       = "PO"
)

// DocumentStore is an in-memory implementation of
// procurement.DocumentRepository. A single mutex guards both collections
// and both counters so order insertion, which touches an order and a
// requisition at once, is atomic to every reader.
//
// The counters advance independently of collection size; a reset zeroes
// them, but nothing else ever decrements them, so numbers are never
// reissued within a run.
type DocumentStore struct {
	mu sync.Mutex

	requisitions map[string]*procurement.PurchaseRequisition
	orders       map[string]*procurement.PurchaseOrder

	requisitionOrder []string
	orderOrder       []string

	requisitionSeq uint64
	orderSeq       uint64
}

// NewDocumentStore creates an empty in-memory document store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		requisitions: make(map[string]*procurement.PurchaseRequisition),
		orders:       make(map[string]*procurement.PurchaseOrder),
	}
}

// InsertRequisition assigns the next requisition number and stores the record
func (s *DocumentStore) InsertRequisition(_ context.Context, pr *procurement.PurchaseRequisition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requisitionSeq++
	pr.Number = formatNumber(requisitionNumberPrefix, s.requisitionSeq)

	stored := *pr
	s.requisitions[pr.Number] = &stored
	s.requisitionOrder = append(s.requisitionOrder, pr.Number)
	return nil
}

// InsertOrder atomically assigns the next order number, stores the order
// and marks the referenced requisition ORDERED. The requisition checks
// run again under the lock; the engine's pre-validation can race with a
// concurrent order against the same requisition.
func (s *DocumentStore) InsertOrder(_ context.Context, po *procurement.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pr, ok := s.requisitions[po.RequisitionNumber]
	if !ok {
		return procurement.ErrPRNotFound(po.RequisitionNumber)
	}
	if err := pr.MarkOrdered(); err != nil {
		return err
	}

	s.orderSeq++
	po.Number = formatNumber(orderNumberPrefix, s.orderSeq)

	stored := *po
	s.orders[po.Number] = &stored
	s.orderOrder = append(s.orderOrder, po.Number)
	return nil
}

// FindRequisition returns a copy of the requisition with the given number
func (s *DocumentStore) FindRequisition(_ context.Context, number string) (*procurement.PurchaseRequisition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pr, ok := s.requisitions[number]
	if !ok {
		return nil, procurement.ErrDocumentNotFound(number)
	}
	out := *pr
	return &out, nil
}

// FindOrder returns a copy of the order with the given number
func (s *DocumentStore) FindOrder(_ context.Context, number string) (*procurement.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[number]
	if !ok {
		return nil, procurement.ErrDocumentNotFound(number)
	}
	out := *po
	return &out, nil
}

// ListRequisitions returns copies of all requisitions in creation order
func (s *DocumentStore) ListRequisitions(_ context.Context) ([]*procurement.PurchaseRequisition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*procurement.PurchaseRequisition, 0, len(s.requisitionOrder))
	for _, number := range s.requisitionOrder {
		pr := *s.requisitions[number]
		out = append(out, &pr)
	}
	return out, nil
}

// ListOrders returns copies of all orders in creation order
func (s *DocumentStore) ListOrders(_ context.Context) ([]*procurement.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*procurement.PurchaseOrder, 0, len(s.orderOrder))
	for _, number := range s.orderOrder {
		po := *s.orders[number]
		out = append(out, &po)
	}
	return out, nil
}

// Reset clears both collections and both number sequences
func (s *DocumentStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requisitions = make(map[string]*procurement.PurchaseRequisition)
	s.orders = make(map[string]*procurement.PurchaseOrder)
	s.requisitionOrder = nil
	s.orderOrder = nil
	s.requisitionSeq = 0
	s.orderSeq = 0
	return nil
}

// formatNumber renders a document number as the prefix followed by the
// sequence value zero-padded to ten digits, e.g. PR0000000001.
func formatNumber(prefix string, seq uint64) string {
	return fmt.Sprintf("%s%010d", prefix, seq)
}
