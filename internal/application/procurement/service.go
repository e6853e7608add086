package procurement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/erp/mockerp/internal/domain/material"
	"github.com/erp/mockerp/internal/domain/procurement"
	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/erp/mockerp/internal/infrastructure/config"
)

// MaterialGateway checks material availability for a plant. Gateway
// failures surface under the requisition error class; only the message
// carries the gateway's specificity.
type MaterialGateway interface {
	Availability(ctx context.Context, materialID, plant string) (material.AvailabilityView, error)
}

// Service is the procure-to-pay lifecycle engine: requisition creation,
// order creation and document status queries over the document store.
type Service struct {
	store        procurement.DocumentRepository
	gateway      MaterialGateway
	validPlants  map[string]struct{}
	validVendors map[string]struct{}
	logger       *zap.Logger
}

// NewService creates the lifecycle engine
func NewService(store procurement.DocumentRepository, gateway MaterialGateway, simCfg config.SimulatorConfig, logger *zap.Logger) *Service {
	validPlants := make(map[string]struct{}, len(simCfg.ValidPlants))
	for _, plant := range simCfg.ValidPlants {
		validPlants[plant] = struct{}{}
	}
	validVendors := make(map[string]struct{}, len(simCfg.ValidVendors))
	for _, vendor := range simCfg.ValidVendors {
		validVendors[vendor] = struct{}{}
	}

	return &Service{
		store:        store,
		gateway:      gateway,
		validPlants:  validPlants,
		validVendors: validVendors,
		logger:       logger,
	}
}

// CreateRequisition validates and creates a purchase requisition.
// Validation order is fixed: field presence, quantity, plant, then the
// material gateway. A requisition that clears all four is stored with a
// point-in-time material snapshot and a freshly assigned number.
func (s *Service) CreateRequisition(ctx context.Context, req CreateRequisitionRequest) (*CreateRequisitionResponse, error) {
	var missing []string
	if req.MaterialID == "" {
		missing = append(missing, "material_id")
	}
	if req.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if req.DeliveryDate == "" {
		missing = append(missing, "delivery_date")
	}
	if req.Plant == "" {
		missing = append(missing, "plant")
	}
	if len(missing) > 0 {
		return nil, procurement.ErrPRMissingFields(missing)
	}

	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, procurement.ErrInvalidQuantity()
	}

	if _, ok := s.validPlants[req.Plant]; !ok {
		return nil, procurement.ErrPlantNotFound(req.Plant)
	}

	snapshot, err := s.gateway.Availability(ctx, req.MaterialID, req.Plant)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, procurement.ErrMaterialInvalid(domainErr.Message)
		}
		return nil, s.internalError(procurement.CodePRInternal, "material availability check failed", err)
	}

	pr, err := procurement.NewPurchaseRequisition(req.MaterialID, *req.Quantity, req.DeliveryDate, req.Plant, snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertRequisition(ctx, pr); err != nil {
		return nil, s.internalError(procurement.CodePRInternal, "requisition insert failed", err)
	}

	s.logger.Info("Purchase Requisition created", zap.String("pr_number", pr.Number))

	return &CreateRequisitionResponse{
		PRNumber: pr.Number,
		Status:   pr.Status.String(),
	}, nil
}

// CreateOrder validates and creates a purchase order from a requisition.
// Validation order is fixed: field presence, requisition existence,
// vendor, then requisition status. The store insert atomically assigns
// the number and flips the requisition to ORDERED.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	var missing []string
	if req.PRNumber == "" {
		missing = append(missing, "pr_number")
	}
	if req.VendorID == "" {
		missing = append(missing, "vendor_id")
	}
	if len(missing) > 0 {
		return nil, procurement.ErrPOMissingFields(missing)
	}

	pr, err := s.store.FindRequisition(ctx, req.PRNumber)
	if err != nil {
		return nil, procurement.ErrPRNotFound(req.PRNumber)
	}

	if _, ok := s.validVendors[req.VendorID]; !ok {
		return nil, procurement.ErrVendorNotFound(req.VendorID)
	}

	if pr.IsOrdered() {
		return nil, procurement.ErrAlreadyOrdered(req.PRNumber)
	}

	po, err := procurement.NewPurchaseOrder(pr, req.VendorID, req.DeliveryDate)
	if err != nil {
		return nil, s.internalError(procurement.CodePOInternal, "order construction failed", err)
	}

	if err := s.store.InsertOrder(ctx, po); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, s.internalError(procurement.CodePOInternal, "order insert failed", err)
	}

	s.logger.Info("Purchase Order created",
		zap.String("po_number", po.Number),
		zap.String("pr_number", po.RequisitionNumber))

	return &CreateOrderResponse{
		PONumber: po.Number,
		Status:   po.Status.String(),
	}, nil
}

// QueryStatus reports the status of a requisition or order. The document
// type is case-insensitive; the query never mutates state, so repeated
// queries for the same document always agree.
func (s *Service) QueryStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error) {
	docType := procurement.DocumentType(strings.ToUpper(req.DocumentType))
	if !docType.IsValid() {
		return nil, procurement.ErrInvalidDocumentType(req.DocumentType)
	}

	switch docType {
	case procurement.DocumentTypeRequisition:
		pr, err := s.store.FindRequisition(ctx, req.DocumentNumber)
		if err != nil {
			return nil, err
		}
		return &StatusResponse{
			DocumentNumber: pr.Number,
			DocumentType:   docType.String(),
			Status:         pr.Status.String(),
			CreatedAt:      formatTimestamp(pr.CreatedAt),
		}, nil
	default:
		po, err := s.store.FindOrder(ctx, req.DocumentNumber)
		if err != nil {
			return nil, err
		}
		return &StatusResponse{
			DocumentNumber: po.Number,
			DocumentType:   docType.String(),
			Status:         po.Status.String(),
			CreatedAt:      formatTimestamp(po.CreatedAt),
		}, nil
	}
}

// GetRequisition returns the full requisition record
func (s *Service) GetRequisition(ctx context.Context, number string) (*RequisitionView, error) {
	pr, err := s.store.FindRequisition(ctx, number)
	if err != nil {
		return nil, err
	}
	return toRequisitionView(pr), nil
}

// GetOrder returns the full order record
func (s *Service) GetOrder(ctx context.Context, number string) (*OrderView, error) {
	po, err := s.store.FindOrder(ctx, number)
	if err != nil {
		return nil, err
	}
	return toOrderView(po), nil
}

// ListRequisitions returns all requisitions in creation order
func (s *Service) ListRequisitions(ctx context.Context) ([]*RequisitionView, error) {
	items, err := s.store.ListRequisitions(ctx)
	if err != nil {
		return nil, s.internalError(procurement.CodeDocInternal, "requisition list failed", err)
	}
	out := make([]*RequisitionView, 0, len(items))
	for _, pr := range items {
		out = append(out, toRequisitionView(pr))
	}
	return out, nil
}

// ListOrders returns all orders in creation order
func (s *Service) ListOrders(ctx context.Context) ([]*OrderView, error) {
	items, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, s.internalError(procurement.CodeDocInternal, "order list failed", err)
	}
	out := make([]*OrderView, 0, len(items))
	for _, po := range items {
		out = append(out, toOrderView(po))
	}
	return out, nil
}

// Reset clears all procure-to-pay documents and number sequences
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return s.internalError(procurement.CodeDocInternal, "document store reset failed", err)
	}
	s.logger.Info("Document store reset")
	return nil
}

func (s *Service) internalError(code, msg string, err error) *shared.DomainError {
	s.logger.Error(msg, zap.Error(err))
	return shared.NewDomainError(code, fmt.Sprintf("%s: %v", msg, err))
}
