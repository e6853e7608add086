package material

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/erp/mockerp/internal/domain/material"
	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/erp/mockerp/internal/infrastructure/config"
)

// Service implements the material availability gateway and material
// master maintenance on top of the material repository.
type Service struct {
	repo                   material.Repository
	validPlants            map[string]struct{}
	defaultPlant           string
	defaultStorageLocation string
	defaultCurrency        string
	logger                 *zap.Logger
}

// NewService creates a material service. The first configured plant
// doubles as the default plant for master records defined without
// plant data.
func NewService(repo material.Repository, simCfg config.SimulatorConfig, logger *zap.Logger) *Service {
	validPlants := make(map[string]struct{}, len(simCfg.ValidPlants))
	for _, plant := range simCfg.ValidPlants {
		validPlants[plant] = struct{}{}
	}

	defaultPlant := ""
	if len(simCfg.ValidPlants) > 0 {
		defaultPlant = simCfg.ValidPlants[0]
	}

	return &Service{
		repo:                   repo,
		validPlants:            validPlants,
		defaultPlant:           defaultPlant,
		defaultStorageLocation: simCfg.DefaultStorageLocation,
		defaultCurrency:        simCfg.DefaultCurrency,
		logger:                 logger,
	}
}

// CheckAvailability returns the availability view for a material at a
// plant. Material existence is checked before plant configuration, so an
// unknown material at an unknown plant reports the material error.
func (s *Service) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	if req.MaterialID == "" || req.Plant == "" {
		return nil, material.ErrInvalidLookupInput()
	}

	m, err := s.repo.FindByID(ctx, req.MaterialID)
	if err != nil {
		return nil, err
	}

	view, ok := m.AvailabilityAt(req.Plant)
	if !ok {
		return nil, material.ErrPlantNotConfigured(req.MaterialID, req.Plant)
	}

	s.logger.Info("Material availability checked",
		zap.String("material_id", req.MaterialID),
		zap.String("plant", req.Plant))

	return toAvailabilityResponse(view), nil
}

// Availability is the gateway entry point used by the procurement engine
func (s *Service) Availability(ctx context.Context, materialID, plant string) (material.AvailabilityView, error) {
	if materialID == "" || plant == "" {
		return material.AvailabilityView{}, material.ErrInvalidLookupInput()
	}

	m, err := s.repo.FindByID(ctx, materialID)
	if err != nil {
		return material.AvailabilityView{}, err
	}

	view, ok := m.AvailabilityAt(plant)
	if !ok {
		return material.AvailabilityView{}, material.ErrPlantNotConfigured(materialID, plant)
	}
	return view, nil
}

// DefineMaterial creates a new material master record. Wholly-absent
// plant_data or valuation_data sections get defaults; a partially filled
// section is stored as supplied.
func (s *Service) DefineMaterial(ctx context.Context, req DefineRequest) (*DefineResponse, error) {
	if req.MaterialID == "" {
		return nil, shared.NewDomainError(material.CodeMissingIdentifier, "Missing material ID")
	}

	exists, err := s.repo.Exists(ctx, req.MaterialID)
	if err != nil {
		return nil, s.internalError("material existence check failed", err)
	}
	if exists {
		return nil, material.ErrAlreadyExists(req.MaterialID)
	}

	m, err := material.NewMaterial(req.MaterialID, req.Description, material.Type(req.Type), req.BaseUnit)
	if err != nil {
		return nil, err
	}

	for plant := range req.PlantData {
		if _, ok := s.validPlants[plant]; !ok {
			return nil, material.ErrInvalidPlant(plant)
		}
	}

	// A nil map means the section was absent from the request; an empty
	// map was supplied explicitly and is stored as-is. Defaults apply
	// only to the former.
	if req.PlantData == nil {
		if err := m.SetPlantData(s.defaultPlant, material.PlantData{
			StorageLocation: s.defaultStorageLocation,
		}); err != nil {
			return nil, s.internalError("default plant data rejected", err)
		}
	} else {
		for plant, pd := range req.PlantData {
			if err := m.SetPlantData(plant, material.PlantData{
				StorageLocation:   pd.StorageLocation,
				UnrestrictedStock: pd.UnrestrictedStock,
			}); err != nil {
				return nil, err
			}
		}
	}

	if req.Valuation == nil {
		m.SetValuation(material.Valuation{PriceUnit: 1, Currency: s.defaultCurrency})
	} else {
		m.SetValuation(material.Valuation{
			StandardPrice: req.Valuation.StandardPrice,
			PriceUnit:     req.Valuation.PriceUnit,
			Currency:      req.Valuation.Currency,
		})
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, s.internalError("material insert failed", err)
	}

	s.logger.Info("Material master created", zap.String("material_id", req.MaterialID))

	return &DefineResponse{
		MaterialID: req.MaterialID,
		Message:    "Material master created successfully",
	}, nil
}

// GetMaterial returns the full master record for a material
func (s *Service) GetMaterial(ctx context.Context, materialID string) (*MaterialResponse, error) {
	if materialID == "" {
		return nil, shared.NewDomainError(material.CodeMissingIdentifier, "Missing material ID")
	}
	m, err := s.repo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// ListMaterials returns all master records in definition order
func (s *Service) ListMaterials(ctx context.Context) ([]*MaterialResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.internalError("material list failed", err)
	}
	out := make([]*MaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

func (s *Service) internalError(msg string, err error) *shared.DomainError {
	s.logger.Error(msg, zap.Error(err))
	return shared.NewDomainError(material.CodeInternal,
		fmt.Sprintf("Material master operation failed: %v", err))
}
