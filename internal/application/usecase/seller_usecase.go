package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/taxid"
)

// defaultCommission tarifa de comisión aplicada cuando el alta no la indica.
var defaultCommission = decimal.NewFromInt(5)

// SellerUseCase casos de uso CRUD para vendedores.
// "Borrar" un vendedor es marcarlo inactivo; el hard delete existe aparte y
// solo debería usarse para registros creados por error.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create registra un vendedor validando unicidad de email y documento, y el
// dígito de verificación del NIT cuando viene incluido.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if in.Name == "" || in.Email == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := taxid.ValidateNIT(in.TaxID); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.repo.GetByTaxID(in.TaxID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	commission := defaultCommission
	if in.CommissionPercent != nil {
		if in.CommissionPercent.IsNegative() || in.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		commission = *in.CommissionPercent
	}
	now := time.Now()
	seller := &entity.Seller{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Email:             in.Email,
		TaxID:             in.TaxID,
		Phone:             in.Phone,
		Active:            true,
		CommissionPercent: commission,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// GetByID obtiene un vendedor por ID.
func (uc *SellerUseCase) GetByID(id string) (*dto.SellerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	return toSellerResponse(seller), nil
}

// List devuelve los vendedores ordenados por nombre; active filtra opcionalmente.
func (uc *SellerUseCase) List(active *bool) ([]dto.SellerResponse, error) {
	list, err := uc.repo.List(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return items, nil
}

// Update modifica un vendedor, validando unicidad si cambian email o documento.
// Cambiar CommissionPercent solo afecta ventas futuras: las registradas
// conservan su snapshot.
func (uc *SellerUseCase) Update(id string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != seller.Email {
		if existing, err := uc.repo.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
		seller.Email = *in.Email
	}
	if in.TaxID != nil && *in.TaxID != seller.TaxID {
		if err := taxid.ValidateNIT(*in.TaxID); err != nil {
			return nil, domain.ErrInvalidInput
		}
		if existing, err := uc.repo.GetByTaxID(*in.TaxID); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
		seller.TaxID = *in.TaxID
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	if in.Phone != nil {
		seller.Phone = *in.Phone
	}
	if in.Active != nil {
		seller.Active = *in.Active
	}
	if in.CommissionPercent != nil {
		if in.CommissionPercent.IsNegative() || in.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		seller.CommissionPercent = *in.CommissionPercent
	}
	seller.UpdatedAt = time.Now()
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// Deactivate marca el vendedor como inactivo (soft delete).
func (uc *SellerUseCase) Deactivate(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetActive(id, false)
}

// HardDelete elimina físicamente el registro.
func (uc *SellerUseCase) HardDelete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		ID:                s.ID,
		Name:              s.Name,
		Email:             s.Email,
		TaxID:             s.TaxID,
		Phone:             s.Phone,
		Active:            s.Active,
		CommissionPercent: s.CommissionPercent,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
