// Package sales implementa el registro de ventas: validación de reglas de
// negocio, cálculo de valores monetarios y persistencia.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	domainsales "github.com/jhoicas/ventas-api/internal/domain/sales"
)

// SaleUseCase registra, actualiza, cancela y lista ventas.
//
// UnitPrice y CommissionPercent se congelan al crear: una actualización de
// cantidad o producto recalcula los valores con el CommissionPercent guardado
// en la venta, nunca con la tarifa vigente del vendedor.
type SaleUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso. saleRepo se usa para las
// operaciones de una sola sentencia (lecturas, cancelación); las escrituras
// con chequeos previos pasan por el TxRunner.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo}
}

// Create registra una venta. Valida cantidad y fecha, verifica que vendedor y
// producto existan y estén activos, y calcula los valores derivados:
//
//	UnitPrice         = precio del producto (snapshot)
//	TotalValue        = round2(UnitPrice * Quantity)
//	CommissionPercent = tarifa del vendedor (snapshot)
//	CommissionValue   = round2(TotalValue * CommissionPercent / 100)
//
// Todo el chequeo + insert corre dentro de una transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateID(in.SellerID); err != nil {
		return nil, err
	}
	if err := validateID(in.ProductID); err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	saleDate, err := parseSaleDate(in.SaleDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err = uc.tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		sellerRepo repository.SellerRepository,
		productRepo repository.ProductRepository,
	) error {
		seller, err := sellerRepo.GetByID(in.SellerID)
		if err != nil {
			return err
		}
		if seller == nil {
			return domain.ErrNotFound
		}
		if !seller.Active {
			return domain.ErrSellerInactive
		}

		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.Active {
			return domain.ErrProductInactive
		}

		total := domainsales.TotalValue(product.Price, in.Quantity)
		now := time.Now()
		sale = &entity.Sale{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			SellerID:          seller.ID,
			Quantity:          in.Quantity,
			UnitPrice:         product.Price,
			TotalValue:        total,
			CommissionPercent: seller.CommissionPercent,
			CommissionValue:   domainsales.Commission(total, seller.CommissionPercent),
			SaleDate:          saleDate,
			Note:              in.Note,
			Status:            entity.SaleStatusFinalized,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Update modifica una venta. Si cambian cantidad o producto, vuelve a
// consultar el producto y recalcula UnitPrice/TotalValue/CommissionValue
// reutilizando el CommissionPercent ya guardado en la venta.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if in.Status != nil && !entity.ValidSaleStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID != nil {
		if err := validateID(*in.ProductID); err != nil {
			return nil, err
		}
	}
	var saleDate *time.Time
	if in.SaleDate != nil {
		d, err := parseSaleDate(*in.SaleDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		saleDate = &d
	}

	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.SellerRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if in.Quantity != nil || in.ProductID != nil {
			productID := sale.ProductID
			if in.ProductID != nil {
				productID = *in.ProductID
			}
			product, err := productRepo.GetByID(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if in.Quantity != nil {
				sale.Quantity = *in.Quantity
			}
			sale.ProductID = product.ID
			sale.UnitPrice = product.Price
			sale.TotalValue = domainsales.TotalValue(product.Price, sale.Quantity)
			// Snapshot: se reusa el porcentaje guardado, no la tarifa vigente.
			sale.CommissionValue = domainsales.Commission(sale.TotalValue, sale.CommissionPercent)
		}
		if saleDate != nil {
			sale.SaleDate = *saleDate
		}
		if in.Note != nil {
			sale.Note = *in.Note
		}
		if in.Status != nil {
			sale.Status = *in.Status
		}
		sale.UpdatedAt = time.Now()
		return saleRepo.Update(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Cancel marca la venta como cancelada (soft delete). La fila permanece y
// deja de contar en todos los agregados de reportes.
func (uc *SaleUseCase) Cancel(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return uc.saleRepo.UpdateStatus(id, entity.SaleStatusCancelled)
}

// GetByID devuelve una venta por su ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List devuelve las ventas que cumplen los filtros, ordenadas por fecha de
// venta descendente.
func (uc *SaleUseCase) List(q dto.ListSalesQuery) (*dto.SaleListResponse, error) {
	filter := repository.SaleFilter{Status: q.Status}
	if q.SellerID != "" {
		if err := validateID(q.SellerID); err != nil {
			return nil, err
		}
		filter.SellerID = q.SellerID
	}
	if q.ProductID != "" {
		if err := validateID(q.ProductID); err != nil {
			return nil, err
		}
		filter.ProductID = q.ProductID
	}
	if q.DateFrom != "" {
		d, err := parseSaleDate(q.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateFrom = &d
	}
	if q.DateTo != "" {
		d, err := parseSaleDate(q.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateTo = &d
	}

	list, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// validateID exige el formato canónico de ID (UUID) antes de tocar la BD.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// parseSaleDate acepta RFC3339 o fecha simple YYYY-MM-DD. La fecha simple se
// interpreta en hora local, la misma zona en la que se construyen las
// ventanas de los reportes.
func parseSaleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:                s.ID,
		ProductID:         s.ProductID,
		SellerID:          s.SellerID,
		Quantity:          s.Quantity,
		UnitPrice:         s.UnitPrice,
		TotalValue:        s.TotalValue,
		CommissionPercent: s.CommissionPercent,
		CommissionValue:   s.CommissionValue,
		SaleDate:          s.SaleDate,
		Note:              s.Note,
		Status:            s.Status,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
