package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La verificación de vendedor/producto activo y
// la escritura de la venta forman una sola unidad de consistencia: sin la tx,
// una desactivación concurrente podría colarse entre el chequeo y el insert.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		sellerRepo repository.SellerRepository,
		productRepo repository.ProductRepository,
	) error) error
}
