package orders

import (
	"github.com/shopspring/decimal"

	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// adjustStock aplica un delta con signo sobre un registro de stock bajo
// bloqueo de fila (SELECT FOR UPDATE). Si el resultado sería negativo no
// escribe nada y devuelve InsufficientStockError. Toca exactamente una fila.
func adjustStock(stockRepo repository.StockRecordRepository, stockRecordID string, delta decimal.Decimal) error {
	stock, err := stockRepo.GetForUpdate(stockRecordID)
	if err != nil {
		return err
	}
	if stock == nil || !stock.Active {
		return domain.NewNotFound("Stock", stockRecordID)
	}
	newAmount := stock.AmountInStock.Add(delta)
	if newAmount.IsNegative() {
		return &domain.InsufficientStockError{
			Storehouse: stock.StorehouseName,
			Product:    stock.ProductName,
			Available:  stock.AmountInStock,
			Requested:  delta.Abs(),
		}
	}
	return stockRepo.UpdateAmount(stock.ID, newAmount)
}
