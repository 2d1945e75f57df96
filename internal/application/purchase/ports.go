package purchase

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la orden, sus líneas, los
// asientos del libro y las unidades materializadas se escriban todo-o-nada.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		ledgerRepo repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		aggRepo repository.OrderAggregateRepository,
	) error) error
}
