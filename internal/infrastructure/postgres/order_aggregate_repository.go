package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.OrderAggregateRepository = (*OrderAggregateRepo)(nil)

// OrderAggregateRepo agregaciones de órdenes sobre PostgreSQL.
//
// Los métodos List* lanzan el conteo y la página como dos lecturas
// concurrentes (errgroup) sin snapshot compartido: bajo escrituras
// concurrentes pueden diferir entre sí, aceptable para listados best effort.
// Por eso mismo los List* deben usarse con un repo atado al pool, nunca a una
// tx (una tx pgx es una sola conexión y no admite consultas concurrentes).
type OrderAggregateRepo struct {
	q Querier
}

// NewOrderAggregateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderAggregateRepository(q Querier) *OrderAggregateRepo {
	return &OrderAggregateRepo{q: q}
}

// AggregatePurchase totales de una compra. La consulta agrupada por id debe
// devolver exactamente una fila; cualquier otra cosa es inconsistencia de
// almacenamiento y se responde ErrInternalAggregation.
func (r *OrderAggregateRepo) AggregatePurchase(purchaseID int64) (entity.OrderTotals, error) {
	query := `
		SELECT SUM(price * quantity)::bigint AS total_price, SUM(quantity)::int AS total_units
		FROM purchase_item
		WHERE purchase_id = $1
		GROUP BY purchase_id`
	return r.aggregateOne(query, purchaseID)
}

// AggregateSaleOrder totales de una venta; mismo contrato que AggregatePurchase.
func (r *OrderAggregateRepo) AggregateSaleOrder(saleOrderID int64) (entity.OrderTotals, error) {
	query := `
		SELECT SUM(price * quantity)::bigint AS total_price, SUM(quantity)::int AS total_units
		FROM sale_order_item
		WHERE sale_order_id = $1
		GROUP BY sale_order_id`
	return r.aggregateOne(query, saleOrderID)
}

func (r *OrderAggregateRepo) aggregateOne(query string, orderID int64) (entity.OrderTotals, error) {
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return entity.OrderTotals{}, fmt.Errorf("aggregate order: %w", err)
	}
	defer rows.Close()

	var totals entity.OrderTotals
	n := 0
	for rows.Next() {
		if err := rows.Scan(&totals.TotalPrice, &totals.TotalUnits); err != nil {
			return entity.OrderTotals{}, fmt.Errorf("scan order totals: %w", err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return entity.OrderTotals{}, fmt.Errorf("aggregate order: %w", err)
	}
	if n != 1 {
		return entity.OrderTotals{}, fmt.Errorf("aggregate order %d devolvió %d filas: %w", orderID, n, domain.ErrInternalAggregation)
	}
	return totals, nil
}

// ListPurchases página de resúmenes por id descendente más el conteo total.
func (r *OrderAggregateRepo) ListPurchases(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error) {
	pageQuery := `
		SELECT sub.order_id, sub.total_price, sub.total_units, o.note, '' AS status, o.created, o.modified
		FROM (
			SELECT purchase_id AS order_id, SUM(price * quantity)::bigint AS total_price, SUM(quantity)::int AS total_units
			FROM purchase_item
			%s
			GROUP BY purchase_id
			ORDER BY purchase_id DESC
			LIMIT $%d OFFSET $%d) AS sub
		INNER JOIN purchase o ON sub.order_id = o.id
		ORDER BY sub.order_id DESC`
	countQuery := `SELECT COUNT(*)::int FROM purchase %s`
	return r.list(pageQuery, countQuery, "purchase_id", ids, limit, offset)
}

// ListSaleOrders página de resúmenes por id descendente más el conteo total.
func (r *OrderAggregateRepo) ListSaleOrders(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error) {
	pageQuery := `
		SELECT sub.order_id, sub.total_price, sub.total_units, o.note, o.status, o.created, o.modified
		FROM (
			SELECT sale_order_id AS order_id, SUM(price * quantity)::bigint AS total_price, SUM(quantity)::int AS total_units
			FROM sale_order_item
			%s
			GROUP BY sale_order_id
			ORDER BY sale_order_id DESC
			LIMIT $%d OFFSET $%d) AS sub
		INNER JOIN sale_order o ON sub.order_id = o.id
		ORDER BY sub.order_id DESC`
	countQuery := `SELECT COUNT(*)::int FROM sale_order %s`
	return r.list(pageQuery, countQuery, "sale_order_id", ids, limit, offset)
}

func (r *OrderAggregateRepo) list(pageQuery, countQuery, idColumn string, ids []int64, limit, offset int) ([]entity.OrderSummary, int, error) {
	var (
		pageSQL   string
		pageArgs  []any
		countSQL  string
		countArgs []any
	)
	if len(ids) == 0 {
		pageSQL = fmt.Sprintf(pageQuery, "", 1, 2)
		pageArgs = []any{limit, offset}
		countSQL = fmt.Sprintf(countQuery, "")
	} else {
		where := fmt.Sprintf("WHERE %s = ANY($1)", idColumn)
		pageSQL = fmt.Sprintf(pageQuery, where, 2, 3)
		pageArgs = []any{ids, limit, offset}
		countSQL = fmt.Sprintf(countQuery, "WHERE id = ANY($1)")
		countArgs = []any{ids}
	}

	var (
		summaries []entity.OrderSummary
		total     int
	)
	// Conteo y página en paralelo; ambas lecturas salen del pool por separado.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		rows, err := r.q.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var s entity.OrderSummary
			var note *string
			var status string
			if err := rows.Scan(&s.ID, &s.TotalPrice, &s.TotalUnits, &note, &status, &s.Created, &s.Modified); err != nil {
				return fmt.Errorf("scan order summary: %w", err)
			}
			s.Note = orEmpty(note)
			s.Status = entity.SaleOrderStatus(status)
			summaries = append(summaries, s)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}
