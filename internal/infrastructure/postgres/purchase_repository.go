package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
// Encabezado en purchases, líneas en purchase_items.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste el encabezado y las líneas de una compra.
// Debe ejecutarse dentro de una transacción para que ambas escrituras sean atómicas.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchases (invoice_id, manufacturer_id, date, total_amount, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		purchase.InvoiceID, purchase.ManufacturerID, purchase.Date,
		purchase.TotalAmount, purchase.CreatedAt, purchase.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, item := range purchase.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_items (invoice_id, medicine_id, quantity, price_per_unit)
			VALUES ($1, $2, $3, $4)`,
			purchase.InvoiceID, item.MedicineID, item.Quantity, item.PricePerUnit,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByInvoiceID obtiene una compra con sus líneas. Retorna (nil, nil) si no existe.
func (r *PurchaseRepo) GetByInvoiceID(invoiceID string) (*entity.Purchase, error) {
	ctx := context.Background()
	var p entity.Purchase
	err := r.q.QueryRow(ctx, `
		SELECT invoice_id, manufacturer_id, date, total_amount, created_at, created_by
		FROM purchases WHERE invoice_id = $1`, invoiceID).Scan(
		&p.InvoiceID, &p.ManufacturerID, &p.Date, &p.TotalAmount, &p.CreatedAt, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT medicine_id, quantity, price_per_unit
		FROM purchase_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get purchase items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseItem
		if err := rows.Scan(&item.MedicineID, &item.Quantity, &item.PricePerUnit); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		p.Items = append(p.Items, item)
	}
	return &p, rows.Err()
}

// ListAll devuelve todas las compras con sus líneas (las consume el motor de conciliación).
// Las líneas se cargan en una sola consulta y se agrupan en memoria.
func (r *PurchaseRepo) ListAll() ([]*entity.Purchase, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT invoice_id, manufacturer_id, date, total_amount, created_at, created_by
		FROM purchases ORDER BY date, invoice_id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	byInvoice := map[string]*entity.Purchase{}
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.InvoiceID, &p.ManufacturerID, &p.Date, &p.TotalAmount, &p.CreatedAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
		byInvoice[p.InvoiceID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT invoice_id, medicine_id, quantity, price_per_unit
		FROM purchase_items`)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var invoiceID string
		var item entity.PurchaseItem
		if err := itemRows.Scan(&invoiceID, &item.MedicineID, &item.Quantity, &item.PricePerUnit); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		if p, ok := byInvoice[invoiceID]; ok {
			p.Items = append(p.Items, item)
		}
	}
	return purchases, itemRows.Err()
}
