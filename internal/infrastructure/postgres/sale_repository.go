package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Encabezado en sales, líneas en sale_items.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste el encabezado y las líneas de una venta.
// Debe ejecutarse dentro de una transacción para que ambas escrituras sean atómicas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (invoice_id, store_id, patient_id, total_amount, created_at, sold_by)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.InvoiceID, sale.StoreID, sale.PatientID, sale.TotalAmount, sale.CreatedAt, sale.SoldBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, item := range sale.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (invoice_id, medicine_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			sale.InvoiceID, item.MedicineID, item.Quantity, item.Price,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByInvoiceID obtiene una venta con sus líneas. Retorna (nil, nil) si no existe.
func (r *SaleRepo) GetByInvoiceID(invoiceID string) (*entity.Sale, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT invoice_id, store_id, COALESCE(patient_id, ''), total_amount, created_at, sold_by
		FROM sales WHERE invoice_id = $1`, invoiceID).Scan(
		&s.InvoiceID, &s.StoreID, &s.PatientID, &s.TotalAmount, &s.CreatedAt, &s.SoldBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT medicine_id, quantity, price FROM sale_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.MedicineID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return &s, rows.Err()
}

// ListAll devuelve todas las ventas con sus líneas (las consume el motor de conciliación).
func (r *SaleRepo) ListAll() ([]*entity.Sale, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT invoice_id, store_id, COALESCE(patient_id, ''), total_amount, created_at, sold_by
		FROM sales ORDER BY created_at, invoice_id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	byInvoice := map[string]*entity.Sale{}
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.InvoiceID, &s.StoreID, &s.PatientID, &s.TotalAmount, &s.CreatedAt, &s.SoldBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		byInvoice[s.InvoiceID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `SELECT invoice_id, medicine_id, quantity, price FROM sale_items`)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var invoiceID string
		var item entity.SaleItem
		if err := itemRows.Scan(&invoiceID, &item.MedicineID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byInvoice[invoiceID]; ok {
			s.Items = append(s.Items, item)
		}
	}
	return sales, itemRows.Err()
}
