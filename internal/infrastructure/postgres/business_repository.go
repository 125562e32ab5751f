package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, owner_id, name, category, description,
	village, district, state, pincode, images, phone, email, whatsapp,
	investment_required, investment_raised, employees, start_date, status, products,
	created_at, updated_at`

// BusinessRepo implementación de BusinessRepository sobre PostgreSQL.
// Los productos se guardan como JSONB; los montos como NUMERIC (shopspring/decimal).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de negocios. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	products, err := json.Marshal(nonNilProducts(b.Products))
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = r.q.Exec(ctx, query,
		b.ID, b.OwnerID, b.Name, b.Category, b.Description,
		b.Location.Village, b.Location.District, b.Location.State, b.Location.Pincode,
		nonNil(b.Images), b.Contact.Phone, b.Contact.Email, b.Contact.WhatsApp,
		b.Investment.Required, b.Investment.Raised, b.Employees, b.StartDate, b.Status, products,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio; (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

// Update reemplaza los campos editables.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	products, err := json.Marshal(nonNilProducts(b.Products))
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	query := `
		UPDATE businesses SET
			name = $2, category = $3, description = $4,
			village = $5, district = $6, state = $7, pincode = $8,
			images = $9, phone = $10, email = $11, whatsapp = $12,
			investment_required = $13, investment_raised = $14, employees = $15,
			start_date = $16, status = $17, products = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Category, b.Description,
		b.Location.Village, b.Location.District, b.Location.State, b.Location.Pincode,
		nonNil(b.Images), b.Contact.Phone, b.Contact.Email, b.Contact.WhatsApp,
		b.Investment.Required, b.Investment.Raised, b.Employees,
		b.StartDate, b.Status, products, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un negocio.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List negocios filtrados, más recientes primero. Limit 0 no limita.
func (r *BusinessRepo) List(ctx context.Context, f entity.BusinessFilter) ([]*entity.Business, error) {
	where, args := businessWhere(f)
	query := `SELECT ` + businessColumns + ` FROM businesses` + where + ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var out []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Count total de negocios que cumplen el filtro (ignora Limit/Offset).
func (r *BusinessRepo) Count(ctx context.Context, f entity.BusinessFilter) (int, error) {
	where, args := businessWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM businesses`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return n, nil
}

// statsColumns columnas permitidas en GROUP BY; la dimensión nunca se interpola sin pasar por aquí.
var statsColumns = map[string]string{
	entity.StatsByCategory: "category",
	entity.StatsByStatus:   "status",
	entity.StatsByDistrict: "district",
}

// CountBy cuenta negocios agrupados por categoría, estado o distrito.
func (r *BusinessRepo) CountBy(ctx context.Context, f entity.BusinessFilter, dimension string) ([]entity.GroupCount, error) {
	col, ok := statsColumns[dimension]
	if !ok {
		return nil, fmt.Errorf("dimensión de estadísticas desconocida: %q", dimension)
	}
	where, args := businessWhere(f)
	query := `
	SELECT ` + col + ` AS key, COUNT(*) AS n
	FROM businesses` + where + `
	GROUP BY ` + col + `
	ORDER BY n DESC, key`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats.CountBy %s: %w", dimension, err)
	}
	defer rows.Close()
	out := []entity.GroupCount{}
	for rows.Next() {
		var g entity.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("stats.CountBy scan: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// InvestmentTotals suma inversión requerida, recaudada y empleados. COALESCE devuelve cero sin filas.
func (r *BusinessRepo) InvestmentTotals(ctx context.Context, f entity.BusinessFilter) (entity.InvestmentTotals, error) {
	where, args := businessWhere(f)
	query := `
	SELECT
	    COUNT(*)                                 AS businesses,
	    COALESCE(SUM(investment_required), 0)    AS required,
	    COALESCE(SUM(investment_raised),   0)    AS raised,
	    COALESCE(SUM(employees),           0)    AS employees
	FROM businesses` + where
	var t entity.InvestmentTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Businesses, &t.Required, &t.Raised, &t.Employees); err != nil {
		return entity.InvestmentTotals{}, fmt.Errorf("stats.InvestmentTotals: %w", err)
	}
	return t, nil
}

func businessWhere(f entity.BusinessFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	add("owner_id", f.OwnerID)
	add("category", f.Category)
	add("status", f.Status)
	add("state", f.State)
	add("district", f.District)
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanBusiness(row pgxScanner) (*entity.Business, error) {
	var b entity.Business
	var products []byte
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.Description,
		&b.Location.Village, &b.Location.District, &b.Location.State, &b.Location.Pincode,
		&b.Images, &b.Contact.Phone, &b.Contact.Email, &b.Contact.WhatsApp,
		&b.Investment.Required, &b.Investment.Raised, &b.Employees, &b.StartDate, &b.Status, &products,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &b.Products); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
	}
	return &b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilProducts(p []entity.BusinessProduct) []entity.BusinessProduct {
	if p == nil {
		return []entity.BusinessProduct{}
	}
	return p
}
