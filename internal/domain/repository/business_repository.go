package repository

import (
	"context"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para negocios.
// Lo implementan PostgreSQL y MongoDB; List ordena por created_at descendente.
// CountBy agrupa por una de las dimensiones entity.StatsBy* ordenando por cantidad descendente
// y luego por clave; Limit y Offset del filtro se ignoran en los agregados.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entity.BusinessFilter) ([]*entity.Business, error)
	Count(ctx context.Context, filter entity.BusinessFilter) (int, error)
	CountBy(ctx context.Context, filter entity.BusinessFilter, dimension string) ([]entity.GroupCount, error)
	InvestmentTotals(ctx context.Context, filter entity.BusinessFilter) (entity.InvestmentTotals, error)
}
