package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

// exportLimit máximo de filas en la planilla del directorio.
const exportLimit = 10000

// maxAmount tope de montos: las columnas son NUMERIC(14,2).
var maxAmount = decimal.New(1, 12)

// BusinessUseCase aplica reglas de negocio para el directorio de microempresas.
type BusinessUseCase struct {
	repo      repository.BusinessRepository
	profiles  repository.ProfileRepository
	sanitizer ports.TextSanitizer
	exporter  ports.BusinessExporter
}

// NewBusinessUseCase construye el caso de uso. sanitizer y exporter pueden ser nil.
func NewBusinessUseCase(
	repo repository.BusinessRepository,
	profiles repository.ProfileRepository,
	sanitizer ports.TextSanitizer,
	exporter ports.BusinessExporter,
) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, profiles: profiles, sanitizer: sanitizer, exporter: exporter}
}

// List devuelve los negocios que cumplen los filtros, más recientes primero.
func (uc *BusinessUseCase) List(ctx context.Context, in dto.BusinessFilterRequest) (*dto.BusinessListResponse, error) {
	in.DefaultPage()
	filter := entity.BusinessFilter{
		Category: in.Category,
		Status:   in.Status,
		State:    in.State,
		District: in.District,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items, err := uc.toResponses(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.BusinessListResponse{
		Success: true,
		Count:   len(items),
		Data:    items,
		Page:    &dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListMine negocios del usuario autenticado.
func (uc *BusinessUseCase) ListMine(ctx context.Context, ownerID string) (*dto.BusinessListResponse, error) {
	list, err := uc.repo.List(ctx, entity.BusinessFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	items, err := uc.toResponses(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.BusinessListResponse{Success: true, Count: len(items), Data: items}, nil
}

// Get obtiene un negocio por ID; (nil, nil) si no existe.
func (uc *BusinessUseCase) Get(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	items, err := uc.toResponses(ctx, []*entity.Business{b})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Create registra un negocio cuyo dueño es ownerID.
func (uc *BusinessUseCase) Create(ctx context.Context, ownerID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	now := time.Now()
	b := &entity.Business{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        clean(uc.sanitizer, in.BusinessName),
		Category:    in.Category,
		Description: clean(uc.sanitizer, in.Description),
		Location:    uc.location(in.Location),
		Images:      nonNilStrings(in.Images),
		Contact:     uc.contact(in.ContactInfo),
		Investment:  investment(in.Investment),
		Employees:   1,
		StartDate:   in.StartDate,
		Status:      entity.BusinessStatusPlanning,
		Products:    uc.products(in.Products),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Employees != nil {
		b.Employees = *in.Employees
	}
	if in.Status != "" {
		b.Status = in.Status
	}
	if err := validateBusiness(b); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return uc.Get(ctx, b.ID)
}

// Update modifica un negocio. Solo el dueño o un admin pueden hacerlo.
func (uc *BusinessUseCase) Update(ctx context.Context, userID, role, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !b.CanBeModifiedBy(userID, role) {
		return nil, domain.ErrNotOwner
	}
	if in.BusinessName != nil {
		b.Name = clean(uc.sanitizer, *in.BusinessName)
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.Description != nil {
		b.Description = clean(uc.sanitizer, *in.Description)
	}
	if in.Location != nil {
		b.Location = uc.location(*in.Location)
	}
	if in.Images != nil {
		b.Images = in.Images
	}
	if in.ContactInfo != nil {
		b.Contact = uc.contact(*in.ContactInfo)
	}
	if in.Investment != nil {
		b.Investment = investment(*in.Investment)
	}
	if in.Employees != nil {
		b.Employees = *in.Employees
	}
	if in.StartDate != nil {
		b.StartDate = in.StartDate
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Products != nil {
		b.Products = uc.products(*in.Products)
	}
	if err := validateBusiness(b); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete elimina un negocio. Solo el dueño o un admin pueden hacerlo.
func (uc *BusinessUseCase) Delete(ctx context.Context, userID, role, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if !b.CanBeModifiedBy(userID, role) {
		return domain.ErrNotOwner
	}
	return uc.repo.Delete(ctx, id)
}

// Export genera la planilla XLSX del directorio con los filtros dados (sin paginar).
func (uc *BusinessUseCase) Export(ctx context.Context, in dto.BusinessFilterRequest) ([]byte, error) {
	if uc.exporter == nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, entity.BusinessFilter{
		Category: in.Category,
		Status:   in.Status,
		State:    in.State,
		District: in.District,
		Limit:    exportLimit,
	})
	if err != nil {
		return nil, err
	}
	items, err := uc.toResponses(ctx, list)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportBusinesses(items)
}

// Stats resume el directorio con los filtros dados: cantidades por categoría, estado y distrito
// y totales de inversión. Las cuatro consultas corren en paralelo.
func (uc *BusinessUseCase) Stats(ctx context.Context, in dto.BusinessFilterRequest) (*dto.BusinessStatsResponse, error) {
	filter := entity.BusinessFilter{
		Category: in.Category,
		Status:   in.Status,
		State:    in.State,
		District: in.District,
	}

	type groupResult struct {
		groups []entity.GroupCount
		err    error
	}
	type totalsResult struct {
		totals entity.InvestmentTotals
		err    error
	}

	dimensions := []string{entity.StatsByCategory, entity.StatsByStatus, entity.StatsByDistrict}
	groupChs := make([]chan groupResult, len(dimensions))
	for i, dim := range dimensions {
		ch := make(chan groupResult, 1)
		groupChs[i] = ch
		go func(dim string) {
			groups, err := uc.repo.CountBy(ctx, filter, dim)
			ch <- groupResult{groups, err}
		}(dim)
	}
	totalsCh := make(chan totalsResult, 1)
	go func() {
		t, err := uc.repo.InvestmentTotals(ctx, filter)
		totalsCh <- totalsResult{t, err}
	}()

	groups := make([][]dto.GroupCountDTO, len(dimensions))
	var firstErr error
	for i, ch := range groupChs {
		r := <-ch
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("estadísticas por %s: %w", dimensions[i], r.err)
		}
		groups[i] = toGroupCounts(r.groups)
	}
	totals := <-totalsCh
	if firstErr != nil {
		return nil, firstErr
	}
	if totals.err != nil {
		return nil, fmt.Errorf("estadísticas de inversión: %w", totals.err)
	}

	return &dto.BusinessStatsResponse{
		Success:    true,
		Total:      totals.totals.Businesses,
		Employees:  totals.totals.Employees,
		ByCategory: groups[0],
		ByStatus:   groups[1],
		ByDistrict: groups[2],
		Investment: dto.InvestmentStatsDTO{
			Required:      totals.totals.Required.Round(2),
			Raised:        totals.totals.Raised.Round(2),
			FundedPercent: fundedPercent(totals.totals.Required, totals.totals.Raised),
		},
	}, nil
}

// fundedPercent raised/required*100 con dos decimales; cero si no se requiere inversión.
func fundedPercent(required, raised decimal.Decimal) decimal.Decimal {
	if !required.IsPositive() {
		return decimal.Zero
	}
	return raised.Div(required).Mul(decimal.NewFromInt(100)).Round(2)
}

func toGroupCounts(in []entity.GroupCount) []dto.GroupCountDTO {
	out := make([]dto.GroupCountDTO, 0, len(in))
	for _, g := range in {
		out = append(out, dto.GroupCountDTO{Key: g.Key, Count: g.Count})
	}
	return out
}

// validAmount no negativo, a lo sumo dos decimales y por debajo de maxAmount.
func validAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(maxAmount) && d.Round(2).Equal(d)
}

func validateBusiness(b *entity.Business) error {
	verr := domain.NewValidationError()
	if b.Name == "" {
		verr.Add("businessName", "Please provide a business name")
	}
	if !entity.IsValidBusinessCategory(b.Category) {
		verr.Add("category", "Please provide a category")
	}
	if b.Description == "" {
		verr.Add("description", "Please provide a description")
	}
	if !entity.IsValidBusinessStatus(b.Status) {
		verr.Add("status", "Invalid status")
	}
	if b.Employees < 0 {
		verr.Add("employees", "Employees cannot be negative")
	}
	if b.Investment.Required.IsNegative() || b.Investment.Raised.IsNegative() {
		verr.Add("investment", "Investment amounts cannot be negative")
	} else if !validAmount(b.Investment.Required) || !validAmount(b.Investment.Raised) {
		verr.Add("investment", "Investment amounts must be below 1,000,000,000,000 with at most 2 decimals")
	}
	for _, p := range b.Products {
		if p.Price.IsNegative() {
			verr.Add("products", "Product price cannot be negative")
		} else if !validAmount(p.Price) {
			verr.Add("products", "Product price must be below 1,000,000,000,000 with at most 2 decimals")
		}
	}
	return verr.OrNil()
}

// toResponses mapea negocios y resuelve el resumen del dueño con una sola consulta de perfiles.
func (uc *BusinessUseCase) toResponses(ctx context.Context, list []*entity.Business) ([]dto.BusinessResponse, error) {
	items := make([]dto.BusinessResponse, 0, len(list))
	if len(list) == 0 {
		return items, nil
	}
	ids := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, b := range list {
		if !seen[b.OwnerID] {
			seen[b.OwnerID] = true
			ids = append(ids, b.OwnerID)
		}
	}
	owners, err := uc.profiles.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		items = append(items, toBusinessResponse(b, owners[b.OwnerID]))
	}
	return items, nil
}

func toBusinessResponse(b *entity.Business, owner *entity.Profile) dto.BusinessResponse {
	out := dto.BusinessResponse{
		ID:           b.ID,
		Owner:        dto.OwnerSummary{UserID: b.OwnerID},
		BusinessName: b.Name,
		Category:     b.Category,
		Description:  b.Description,
		Location: dto.LocationDTO{
			Village:  b.Location.Village,
			District: b.Location.District,
			State:    b.Location.State,
			Pincode:  b.Location.Pincode,
		},
		Images: nonNilStrings(b.Images),
		ContactInfo: dto.ContactInfoDTO{
			Phone:    b.Contact.Phone,
			Email:    b.Contact.Email,
			WhatsApp: b.Contact.WhatsApp,
		},
		Investment: dto.InvestmentDTO{Required: b.Investment.Required, Raised: b.Investment.Raised},
		Employees:  b.Employees,
		StartDate:  b.StartDate,
		Status:     b.Status,
		Products:   make([]dto.BusinessProductDTO, 0, len(b.Products)),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if owner != nil {
		out.Owner.Name = owner.Name
		out.Owner.District = owner.District
	}
	for _, p := range b.Products {
		out.Products = append(out.Products, dto.BusinessProductDTO{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Unit:        p.Unit,
			Images:      nonNilStrings(p.Images),
		})
	}
	return out
}

func (uc *BusinessUseCase) location(in dto.LocationDTO) entity.Location {
	return entity.Location{
		Village:  clean(uc.sanitizer, in.Village),
		District: clean(uc.sanitizer, in.District),
		State:    clean(uc.sanitizer, in.State),
		Pincode:  clean(uc.sanitizer, in.Pincode),
	}
}

func (uc *BusinessUseCase) contact(in dto.ContactInfoDTO) entity.ContactInfo {
	return entity.ContactInfo{
		Phone:    clean(uc.sanitizer, in.Phone),
		Email:    clean(uc.sanitizer, in.Email),
		WhatsApp: clean(uc.sanitizer, in.WhatsApp),
	}
}

func (uc *BusinessUseCase) products(in []dto.BusinessProductDTO) []entity.BusinessProduct {
	out := make([]entity.BusinessProduct, 0, len(in))
	for _, p := range in {
		out = append(out, entity.BusinessProduct{
			Name:        clean(uc.sanitizer, p.Name),
			Description: clean(uc.sanitizer, p.Description),
			Price:       p.Price,
			Unit:        clean(uc.sanitizer, p.Unit),
			Images:      nonNilStrings(p.Images),
		})
	}
	return out
}

func investment(in dto.InvestmentDTO) entity.Investment {
	return entity.Investment{Required: in.Required, Raised: in.Raised}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
