package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessCollection nombre de la colección.
const BusinessCollection = "businesses"

type locationDoc struct {
	Village  string `bson:"village"`
	District string `bson:"district"`
	State    string `bson:"state"`
	Pincode  string `bson:"pincode"`
}

type contactDoc struct {
	Phone    string `bson:"phone"`
	Email    string `bson:"email"`
	WhatsApp string `bson:"whatsapp"`
}

type investmentDoc struct {
	Required primitive.Decimal128 `bson:"required"`
	Raised   primitive.Decimal128 `bson:"raised"`
}

type productDoc struct {
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Unit        string               `bson:"unit"`
	Images      []string             `bson:"images"`
}

// businessDoc forma persistida; los montos van como Decimal128.
type businessDoc struct {
	ID          string        `bson:"_id"`
	OwnerID     string        `bson:"owner_id"`
	Name        string        `bson:"business_name"`
	Category    string        `bson:"category"`
	Description string        `bson:"description"`
	Location    locationDoc   `bson:"location"`
	Images      []string      `bson:"images"`
	Contact     contactDoc    `bson:"contact_info"`
	Investment  investmentDoc `bson:"investment"`
	Employees   int           `bson:"employees"`
	StartDate   *time.Time    `bson:"start_date,omitempty"`
	Status      string        `bson:"status"`
	Products    []productDoc  `bson:"products"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

// BusinessRepo implementación de BusinessRepository sobre MongoDB.
type BusinessRepo struct {
	coll *mongo.Collection
}

// NewBusinessRepository construye el adaptador sobre db.businesses.
func NewBusinessRepository(db *mongo.Database) *BusinessRepo {
	return &BusinessRepo{coll: db.Collection(BusinessCollection)}
}

// EnsureIndexes crea los índices de filtros y orden del listado.
func (r *BusinessRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location.state", Value: 1}, {Key: "location.district", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("crear índices businesses: %w", err)
	}
	return nil
}

// Create inserta el negocio. domain.ErrDuplicate si el _id ya existe.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	doc, err := toDoc(b)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio; (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	var doc businessDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return fromDoc(&doc)
}

// Update reemplaza el documento completo.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	doc, err := toDoc(b)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": b.ID}, doc)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un negocio.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List negocios filtrados, más recientes primero. Limit 0 no limita.
func (r *BusinessRepo) List(ctx context.Context, f entity.BusinessFilter) ([]*entity.Business, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Offset > 0 {
		opts.SetSkip(int64(f.Offset))
	}
	cur, err := r.coll.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Business
	for cur.Next(ctx) {
		var doc businessDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode business: %w", err)
		}
		b, err := fromDoc(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// Count total de negocios que cumplen el filtro.
func (r *BusinessRepo) Count(ctx context.Context, f entity.BusinessFilter) (int, error) {
	n, err := r.coll.CountDocuments(ctx, filterDoc(f))
	if err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return int(n), nil
}

var statsFields = map[string]string{
	entity.StatsByCategory: "$category",
	entity.StatsByStatus:   "$status",
	entity.StatsByDistrict: "$location.district",
}

// CountBy agrupa con $group por categoría, estado o distrito.
func (r *BusinessRepo) CountBy(ctx context.Context, f entity.BusinessFilter, dimension string) ([]entity.GroupCount, error) {
	field, ok := statsFields[dimension]
	if !ok {
		return nil, fmt.Errorf("dimensión de estadísticas desconocida: %q", dimension)
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filterDoc(f)}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: field}, {Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "n", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("stats.CountBy %s: %w", dimension, err)
	}
	defer cur.Close(ctx)
	out := []entity.GroupCount{}
	for cur.Next(ctx) {
		var row struct {
			Key string `bson:"_id"`
			N   int64  `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("stats.CountBy decode: %w", err)
		}
		out = append(out, entity.GroupCount{Key: row.Key, Count: int(row.N)})
	}
	return out, cur.Err()
}

// InvestmentTotals suma los Decimal128 de inversión en el servidor.
func (r *BusinessRepo) InvestmentTotals(ctx context.Context, f entity.BusinessFilter) (entity.InvestmentTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filterDoc(f)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "businesses", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "required", Value: bson.D{{Key: "$sum", Value: "$investment.required"}}},
			{Key: "raised", Value: bson.D{{Key: "$sum", Value: "$investment.raised"}}},
			{Key: "employees", Value: bson.D{{Key: "$sum", Value: "$employees"}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return entity.InvestmentTotals{}, fmt.Errorf("stats.InvestmentTotals: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		Businesses int64                `bson:"businesses"`
		Required   primitive.Decimal128 `bson:"required"`
		Raised     primitive.Decimal128 `bson:"raised"`
		Employees  int64                `bson:"employees"`
	}
	// sin documentos no hay grupo: totales en cero
	if !cur.Next(ctx) {
		return entity.InvestmentTotals{Required: decimal.Zero, Raised: decimal.Zero}, cur.Err()
	}
	if err := cur.Decode(&row); err != nil {
		return entity.InvestmentTotals{}, fmt.Errorf("stats.InvestmentTotals decode: %w", err)
	}
	required, err := fromDecimal128(row.Required)
	if err != nil {
		return entity.InvestmentTotals{}, fmt.Errorf("decode required: %w", err)
	}
	raised, err := fromDecimal128(row.Raised)
	if err != nil {
		return entity.InvestmentTotals{}, fmt.Errorf("decode raised: %w", err)
	}
	return entity.InvestmentTotals{
		Businesses: int(row.Businesses),
		Required:   required,
		Raised:     raised,
		Employees:  int(row.Employees),
	}, nil
}

func filterDoc(f entity.BusinessFilter) bson.M {
	q := bson.M{}
	if f.OwnerID != "" {
		q["owner_id"] = f.OwnerID
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.State != "" {
		q["location.state"] = f.State
	}
	if f.District != "" {
		q["location.district"] = f.District
	}
	return q
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("monto %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	if v.IsZero() {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v.String())
}

func toDoc(b *entity.Business) (*businessDoc, error) {
	required, err := toDecimal128(b.Investment.Required)
	if err != nil {
		return nil, err
	}
	raised, err := toDecimal128(b.Investment.Raised)
	if err != nil {
		return nil, err
	}
	doc := &businessDoc{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Category:    b.Category,
		Description: b.Description,
		Location: locationDoc{
			Village: b.Location.Village, District: b.Location.District,
			State: b.Location.State, Pincode: b.Location.Pincode,
		},
		Images:     nonNil(b.Images),
		Contact:    contactDoc{Phone: b.Contact.Phone, Email: b.Contact.Email, WhatsApp: b.Contact.WhatsApp},
		Investment: investmentDoc{Required: required, Raised: raised},
		Employees:  b.Employees,
		StartDate:  b.StartDate,
		Status:     b.Status,
		Products:   make([]productDoc, 0, len(b.Products)),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	for _, p := range b.Products {
		price, err := toDecimal128(p.Price)
		if err != nil {
			return nil, err
		}
		doc.Products = append(doc.Products, productDoc{
			Name: p.Name, Description: p.Description, Price: price, Unit: p.Unit, Images: nonNil(p.Images),
		})
	}
	return doc, nil
}

func fromDoc(doc *businessDoc) (*entity.Business, error) {
	required, err := fromDecimal128(doc.Investment.Required)
	if err != nil {
		return nil, fmt.Errorf("decode investment.required: %w", err)
	}
	raised, err := fromDecimal128(doc.Investment.Raised)
	if err != nil {
		return nil, fmt.Errorf("decode investment.raised: %w", err)
	}
	b := &entity.Business{
		ID:          doc.ID,
		OwnerID:     doc.OwnerID,
		Name:        doc.Name,
		Category:    doc.Category,
		Description: doc.Description,
		Location: entity.Location{
			Village: doc.Location.Village, District: doc.Location.District,
			State: doc.Location.State, Pincode: doc.Location.Pincode,
		},
		Images:     nonNil(doc.Images),
		Contact:    entity.ContactInfo{Phone: doc.Contact.Phone, Email: doc.Contact.Email, WhatsApp: doc.Contact.WhatsApp},
		Investment: entity.Investment{Required: required, Raised: raised},
		Employees:  doc.Employees,
		StartDate:  doc.StartDate,
		Status:     doc.Status,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	for _, p := range doc.Products {
		price, err := fromDecimal128(p.Price)
		if err != nil {
			return nil, fmt.Errorf("decode product price: %w", err)
		}
		b.Products = append(b.Products, entity.BusinessProduct{
			Name: p.Name, Description: p.Description, Price: price, Unit: p.Unit, Images: nonNil(p.Images),
		})
	}
	return b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
