// Package mongo implementa el directorio de negocios sobre MongoDB, alternativa a PostgreSQL
// seleccionada con BUSINESS_STORE=mongo.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/gramin-udyami-api/pkg/config"
)

// Connect abre el cliente y verifica la conexión con ping al primario.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MONGO_URI vacío")
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(25).
		SetMinPoolSize(2).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
