package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gramin-udyami-api/pkg/config"
)

// Tamaño del pool y tiempos de vida de conexión.
const (
	poolMaxConns        = 25
	poolMinConns        = 2
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdleTime = 30 * time.Minute
	poolHealthCheck     = time.Minute
	pingTimeout         = 2 * time.Second
)

var errNoIPv4 = errors.New("el host no tiene dirección IPv4")

// NewPool abre el pool de PostgreSQL (DATABASE_URL o DB_HOST/DB_PORT/...) y comprueba la conexión.
// Registra el codec NUMERIC -> shopspring/decimal para montos de inversión y precios.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.LookupFunc = ipv4Lookup{fallbackDNS: cfg.FallbackDNS}.LookupHost
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheck

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Ping verifica la conexión con un timeout corto; lo usa GET /health.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return pool.Ping(ctx)
}

// ipv4Lookup reemplaza el resolver de pgconn y devuelve solo direcciones IPv4.
// Dentro de Docker el DNS del contenedor puede devolver solo AAAA; en ese caso se
// pregunta a fallbackDNS.
type ipv4Lookup struct {
	fallbackDNS string
}

func (l ipv4Lookup) LookupHost(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return nil, fmt.Errorf("%s: %w", host, errNoIPv4)
		}
		return []string{host}, nil
	}

	addrs, err := lookupIPv4(ctx, net.DefaultResolver, host)
	if err == nil || l.fallbackDNS == "" {
		return addrs, err
	}
	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", l.fallbackDNS)
		},
	}
	return lookupIPv4(ctx, fallback, host)
}

func lookupIPv4(ctx context.Context, r *net.Resolver, host string) ([]string, error) {
	ips, err := r.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		if ip.To4() != nil {
			out = append(out, ip.String())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", host, errNoIPv4)
	}
	return out, nil
}
