// seed carga clientes y fascicoli de demostración en la base de datos configurada.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Si se indica un esquema, se aplica antes de insertar. Los registros ya existentes
// (mismo número de fascicolo) se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/postgres"
	"github.com/jhoicas/gestione-fascicoli/pkg/config"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

type demoCustomer struct {
	name  string
	email string
	image string
}

var demoCustomers = []demoCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var demoTypes = []string{"civile", "penale", "amministrativo", "lavoro"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if len(os.Args) > 1 {
		schema, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("leer esquema")
		}
		if _, err := pool.Exec(ctx, string(schema)); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Str("path", os.Args[1]).Msg("esquema aplicado")
	}

	customers := postgres.NewCustomerRepository(pool)
	fascicoli := postgres.NewFascicoloRepository(pool)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	number, inserted, skipped := 1000, 0, 0
	for i, dc := range demoCustomers {
		c := &entity.Customer{ID: uuid.New().String(), Name: dc.name, Email: dc.email, ImageURL: dc.image}
		if err := customers.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("customer", dc.name).Msg("insertar cliente")
		}
		for j := 0; j <= i%3; j++ {
			number++
			f := &entity.Fascicolo{
				ID:         uuid.New().String(),
				CustomerID: c.ID,
				Type:       demoTypes[(i+j)%len(demoTypes)],
				Number:     number,
				Date:       today.AddDate(0, 0, -(i*7 + j)),
			}
			if err := fascicoli.Create(ctx, f); err != nil {
				if errors.Is(err, domain.ErrConflict) {
					skipped++
					continue
				}
				log.Fatal().Err(err).Int("number", number).Msg("insertar fascicolo")
			}
			inserted++
		}
	}

	log.Info().
		Int("customers", len(demoCustomers)).
		Int("fascicoli", inserted).
		Int("skipped", skipped).
		Msg("datos de demostración cargados")
}
