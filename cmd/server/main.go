// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"biblioteca/internal/catalog"
	"biblioteca/internal/circulation"
	"biblioteca/internal/membership"
	"biblioteca/internal/notify"
	platformotel "biblioteca/internal/platform/otel"
	"biblioteca/internal/server"
)

type config struct {
	Addr         string  `env:"ADDR" envDefault:":8080"`
	JWTSecret    string  `env:"JWT_SECRET" envDefault:"dev_secret_change_in_prod"`
	OTELEndpoint string  `env:"OTEL_ENDPOINT"`
	NotifyPerSec float64 `env:"NOTIFY_PER_SEC" envDefault:"10"`
	NotifyBurst  int     `env:"NOTIFY_BURST" envDefault:"20"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx := context.Background()
	shutdown, err := platformotel.Setup(ctx, "biblioteca", cfg.OTELEndpoint)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}
	defer shutdown(ctx)

	notifier := notify.NewThrottled(
		notify.Multi{
			notify.NewEmailNotifier(os.Stdout),
			notify.NewSMSNotifier(os.Stdout),
		},
		rate.Limit(cfg.NotifyPerSec), cfg.NotifyBurst,
	)

	cat := catalog.NewService()
	mem := membership.NewService(notifier, []byte(cfg.JWTSecret))
	circ := circulation.NewService(notifier)

	handler := server.New(cat, mem, circ)

	log.Printf("Starting Biblioteca on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
