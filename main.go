package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"zomighty/config"
	httpapi "zomighty/internal/api/http"
	"zomighty/internal/service"
	"zomighty/internal/storage"
)

func main() {
	seed := flag.Bool("seed", false, "load demo data and exit")
	flag.Parse()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	if *seed {
		if err := repo.Seed(); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		return
	}

	cache := storage.NewRedisCache(config.MustInitRedis(), 5*time.Minute)
	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("order-events"))
	qr := service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}

	authSvc := service.NewAuthService(repo)
	catalogSvc := service.NewCatalogService(repo, cache)
	orderSvc := service.NewOrderService(repo, repo, qr, publisher)

	handler := httpapi.NewHandler(authSvc, catalogSvc, orderSvc)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	port := config.HTTPPort()
	log.Println("Zomighty API starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, cors.Default().Handler(r)))
}
