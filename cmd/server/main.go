package main

import (
	"context"
	"log"
	"os"
	"time"

	"delivery-order-service/internal/controllers/http"
	"delivery-order-service/internal/infra"
	mmysql "delivery-order-service/internal/infra/mysql"
	"delivery-order-service/internal/infra/rabbitmq"
	mysqlrepo "delivery-order-service/internal/repository/mysql"
	"delivery-order-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	catalogClient := infra.NewCatalogClient(os.Getenv("CATALOG_SERVICE_URL"), 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewOrderService(repo, catalogClient, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	s.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := s.WarmupProductCache(context.Background(), []uint64{1, 2}); err != nil {
			log.Printf("Failed to warm up cache: %v", err)
		}
	}()

	handler := http.NewHandler(s, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting order service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
