package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/config"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/database"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/handlers"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/seed"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/services"
)

func main() {
	ctx := context.Background()

	// 1. Load configuration (.env is optional)
	cfg := config.Load()

	// 2. Database Connection
	db, err := database.Connect(cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	templateRepo := database.NewTemplateRepository(db)
	jobRepo := database.NewJobRepository(db)

	// 3. Template cache (optional)
	var cache services.TemplateCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️  Redis unreachable at %s, template cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = services.NewRedisTemplateCache(rdb, "", cfg.Redis.CacheTTL)
			log.Println("✅ Template cache connected.")
		}
	}

	// 4. Initialize Core Services
	templateService := services.NewTemplateService(templateRepo, cache, cfg.Capabilities)
	jobService := services.NewJobService(jobRepo, templateService, cfg.Capabilities)
	llmService, err := services.NewLLMService(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM service: %v", err)
	}

	// 5. Seed the recommended-field library
	if cfg.Templates.SeedFile != "" {
		seeds, err := seed.LoadTemplates(cfg.Templates.SeedFile)
		if err != nil {
			log.Fatalf("❌ Failed to read template seed file: %v", err)
		}
		created, err := templateService.EnsureSeeded(ctx, seeds)
		if err != nil {
			log.Fatalf("❌ Failed to seed templates: %v", err)
		}
		log.Printf("🌱 Seeded %d recommended field(s) from %s", created, cfg.Templates.SeedFile)
	}

	// 6. Initialize Handlers
	jobHandler := handlers.NewJobHandler(llmService, jobService)
	templateHandler := handlers.NewTemplateHandler(templateService)

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = cfg.HTTP.CORSAllowAll
	if !cfg.HTTP.CORSAllowAll {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	handlers.Register(r.Group("/api/v1"), jobHandler, templateHandler)

	log.Printf("🚀 Server starting on %s...", cfg.HTTP.Addr)
	if err := r.Run(cfg.HTTP.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
