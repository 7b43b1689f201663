package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/config"
	"github.com/dicastrol/Sistema-acv/internal/email"
	"github.com/dicastrol/Sistema-acv/internal/infrastructure/repository"
	handlers "github.com/dicastrol/Sistema-acv/internal/interfaces/http"
	"github.com/dicastrol/Sistema-acv/internal/ml"
	"github.com/dicastrol/Sistema-acv/internal/scheduler"
	services "github.com/dicastrol/Sistema-acv/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	// El modelo se carga una sola vez; si el artefacto no sirve, el proceso
	// no debe arrancar
	modelo, err := cargarModelo(cfg)
	if err != nil {
		log.Fatalf("Error loading model: %v", err)
	}
	log.Printf("Modelo de ACV cargado: %d árboles", len(modelo.Arboles))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// Autenticación
	usuarioRepo := repository.NewUsuarioRepository(db)
	authService := application.NewAuthService(usuarioRepo, cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(authService)

	// Pacientes
	pacienteRepo := repository.NewPacienteRepository(db)
	pacienteService := application.NewPacienteService(pacienteRepo)
	pacienteHandler := handlers.NewPacienteHandler(pacienteService)

	// Historias clínicas
	historiaRepo := repository.NewHistoriaRepository(db)
	historiaService := application.NewHistoriaService(historiaRepo, pacienteRepo)
	historiaHandler := handlers.NewHistoriaHandler(historiaService)

	// Citas
	citaRepo := repository.NewCitaRepository(db)
	var correoCitas application.CorreoCitas
	if emailClient != nil {
		correoCitas = emailClient
	}
	citaService := application.NewCitaService(citaRepo, pacienteRepo, correoCitas)
	citaHandler := handlers.NewCitaHandler(citaService)

	// Catálogo de servicios
	servicioRepo := repository.NewServicioRepository(db)
	servicioService := application.NewServicioService(servicioRepo)
	servicioHandler := handlers.NewServicioHandler(servicioService)

	// Predicción de riesgo
	prediccionService := application.NewPrediccionService(historiaRepo, pacienteRepo, modelo)
	prediccionHandler := handlers.NewPrediccionHandler(prediccionService)

	// Estadísticas del tablero
	estadisticasRepo := repository.NewEstadisticasRepository(db)
	estadisticasService := application.NewEstadisticasService(estadisticasRepo)
	estadisticasHandler := handlers.NewEstadisticasHandler(estadisticasService)

	// Scheduler de mantenimiento de citas
	citaScheduler := scheduler.NewCitaScheduler(citaRepo, citaService)
	citaScheduler.Start()
	defer citaScheduler.Stop()

	autenticado := handlers.NewAuthMiddleware(authService)

	// Registro y login son públicos; el perfil exige token
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/perfil", autenticado, authHandler.Perfil)

	// Todo lo demás exige token
	api := app.Group("/api", autenticado)

	pacientes := api.Group("/pacientes")
	pacientes.Get("/", pacienteHandler.GetAll)
	pacientes.Post("/", pacienteHandler.Create)
	pacientes.Get("/:id", pacienteHandler.GetByID)
	pacientes.Put("/:id", pacienteHandler.Update)
	pacientes.Delete("/:id", pacienteHandler.Delete)

	historias := api.Group("/historias")
	historias.Get("/", historiaHandler.GetAll)
	historias.Post("/", historiaHandler.Create)
	historias.Get("/paciente/:id", historiaHandler.GetPorPaciente)
	historias.Get("/paciente/:id/resumen", historiaHandler.GetResumen)
	historias.Get("/:id", historiaHandler.GetByID)
	historias.Put("/:id", historiaHandler.Update)
	historias.Delete("/:id", historiaHandler.Delete)

	citas := api.Group("/citas")
	citas.Get("/", citaHandler.GetAll)
	citas.Post("/", citaHandler.Create)
	citas.Get("/hoy", citaHandler.GetHoy)
	citas.Get("/:id", citaHandler.GetByID)
	citas.Put("/:id", citaHandler.Update)
	citas.Delete("/:id", citaHandler.Delete)

	servicios := api.Group("/servicios")
	servicios.Get("/", servicioHandler.GetActivos)

	prediccion := api.Group("/prediccion")
	prediccion.Get("/listado", prediccionHandler.Listado)
	prediccion.Get("/:id", prediccionHandler.Predecir)

	api.Get("/neuroguard/estadisticas", estadisticasHandler.Get)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// cargarModelo lee el artefacto del modelo desde S3 cuando hay bucket
// configurado, o desde disco en caso contrario
func cargarModelo(cfg *config.Config) (*ml.ModeloACV, error) {
	var datos []byte

	if cfg.ModelS3Bucket != "" && cfg.ModelS3Key != "" {
		ctx := context.Background()
		s3Service, err := services.NewS3Service(ctx, cfg.AWSRegion, cfg.ModelS3Bucket)
		if err != nil {
			return nil, err
		}
		datos, err = s3Service.DescargarArtefacto(ctx, cfg.ModelS3Key)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		datos, err = os.ReadFile(cfg.ModelPath)
		if err != nil {
			return nil, err
		}
	}

	return ml.CargarModelo(datos)
}
