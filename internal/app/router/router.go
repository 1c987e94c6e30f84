// Package router assembles the gin engine: middleware, CORS and the
// route table.
package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/config"
	adoptionhandler "petmatch_backend/internal/feature/adoptions/transport/handler"
	animalhandler "petmatch_backend/internal/feature/animals/transport/handler"
	authhandler "petmatch_backend/internal/feature/auth/transport/handler"
	userhandler "petmatch_backend/internal/feature/users/transport/handler"
	"petmatch_backend/internal/platform/http/handler"
	"petmatch_backend/internal/platform/httpmw"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

// New builds the engine. Every route except the banner, the health
// probe, register and login sits behind the auth middleware.
func New(
	cfg *config.Config,
	log *slog.Logger,
	tokens jwtmw.TokenService,
	auth *authhandler.AuthHandler,
	users *userhandler.UserHandler,
	animals *animalhandler.AnimalHandler,
	adoptions *adoptionhandler.AdoptionHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmw.RequestID())
	r.Use(httpmw.RequestLogger(log))

	// Strict allow-list; origins outside CORS_ORIGINS are refused.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)

	guard := jwtmw.AuthRequired(tokens)

	authG := r.Group("/auth")
	{
		authG.POST("/register", auth.Register)
		authG.POST("/login", auth.Login)

		protected := authG.Group("", guard)
		protected.GET("/verify", auth.Verify)
		protected.GET("/check-admin", auth.CheckAdmin)
		protected.GET("/profile", auth.Profile)
	}

	userG := r.Group("/user", guard)
	{
		userG.GET("/", users.List)
		userG.GET("/:id", users.Get)
		userG.POST("/", users.Create)
		userG.PUT("/:id", users.Update)
		userG.DELETE("/:id", users.Delete)
	}

	animalG := r.Group("/animais", guard)
	{
		animalG.GET("/", animals.List)
		animalG.GET("/disponiveis", animals.ListAvailable)
		animalG.GET("/status/:status", animals.ListByStatus)
		animalG.GET("/especie/:especie", animals.SearchBySpecies)
		animalG.GET("/:id", animals.Get)
		animalG.POST("/", animals.Create)
		animalG.PUT("/:id", animals.Update)
		animalG.DELETE("/:id", animals.Delete)
	}

	adoptionG := r.Group("/doacoes", guard)
	{
		adoptionG.GET("/", adoptions.List)
		adoptionG.GET("/estatisticas", adoptions.GetStatistics)
		adoptionG.GET("/usuario/:id", adoptions.ListByUser)
		adoptionG.GET("/:id", adoptions.Get)
		adoptionG.POST("/resgate", adoptions.RegisterRescue)
		adoptionG.POST("/adocao", adoptions.RegisterAdoption)
		adoptionG.PUT("/:id/observacoes", adoptions.UpdateNotes)
		adoptionG.DELETE("/:id", adoptions.Delete)
	}

	return r
}
