package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"healthtrack/cmd/fx/account_fx"
	"healthtrack/cmd/fx/analysis_fx"
	"healthtrack/cmd/fx/appointment_fx"
	"healthtrack/cmd/fx/config_fx"
	"healthtrack/cmd/fx/controllers_fx"
	"healthtrack/cmd/fx/conversation_fx"
	"healthtrack/cmd/fx/db_fx"
	"healthtrack/cmd/fx/document_fx"
	"healthtrack/cmd/fx/events_fx"
	"healthtrack/cmd/fx/food_fx"
	"healthtrack/cmd/fx/hrv_fx"
	"healthtrack/cmd/fx/memcache_fx"
	"healthtrack/cmd/fx/profile_fx"
	"healthtrack/internal/api/controllers"
	"healthtrack/internal/config"
	mem "healthtrack/pkg/memcache"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		events_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		food_fx.Module,
		hrv_fx.Module,
		appointment_fx.Module,
		document_fx.Module,
		conversation_fx.Module,
		analysis_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, engine *gin.Engine, log *logrus.Logger) {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.WithField("addr", server.Addr).Info("starting HTTP server")
			go serve(server, listener, shutdowner, log)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

// serve blocks until the server stops. Any failure other than a requested
// shutdown stops the whole app so OnStop hooks still run.
func serve(server *http.Server, listener net.Listener, shutdowner fx.Shutdowner, log *logrus.Logger) {
	err := server.Serve(listener)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	log.WithError(err).Error("HTTP server stopped")
	if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		log.WithError(shutdownErr).Error("failed to request shutdown")
	}
}

type routerParams struct {
	fx.In

	Config       config.Config
	Log          *logrus.Logger
	Tokens       *utils.TokenManager
	Revoked      mem.RevokedTokenStore
	Account      *controllers.AccountController
	Profile      *controllers.ProfileController
	Food         *controllers.FoodController
	Analysis     *controllers.AnalysisController
	HRV          *controllers.HRVController
	Appointment  *controllers.AppointmentController
	Document     *controllers.DocumentController
	Conversation *controllers.ConversationController
	Health       *controllers.HealthController
}

func ProvideRouter(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.CORSMiddleware(p.Config.Server.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/healthz", p.Health.Healthz)

	auth := r.Group("/api/auth")
	auth.POST("/register", p.Account.Register)
	auth.POST("/login", p.Account.Login)

	api := r.Group("/api", middleware.JWTAuthMiddleware(p.Tokens, p.Revoked))
	api.POST("/auth/logout", p.Account.Logout)
	api.GET("/me", p.Account.Me)

	api.GET("/profile", p.Profile.GetProfile)
	api.POST("/profile", p.Profile.UpsertProfile)
	api.GET("/doctor-profile", p.Profile.GetDoctorProfile)
	api.POST("/doctor-profile", p.Profile.UpsertDoctorProfile)

	api.GET("/food-entries", p.Food.ListEntries)
	api.POST("/food-entries", p.Food.CreateEntry)
	api.GET("/food-entries/range", p.Food.ListEntriesInRange)
	api.GET("/food-reactions", p.Food.ListReactions)
	api.POST("/food-reactions", p.Food.CreateReaction)

	api.POST("/analyze-food-image", p.Analysis.AnalyzeFoodImage)
	api.POST("/analyze-food-text", p.Analysis.AnalyzeFoodText)

	api.GET("/hrv-data", p.HRV.ListSamples)
	api.POST("/hrv-data", p.HRV.CreateSample)

	api.GET("/appointments", p.Appointment.ListAppointments)
	api.POST("/appointments", p.Appointment.CreateAppointment)
	api.GET("/appointments/doctor", middleware.RoleMiddleware("doctor", "admin"), p.Appointment.ListDoctorAppointments)
	api.PATCH("/appointments/:id/status", p.Appointment.UpdateStatus)

	api.GET("/medical-documents", p.Document.ListDocuments)
	api.POST("/medical-documents", p.Document.CreateDocument)
	api.GET("/medical-documents/:id/shares", p.Document.ListShares)
	api.POST("/medical-documents/:id/shares", p.Document.ShareDocument)

	api.GET("/ai-conversations", p.Conversation.ListConversations)
	api.POST("/ai-conversations", p.Conversation.CreateConversation)
	api.PATCH("/ai-conversations/:id", p.Conversation.UpdateConversation)
}
