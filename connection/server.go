package connection

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pharmapp/config"
	authctrl "pharmapp/controller/auth"
	invitationctrl "pharmapp/controller/invitation"
	onboardingctrl "pharmapp/controller/onboarding"
	orderctrl "pharmapp/controller/order"
	pharmacyctrl "pharmapp/controller/pharmacy"
	sessionctrl "pharmapp/controller/session"
	"pharmapp/middleware"
	"pharmapp/store"
)

func StartServer(cfg *config.Config) {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	slog.Info("firestore connection successful")

	fs := store.NewFirestoreStore(fb)

	router.Use(cors.Default())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Pharmacy Manager API"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authctrl.GoogleAuthController(router, cfg, fs)
	onboardingctrl.OnboardingController(router, fs)
	pharmacyctrl.PharmacyController(router, fs, fs, fs)
	invitationctrl.InvitationController(router, fs, fs, fs, fs)
	sessionctrl.SessionController(router, fs, fs, fs)
	orderctrl.OrderController(router, fs, fs, fs)

	router.Run(":" + cfg.Port)
}
