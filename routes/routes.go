package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"vhotelok-backend/config"
	"vhotelok-backend/controllers"
	"vhotelok-backend/middleware"
	"vhotelok-backend/services"
)

// Cache lifetimes per resource. The hotel list stays uncached because
// its availability window changes with every booking.
const (
	hotelCacheTTL    = 10 * time.Second
	roomCacheTTL     = 10 * time.Second
	facilityCacheTTL = 15 * time.Second
)

const homePage = `<a href="https://vhotelok.ru/docs">Docs</a><br>
<a href="https://vhotelok.ru/redoc">ReDoc</a>
`

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Hotels     *controllers.HotelController
	Rooms      *controllers.RoomController
	Bookings   *controllers.BookingController
	Facilities *controllers.FacilityController
	Images     *controllers.ImageController
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Setup builds the engine with all routes mounted. A nil redis client
// simply disables response caching.
func Setup(settings config.Settings, rdb *redis.Client, ctl Controllers, auth *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins(settings.CORSAllowedOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/static/images", settings.MediaDir)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(auth)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", ctl.Auth.Register)
		authGroup.POST("/login", ctl.Auth.Login)
		authGroup.GET("/me", requireAuth, ctl.Auth.Me)
		authGroup.POST("/logout", ctl.Auth.Logout)
	}

	hotels := r.Group("/hotels")
	{
		hotels.GET("", ctl.Hotels.List)
		hotels.GET("/:hotel_id", middleware.Cache(rdb, hotelCacheTTL), ctl.Hotels.Get)
		hotels.POST("", ctl.Hotels.Create)
		hotels.PUT("/:hotel_id", ctl.Hotels.Update)
		hotels.PATCH("/:hotel_id", ctl.Hotels.Patch)
		hotels.DELETE("/:hotel_id", ctl.Hotels.Delete)

		hotels.GET("/:hotel_id/rooms", middleware.Cache(rdb, roomCacheTTL), ctl.Rooms.List)
		hotels.GET("/:hotel_id/rooms/:room_id", middleware.Cache(rdb, roomCacheTTL), ctl.Rooms.Get)
		hotels.POST("/:hotel_id/rooms", ctl.Rooms.Create)
		hotels.PUT("/:hotel_id/rooms/:room_id", ctl.Rooms.Update)
		hotels.PATCH("/:hotel_id/rooms/:room_id", ctl.Rooms.Patch)
		hotels.DELETE("/:hotel_id/rooms/:room_id", ctl.Rooms.Delete)
	}

	bookings := r.Group("/bookings")
	{
		bookings.GET("", ctl.Bookings.List)
		bookings.GET("/me", requireAuth, ctl.Bookings.My)
		bookings.POST("", requireAuth, ctl.Bookings.Create)
	}

	facilities := r.Group("/facilities")
	{
		facilities.GET("", middleware.Cache(rdb, facilityCacheTTL), ctl.Facilities.List)
		facilities.POST("", ctl.Facilities.Create)
	}

	r.POST("/images", ctl.Images.Upload)

	return r
}
