package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine            *gin.Engine
	Config            config.Config
	Logger            *middleware.Logger
	AuthMiddleware    *middleware.AuthMiddleware
	SessionMiddleware *middleware.SessionMiddleware

	Health   *api.HealthHandler
	Cart     *api.CartHandler
	Coupon   *api.CouponHandler
	Loyalty  *api.LoyaltyHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.Health.Live)
	engine.GET("/ready", p.Health.Ready)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.AuthMiddleware.OptionalAuth(), p.SessionMiddleware.Attach())
	requireAuth := p.AuthMiddleware.RequireAuth()
	{
		cart := apiGroup.Group("/cart")
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: p.Cart.Clear},
			{Method: http.MethodPost, Path: "/items", Handler: p.Cart.AddItem},
			{Method: http.MethodPatch, Path: "/items", Handler: p.Cart.UpdateItem},
			{Method: http.MethodDelete, Path: "/items", Handler: p.Cart.RemoveItem},
			{Method: http.MethodPost, Path: "/stock-check", Handler: p.Cart.StockCheck},
			{Method: http.MethodGet, Path: "/remote", Handler: p.Cart.Remote, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup.Group("/coupons"), []route{
			{Method: http.MethodPost, Path: "/apply", Handler: p.Coupon.Apply},
		})

		loyalty := apiGroup.Group("/loyalty")
		loyalty.Use(requireAuth)
		addRoutes(loyalty, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Loyalty.Summary},
			{Method: http.MethodPost, Path: "/redeem", Handler: p.Loyalty.Redeem},
		})

		addRoutes(apiGroup.Group("/checkout"), []route{
			{Method: http.MethodPost, Path: "/preview", Handler: p.Checkout.Preview},
			{Method: http.MethodPost, Path: "/attempts", Handler: p.Checkout.BeginAttempt},
			{Method: http.MethodPost, Path: "/orders", Handler: p.Checkout.PlaceOrder},
			{Method: http.MethodPost, Path: "/payment-return", Handler: p.Checkout.PaymentReturn},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Order.List, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:number", Handler: p.Order.Get},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
