package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/velamart/storefront-api/controllers/cart"
	favoritesControllers "github.com/velamart/storefront-api/controllers/favorites"
	paymentControllers "github.com/velamart/storefront-api/controllers/payment"
	productControllers "github.com/velamart/storefront-api/controllers/product"
	promoControllers "github.com/velamart/storefront-api/controllers/promo"
	reviewControllers "github.com/velamart/storefront-api/controllers/review"
	userControllers "github.com/velamart/storefront-api/controllers/user"
	"github.com/velamart/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers public browsing plus all JWT-protected customer
// endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public Browsing ────────────────
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/products/:id/reviews", reviewControllers.ListProductReviewsHandler(db))
		api.GET("/categories", productControllers.GetAllCategories(db))
	}

	userGroup := r.Group("/api")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/user", userControllers.GetUser(db))
		userGroup.PUT("/user", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.POST("/add", cartControllers.AddCartItem(db))
			cartGroup.GET("/fetch", cartControllers.GetCart(db))
			cartGroup.POST("/remove", cartControllers.RemoveCartItem(db))
			cartGroup.DELETE("/clear", cartControllers.ClearCart(db))
		}

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.POST("/add", favoritesControllers.AddFavorite(db))
			favGroup.GET("/fetch", favoritesControllers.GetFavorites(db))
			favGroup.POST("/remove", favoritesControllers.RemoveFavorite(db))
		}

		// ──────────────── Promo Codes ────────────────
		userGroup.POST("/promos/apply", promoControllers.ApplyPromoHandler(db))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.SubmitReviewHandler(db))

		// ──────────────── Payment Cards ────────────────
		cardGroup := userGroup.Group("/cards")
		{
			cardGroup.POST("", paymentControllers.SaveCard(db))
			cardGroup.GET("", paymentControllers.ListCards(db))
			cardGroup.DELETE("/:id", paymentControllers.DeleteCard(db))
		}
	}
}
