package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/josuecastillodev/ecommerce/app/configs"
	"github.com/josuecastillodev/ecommerce/app/handlers"
	"github.com/josuecastillodev/ecommerce/app/handlers/admin"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/middlewares"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/josuecastillodev/ecommerce/app/utils/renderer"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, logger *zap.Logger) *mux.Router {
	render := renderer.New(env)
	validate := helpers.NewValidator()

	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)

	categorySvc := services.NewCategoryService(categoryRepo, brandRepo, logger)
	brandSvc := services.NewBrandService(brandRepo, categoryRepo, logger)

	adminHandler := admin.NewAdminHandler(render, validate, categorySvc, brandSvc, logger)
	categoryHandler := handlers.NewCategoryHandler(categorySvc, render, logger)
	brandHandler := handlers.NewBrandHandler(brandSvc, render, logger)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger(logger))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.RenderError(render, w, http.StatusNotFound, apperr.TypeNotFound, "Route not found")
	})

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(env.AdminAPIToken, render, logger))

	adminRouter.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	// registered before {id} so "reorder" is not taken for an id
	adminRouter.HandleFunc("/categories/reorder", adminHandler.ReorderCategories).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.GetCategory).Methods("GET")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("POST", "PATCH")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")
	adminRouter.HandleFunc("/categories/{id}/move", adminHandler.MoveCategory).Methods("POST")

	adminRouter.HandleFunc("/brands", adminHandler.ListBrands).Methods("GET")
	adminRouter.HandleFunc("/brands", adminHandler.CreateBrand).Methods("POST")
	adminRouter.HandleFunc("/brands/{id}", adminHandler.GetBrand).Methods("GET")
	adminRouter.HandleFunc("/brands/{id}", adminHandler.UpdateBrand).Methods("POST", "PATCH")
	adminRouter.HandleFunc("/brands/{id}", adminHandler.DeleteBrand).Methods("DELETE")
	adminRouter.HandleFunc("/brands/{id}/activate", adminHandler.ActivateBrand).Methods("POST")
	adminRouter.HandleFunc("/brands/{id}/deactivate", adminHandler.DeactivateBrand).Methods("POST")

	storeRouter := router.PathPrefix("/store").Subrouter()
	storeRouter.HandleFunc("/brands", brandHandler.Brands).Methods("GET")
	storeRouter.HandleFunc("/brands/{slug}", brandHandler.BrandBySlug).Methods("GET")

	storeCategories := storeRouter.PathPrefix("/categories").Subrouter()
	storeCategories.Use(middlewares.BrandScopeMiddleware(brandRepo, render, logger))
	storeCategories.HandleFunc("", categoryHandler.Categories).Methods("GET")
	storeCategories.HandleFunc("/{slug}", categoryHandler.CategoryBySlug).Methods("GET")

	return router
}
