package http

import (
	"catalog/app"
	"catalog/app/category"
	"catalog/app/product"
	"catalog/internal/middleware"
	"catalog/pkg/events"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every catalog route registered.
// A nil publisher disables event publishing.
func NewApp(repository app.Repository, publisher events.Publisher) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		IdleTimeout:           5 * time.Second,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		Concurrency:           256 * 1024,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return writeError(c, err)
		},
	})

	fiberApp.Use(middleware.NewRequestLogger())
	fiberApp.Use(recover.New())

	var broker BrokerChecker
	if checker, ok := publisher.(BrokerChecker); ok {
		broker = checker
	}
	fiberApp.Get("/healthz", handle[HealthRequest, HealthResponse](NewHealthHandler(repository, broker)))

	createCategoryHandler := category.NewCreateCategoryHandler(repository, publisher)
	getCategoriesHandler := category.NewGetCategoriesHandler(repository)
	updateCategoryHandler := category.NewUpdateCategoryHandler(repository, publisher)
	deleteCategoryHandler := category.NewDeleteCategoryHandler(repository, publisher)

	fiberApp.Post("/Insertcategories", handle[category.CreateCategoryRequest, category.CreateCategoryResponse](createCategoryHandler))
	fiberApp.Get("/GetAllCategories", handle[category.GetCategoriesRequest, category.GetCategoriesResponse](getCategoriesHandler))
	fiberApp.Put("/UpdateCategory/:id", handle[category.UpdateCategoryRequest, category.UpdateCategoryResponse](updateCategoryHandler))
	fiberApp.Delete("/DeleteCategory/:id", handle[category.DeleteCategoryRequest, category.DeleteCategoryResponse](deleteCategoryHandler))

	createProductHandler := product.NewCreateProductHandler(repository, publisher)
	getProductsHandler := product.NewGetProductsHandler(repository)
	getProductHandler := product.NewGetProductHandler(repository)
	updateProductHandler := product.NewUpdateProductHandler(repository, publisher)
	deleteProductHandler := product.NewDeleteProductHandler(repository, publisher)
	getProductsByCategoryHandler := product.NewGetProductsByCategoryHandler(repository)

	fiberApp.Post("/InsertProduct", handle[product.CreateProductRequest, product.CreateProductResponse](createProductHandler))
	fiberApp.Get("/GetAllProducts", handle[product.GetProductsRequest, product.GetProductsResponse](getProductsHandler))
	fiberApp.Get("/GetProduct", handle[product.GetProductRequest, product.GetProductResponse](getProductHandler))
	fiberApp.Put("/UpdateProduct/:id", handle[product.UpdateProductRequest, product.UpdateProductResponse](updateProductHandler))
	fiberApp.Delete("/DeleteProduct/:id", handle[product.DeleteProductRequest, product.DeleteProductResponse](deleteProductHandler))
	fiberApp.Get("/GetProductsByCategory/:categoryId", handle[product.GetProductsByCategoryRequest, product.GetProductsByCategoryResponse](getProductsByCategoryHandler))

	return fiberApp
}
