package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/medimarket-api/internal/application/auth"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	AccountUC  *usecase.AccountUseCase
	ProfileUC  *usecase.VendorProfileUseCase
	MedicineUC *usecase.MedicineUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-super-admin", authHandler.RegisterSuperAdmin)
	authGroup.Post("/login", authHandler.Login)

	// Admin (solo super_admin)
	adminGroup := app.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleSuperAdmin))
	adminHandler := NewAdminHandler(deps.AuthUC, deps.AccountUC)
	adminGroup.Post("/add", adminHandler.Add)
	adminGroup.Get("/list", adminHandler.List)
	adminGroup.Patch("/update/:id", adminHandler.Update)
	adminGroup.Post("/status/:id", adminHandler.Status)
	adminGroup.Delete("/:id", adminHandler.Delete)

	// Vendor: login público, gestión para super_admin y admin
	vendorGroup := app.Group("/vendor")
	vendorHandler := NewVendorHandler(deps.AuthUC, deps.AccountUC, deps.ProfileUC)
	vendorGroup.Post("/vendorlogin", vendorHandler.Login)

	staff := []string{entity.RoleSuperAdmin, entity.RoleAdmin}
	vendorProtected := vendorGroup.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(staff...))
	vendorProtected.Post("/add", vendorHandler.Add)
	vendorProtected.Get("/list", vendorHandler.List)
	vendorProtected.Get("/list/:id", vendorHandler.GetOne)
	vendorProtected.Patch("/update/:id", vendorHandler.Update)
	vendorProtected.Post("/status/:id", vendorHandler.Status)
	vendorProtected.Post("/info", vendorHandler.InfoCreate)
	vendorProtected.Get("/info/all", vendorHandler.InfoList)
	vendorProtected.Put("/info/:id", vendorHandler.InfoUpdate)

	// Medicine (público)
	medicineGroup := app.Group("/medicine")
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicineGroup.Post("/bucket", medicineHandler.CreateBucket)
	medicineGroup.Get("/bucket/list", medicineHandler.ListBuckets)
	medicineGroup.Get("/bucket/:id/catalog", medicineHandler.Catalog)
	medicineGroup.Post("/addmedicine", medicineHandler.CreateMedicine)
	medicineGroup.Get("/getMedicine/:id", medicineHandler.GetMedicine)
	medicineGroup.Get("/getRelavantDtaMedicine/:id", medicineHandler.ListByBucket)
	medicineGroup.Delete("/deleteMdecine/:id", medicineHandler.Delete)
}
