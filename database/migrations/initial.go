package migrations

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_tenant_config_table", &CreateTenantConfigTable{})
	migration.Register("20260101000001_create_catalog_tables", &CreateCatalogTables{})
	migration.Register("20260101000002_create_solution_tables", &CreateSolutionTables{})
}

// -------- 0001: tenant config --------

type CreateTenantConfigTable struct{}

func (m *CreateTenantConfigTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.TenantConfig{})
}

func (m *CreateTenantConfigTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("tenant_configs")
}

// -------- 0002: suppliers, glass, models, services --------

type CreateCatalogTables struct{}

func (m *CreateCatalogTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProfileSupplier{},
		&models.GlassType{},
		&models.CatalogModel{},
		&models.Service{},
	)
}

func (m *CreateCatalogTables) Down(db *gorm.DB) error {
	// Join table first, then children before parents.
	return db.Migrator().DropTable(
		"catalog_model_glass_types",
		"catalog_models",
		"services",
		"glass_types",
		"profile_suppliers",
	)
}

// -------- 0003: solutions and glass-solution assignments --------

type CreateSolutionTables struct{}

func (m *CreateSolutionTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GlassSolution{},
		&models.GlassTypeSolution{},
	)
}

func (m *CreateSolutionTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		"glass_type_solutions",
		"glass_solutions",
	)
}
