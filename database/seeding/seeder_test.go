package seeding_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/seeding"
	"github.com/vitralapp/vitral/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TenantConfig{},
		&models.ProfileSupplier{},
		&models.GlassType{},
		&models.CatalogModel{},
		&models.Service{},
		&models.GlassSolution{},
		&models.GlassTypeSolution{},
	))
	return db
}

func discardLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func glassSeeder(db *gorm.DB) *seeding.Seeder[models.GlassType] {
	return seeding.NewSeeder(db, discardLog(), seeding.SeederConfig[models.GlassType]{
		Entity:   "glassTypes",
		Conflict: []string{"name"},
		Updates:  []string{"thickness_mm", "price_per_sqm", "purpose", "updated_at"},
		Key:      func(g *models.GlassType) string { return g.Name },
		Match: func(tx *gorm.DB, g *models.GlassType) *gorm.DB {
			return tx.Where("name = ?", g.Name)
		},
	})
}

func TestUpsertClassifiesInsertThenUpdate(t *testing.T) {
	db := openTestDB(t)
	s := glassSeeder(db)
	ctx := context.Background()

	res, err := s.Upsert(ctx, []models.GlassType{
		{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: 48_000, Purpose: models.PurposeGeneral},
		{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: 95_000, Tempered: true, Purpose: models.PurposeSecurity},
	}, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 0, res.Updated)

	// Same natural keys again, one price changed: updates, no duplicates.
	res, err = s.Upsert(ctx, []models.GlassType{
		{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: 52_000, Purpose: models.PurposeGeneral},
		{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: 95_000, Tempered: true, Purpose: models.PurposeSecurity},
	}, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 2, res.Updated)

	var count int64
	require.NoError(t, db.Model(&models.GlassType{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var updated models.GlassType
	require.NoError(t, db.Where("name = ?", "Cristal Claro 4mm").First(&updated).Error)
	assert.Equal(t, 52_000.0, updated.PricePerSqm)
}

func TestUpsertDistinctKeysStayDistinct(t *testing.T) {
	db := openTestDB(t)
	s := seeding.NewSeeder(db, discardLog(), seeding.SeederConfig[models.ProfileSupplier]{
		Entity:   "profileSuppliers",
		Conflict: []string{"name"},
		Updates:  []string{"material_type", "active", "notes", "updated_at"},
		Key:      func(p *models.ProfileSupplier) string { return p.Name },
		Match: func(tx *gorm.DB, p *models.ProfileSupplier) *gorm.DB {
			return tx.Where("name = ?", p.Name)
		},
	})

	res, err := s.Upsert(context.Background(), []models.ProfileSupplier{
		{Name: "Perfiles del Norte", MaterialType: models.MaterialPVC, Active: true},
		{Name: "Aluminios Andinos", MaterialType: models.MaterialAluminum, Active: true},
	}, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	var count int64
	require.NoError(t, db.Model(&models.ProfileSupplier{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpsertLookupModeWithoutUniqueConstraint(t *testing.T) {
	db := openTestDB(t)
	// Services carry no unique index, so the seeder must decide
	// insert-vs-update from the explicit lookup alone.
	s := seeding.NewSeeder(db, discardLog(), seeding.SeederConfig[models.Service]{
		Entity:  "services",
		Updates: []string{"type", "unit", "rate", "min_quantity", "updated_at"},
		Key:     func(sv *models.Service) string { return sv.Name },
		Match: func(tx *gorm.DB, sv *models.Service) *gorm.DB {
			return tx.Where("name = ?", sv.Name)
		},
	})
	ctx := context.Background()

	res, err := s.Upsert(ctx, []models.Service{
		{Name: "Instalación", Type: models.ServiceTypeArea, Unit: models.UnitSqm, Rate: 25_000},
	}, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	res, err = s.Upsert(ctx, []models.Service{
		{Name: "Instalación", Type: models.ServiceTypeArea, Unit: models.UnitSqm, Rate: 30_000},
	}, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var row models.Service
	require.NoError(t, db.Where("name = ?", "Instalación").First(&row).Error)
	assert.Equal(t, 30_000.0, row.Rate)
}

func TestUpsertEmptyInput(t *testing.T) {
	db := openTestDB(t)
	res, err := glassSeeder(db).Upsert(context.Background(), nil, seeding.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, seeding.Result{}, res)
}

func TestUpsertBatchesLargeInput(t *testing.T) {
	db := openTestDB(t)
	records := make([]models.GlassType, 7)
	for i := range records {
		records[i] = models.GlassType{
			Name:        string(rune('A'+i)) + " Glass",
			ThicknessMm: 4,
			PricePerSqm: 48_000,
			Purpose:     models.PurposeGeneral,
		}
	}

	res, err := glassSeeder(db).Upsert(context.Background(), records, seeding.UpsertOptions{BatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Inserted)

	var count int64
	require.NoError(t, db.Model(&models.GlassType{}).Count(&count).Error)
	assert.EqualValues(t, 7, count)
}

func TestInsertOnlySkipsExisting(t *testing.T) {
	db := openTestDB(t)
	s := glassSeeder(db)
	ctx := context.Background()

	n, err := s.InsertOnly(ctx, []models.GlassType{
		{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: 48_000, Purpose: models.PurposeGeneral},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.InsertOnly(ctx, []models.GlassType{
		{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: 99_000, Purpose: models.PurposeGeneral},
		{Name: "Laminado 8mm", ThicknessMm: 8, PricePerSqm: 135_000, Laminated: true, Purpose: models.PurposeSecurity},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "existing key must be skipped, not updated")

	var row models.GlassType
	require.NoError(t, db.Where("name = ?", "Cristal Claro 4mm").First(&row).Error)
	assert.Equal(t, 48_000.0, row.PricePerSqm)
}
