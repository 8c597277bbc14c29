package service

import (
	"testing"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Company{},
		&entity.PDFConfig{},
		&entity.Client{},
		&entity.PaymentMethod{},
		&entity.Document{},
		&entity.LineItem{},
		&entity.IdempotencyKey{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        uuid.New(),
		FirstName: "Marie",
		LastName:  "Durand",
		Email:     uuid.New().String() + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCompany(t *testing.T, db *gorm.DB, userID uuid.UUID) *entity.Company {
	t.Helper()

	company := &entity.Company{
		UserID:     userID,
		Name:       "Atelier Dupont",
		Address:    "12 rue de la Paix",
		PostalCode: "75002",
		City:       "Paris",
		Country:    "France",
	}
	require.NoError(t, db.Create(company).Error)

	config := entity.DefaultPDFConfig(company.ID)
	require.NoError(t, db.Create(config).Error)
	company.PDFConfig = config

	return company
}

func createTestClient(t *testing.T, db *gorm.DB, userID uuid.UUID) *entity.Client {
	t.Helper()

	email := "client@example.com"
	client := &entity.Client{
		UserID:     userID,
		Name:       "ACME SARL",
		Address:    "3 avenue des Champs",
		PostalCode: "69001",
		City:       "Lyon",
		Country:    "France",
		Email:      &email,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}
