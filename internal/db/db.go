package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Review{},
		&models.Payout{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// o banco é o árbitro final de agenda dupla
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_barber_slot
        ON appointments (barber_id, date, time)
        WHERE status = 'scheduled'
    `).Error; err != nil {
		return err
	}

	// cada lançamento só pode ser estornado uma vez
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_payouts_reversed_payout
        ON payouts (reversed_payout_id)
        WHERE reversed_payout_id IS NOT NULL
    `).Error; err != nil {
		return err
	}

	// linhas antigas: classifica pelo marcador no reason
	return db.Exec(`
        UPDATE payouts
        SET kind = CASE WHEN reason LIKE '%REVERSAL of %' THEN 'reversal' ELSE 'payout' END
        WHERE kind IS NULL OR kind = ''
    `).Error
}
