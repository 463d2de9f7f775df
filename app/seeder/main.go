package main

import (
	"log"
	"math/rand"

	"futureplus/domain"
	"futureplus/pkg/config"
	"futureplus/pkg/database"
	"futureplus/pkg/logger"
	"futureplus/pkg/utils"

	"gorm.io/gorm"
)

// Seeder: migrates the schema and inserts the baseline admin, plans,
// gifts and the system account. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Wallet{},
		&domain.Plan{},
		&domain.UserPlan{},
		&domain.Transaction{},
		&domain.Referral{},
		&domain.Gift{},
		&domain.Admin{},
	)
	if err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	logger.Info("Migration completed")

	if err := seedAdmin(db); err != nil {
		logger.Fatal("Failed to seed admin", "error", err)
	}

	if err := seedPlans(db); err != nil {
		logger.Fatal("Failed to seed plans", "error", err)
	}

	if err := seedGifts(db); err != nil {
		logger.Fatal("Failed to seed gifts", "error", err)
	}

	if err := seedSampleUsers(db); err != nil {
		logger.Fatal("Failed to seed sample users", "error", err)
	}

	logger.Info("Seeding completed")
}

func seedAdmin(db *gorm.DB) error {
	passwordHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := domain.Admin{
		Email:    "admin@futureplus.in",
		Password: passwordHash,
		Key:      "FUTUREPLUS_ADMIN_KEY_2024",
		IsActive: true,
	}

	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	logger.Info("Admin seeded", "email", admin.Email)
	return nil
}

func seedPlans(db *gorm.DB) error {
	plans := []domain.Plan{
		{
			ID:          "plan-lucky-draw",
			Name:        "Lucky Draw",
			Description: "Entry into daily lucky draw with exciting prizes",
			Price:       450,
			Duration:    30,
			DailyReturn: 50,
			Type:        domain.PlanTypeLuckyDraw,
			IsActive:    true,
		},
		{
			ID:          "plan-passion-income",
			Name:        "Passion Income",
			Description: "Steady daily returns for passionate earners",
			Price:       1700,
			Duration:    60,
			DailyReturn: 200,
			Type:        domain.PlanTypePassionIncome,
			IsActive:    true,
		},
		{
			ID:          "plan-premium",
			Name:        "Premium",
			Description: "Premium plan with higher daily returns",
			Price:       3500,
			Duration:    90,
			DailyReturn: 450,
			Type:        domain.PlanTypePremium,
			IsActive:    true,
		},
		{
			ID:          "plan-big-bonanza",
			Name:        "Big Bonanza",
			Description: "Maximum returns for serious investors",
			Price:       8500,
			Duration:    120,
			DailyReturn: 1200,
			Type:        domain.PlanTypeBigBonanza,
			IsActive:    true,
		},
	}

	for i := range plans {
		if err := db.Where("id = ?", plans[i].ID).FirstOrCreate(&plans[i]).Error; err != nil {
			return err
		}
		logger.Info("Plan seeded", "name", plans[i].Name)
	}

	return nil
}

func seedGifts(db *gorm.DB) error {
	systemUser, err := seedSystemUser(db)
	if err != nil {
		return err
	}

	gifts := []domain.Gift{
		{
			ID:     "gift-daily-lucky",
			Name:   "Daily Lucky Draw",
			Type:   "LUCKY_DRAW",
			Value:  1000,
			Status: domain.GiftStatusActive,
			UserID: systemUser.ID,
		},
		{
			ID:     "gift-weekly-bonus",
			Name:   "Weekly Bonus",
			Type:   "BONUS",
			Value:  5000,
			Status: domain.GiftStatusActive,
			UserID: systemUser.ID,
		},
		{
			ID:     "gift-monthly-cashback",
			Name:   "Monthly Cashback",
			Type:   "CASHBACK",
			Value:  10000,
			Status: domain.GiftStatusActive,
			UserID: systemUser.ID,
		},
	}

	for i := range gifts {
		if err := db.Where("id = ?", gifts[i].ID).FirstOrCreate(&gifts[i]).Error; err != nil {
			return err
		}
		logger.Info("Gift seeded", "name", gifts[i].Name)
	}

	return nil
}

// seedSampleUsers inserts the demo accounts with randomized wallet
// balances for manual testing.
func seedSampleUsers(db *gorm.DB) error {
	sampleUsers := []struct {
		name     string
		email    string
		mobile   string
		password string
	}{
		{"Demo User", "demo@futureplus.in", "7015187071", "demo123"},
		{"Test User", "test@futureplus.in", "7015187072", "test123"},
	}

	for _, su := range sampleUsers {
		passwordHash, err := utils.HashPassword(su.password)
		if err != nil {
			return err
		}

		user := domain.User{
			Name:     su.name,
			Email:    su.email,
			Mobile:   su.mobile,
			Password: passwordHash,
			IsActive: true,
			Wallet: &domain.Wallet{
				Balance: float64(rand.Intn(10000) + 1000),
				Bonus:   float64(rand.Intn(5000) + 500),
			},
		}

		if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return err
		}
		logger.Info("Sample user seeded", "email", user.Email)
	}

	return nil
}

func seedSystemUser(db *gorm.DB) (domain.User, error) {
	passwordHash, err := utils.HashPassword("system123")
	if err != nil {
		return domain.User{}, err
	}

	systemUser := domain.User{
		Name:     "System Account",
		Email:    "system@futureplus.in",
		Mobile:   "7015187070",
		Password: passwordHash,
		IsActive: true,
		Wallet:   &domain.Wallet{Balance: 0, Bonus: 0},
	}

	if err := db.Where("email = ?", systemUser.Email).FirstOrCreate(&systemUser).Error; err != nil {
		return domain.User{}, err
	}

	return systemUser, nil
}
