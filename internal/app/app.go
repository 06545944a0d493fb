package app

import (
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/adapters/httpserver"
	"github.com/floramart/flowerex/internal/adapters/repo/postgres"
	"github.com/floramart/flowerex/internal/domain"
	"github.com/floramart/flowerex/internal/usecase"
)

type App struct {
	DB      *gorm.DB
	Users   domain.UserRepo
	Catalog *usecase.CatalogUC
	Orders  *usecase.OrderUC
	Reviews *usecase.ReviewUC
	Reports *usecase.ReportUC
}

func NewApp(db *gorm.DB) *App {
	userRepo := postgres.NewUserRepo(db)
	flowerRepo := postgres.NewFlowerRepo(db)
	lotRepo := postgres.NewLotRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	return &App{
		DB:      db,
		Users:   userRepo,
		Catalog: &usecase.CatalogUC{Users: userRepo, Flowers: flowerRepo, Lots: lotRepo},
		Orders:  &usecase.OrderUC{Users: userRepo, Lots: lotRepo, Orders: orderRepo},
		Reviews: &usecase.ReviewUC{Users: userRepo, Lots: lotRepo, Reviews: reviewRepo},
		Reports: &usecase.ReportUC{Report: reportRepo},
	}
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Users, a.Catalog, a.Orders, a.Reviews, a.Reports)
}

// Migrate creates the schema. Cascading foreign keys come from the
// association constraints on the domain structs.
func (a *App) Migrate() error {
	return a.DB.AutoMigrate(
		&domain.User{},
		&domain.Flower{},
		&domain.Lot{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.LotReview{},
		&domain.SalesmanReview{},
	)
}

// MigrateAndSeed additionally loads the flower taxonomy on an empty
// database.
func (a *App) MigrateAndSeed() error {
	if err := a.Migrate(); err != nil {
		return err
	}
	var count int64
	if err := a.DB.Model(&domain.Flower{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return seedFlowers(a.DB)
	}
	return nil
}

func seedFlowers(db *gorm.DB) error {
	flowers := []string{"rose", "tulip", "orchid", "lily", "peony", "carnation"}
	shades := []domain.Shade{domain.ShadeWhite, domain.ShadeBlack, domain.ShadeBlue, domain.ShadeGreen}
	for i, name := range flowers {
		f := domain.Flower{ID: uuid.New(), Name: name, Shade: shades[i%len(shades)]}
		if err := db.Create(&f).Error; err != nil {
			return err
		}
	}
	return nil
}
