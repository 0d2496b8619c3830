package types

import (
	"github.com/castlog/catalogue-api/internal/database"
	"github.com/castlog/catalogue-api/internal/services/accounts"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
	"github.com/castlog/catalogue-api/internal/services/reviews"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Repo           catalogue.Repository
	AccountService *accounts.Service
	ReviewService  *reviews.Service
}
