// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/interest"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferdelivery"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger   *ledgerrepo.RepoMem
	Engine   *gin.Engine
	Config   configpkg.Config
	Interest *interest.Scheduler // nil when no schedule is configured
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes on top of the given ledger.
func New(ledger *ledgerrepo.RepoMem, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountService := accountservice.New(ledger)
	transferService := transferservice.New(ledger, accountService)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:number", accountHandler.Get)
	engine.GET("/accounts/:number/history", accountHandler.History)
	engine.POST("/accounts/:number/deposit", accountHandler.Deposit)
	engine.POST("/accounts/:number/withdraw", accountHandler.Withdraw)
	engine.POST("/accounts/:number/interest", accountHandler.ApplyInterest)

	engine.POST("/transfers", transferHandler.Create)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("accountkind", accountdelivery.ValidKind); err != nil {
			return nil, errors.Wrap(err, "cannot register account type validator")
		}
	}

	server := &Server{
		Ledger: ledger,
		Engine: engine,
		Config: config,
	}

	if config.InterestSchedule != "" {
		scheduler, err := interest.New(config.InterestSchedule, accountService, logger)
		if err != nil {
			return nil, err
		}

		server.Interest = scheduler
	}

	return server, nil
}
