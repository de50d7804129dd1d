package server

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
)

// Server serves the board engine to a browser front end. All board access
// happens under mu, so each board sees strictly sequential moves.
type Server struct {
	config   game.GameConfig
	maxCells int
	log      logrus.FieldLogger
	now    func() time.Time

	mu       sync.Mutex
	sessions sessionStore
}

// DefaultMaxCells caps custom boards when New is given no positive limit
const DefaultMaxCells = 10000

func New(config game.GameConfig, maxCells int, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &Server{
		config:   config,
		maxCells: maxCells,
		log:      logger,
		now:      time.Now,
		sessions: make(sessionStore),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	api.GET("/difficulties", s.handleDifficulties)
	api.POST("/games", s.handleCreateGame)
	api.GET("/games/:id", s.handleGetGame)
	api.DELETE("/games/:id", s.handleDeleteGame)
	api.POST("/games/:id/reveal", s.handleReveal)
	api.POST("/games/:id/flag", s.handleFlag)
	api.POST("/games/:id/new", s.handleNewGame)
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := s.now()
		c.Next()

		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": s.now().Sub(start),
		}).Info("request")
	}
}
