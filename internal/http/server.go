package http

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"zen-tracker-go/internal/auth"
	"zen-tracker-go/internal/config"
	"zen-tracker-go/internal/ratelimit"
	"zen-tracker-go/internal/store"
)

//go:embed schemas/emotion_log.schema.json
var emotionSchemaJSON []byte

//go:embed schemas/eightfold_path.schema.json
var pathSchemaJSON []byte

type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	store   store.Store
	tokens  *auth.Tokens
	limiter *ratelimit.FixedWindowLimiter

	emotionSchema *gojsonschema.Schema
	pathSchema    *gojsonschema.Schema
}

// NewServer wires middleware and routes and returns the gin engine.
// The limiter may be nil, in which case the credential endpoints are not
// rate limited.
func NewServer(cfg *config.Config, logger *zap.Logger, st store.Store, tokens *auth.Tokens, limiter *ratelimit.FixedWindowLimiter) *gin.Engine {
	emotionSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(emotionSchemaJSON))
	if err != nil {
		panic(err)
	}
	pathSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(pathSchemaJSON))
	if err != nil {
		panic(err)
	}

	s := &Server{
		cfg:           cfg,
		log:           logger,
		store:         st,
		tokens:        tokens,
		limiter:       limiter,
		emotionSchema: emotionSchema,
		pathSchema:    pathSchema,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging(logger))

	api := r.Group("/api")

	// Shared-secret routes: no bearer token, optional rate limiting.
	open := api.Group("")
	open.Use(s.rateLimit(), s.requireAPIKey())
	{
		open.POST("/register", s.register)
		open.POST("/login", s.login)
		open.POST("/user/recovery-reset", s.recoveryReset)
	}

	authed := api.Group("")
	authed.Use(s.authRequired())
	{
		authed.GET("/me", s.me)
		authed.PATCH("/theme", s.updateTheme)
		authed.PATCH("/language", s.updateLanguage)

		authed.POST("/meditations", s.createMeditation)
		authed.GET("/meditations", s.listMeditations)

		authed.POST("/emotions", s.createEmotionLog)
		authed.GET("/emotions", s.listEmotionLogs)
		authed.GET("/emotions/analytics", s.emotionAnalytics)

		authed.POST("/eightfold-path", s.createPathLog)
		authed.GET("/eightfold-path", s.listPathLogs)
		authed.GET("/eightfold-path/analytics", s.pathAnalytics)

		authed.POST("/gratitude", s.createGratitude)
		authed.GET("/gratitude", s.listGratitude)

		authed.GET("/insights/correlation", s.correlationInsights)

		authed.PATCH("/user/username", s.changeUsername)
		authed.PATCH("/user/password", s.changePassword)
		authed.DELETE("/user/account", s.deleteAccount)
		authed.POST("/user/recovery-codes", s.generateRecoveryCodes)
		authed.GET("/user/recovery-codes/status", s.recoveryCodesStatus)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PATCH, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// fail logs the underlying error and answers with the public message.
func (s *Server) fail(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		s.log.Error(msg,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": msg})
}
