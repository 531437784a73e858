package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/config"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/time/rate"
)

func errorHandler(err error, c echo.Context) {
	code := common.HTTPStatus(err)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	msg := errorMessage(err, code)

	if code >= 500 {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}
	var renderErr error
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		renderErr = c.JSON(code, &errorBody{Status: code, Message: msg})
	} else {
		renderErr = c.Render(code, "error", msg)
	}
	if renderErr != nil {
		c.Logger().Error(renderErr)
	}
}

// NewServer builds the echo instance with all middleware and routes.
func NewServer(controller *BibleTextController, conf *config.BibleTextConfig, serverConf config.ServerRuntimeConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.HideBanner = true
	if serverConf.CertDir != "" {
		e.Pre(middleware.HTTPSRedirect())
	}
	e.Pre(middleware.RemoveTrailingSlash())
	if serverConf.AcmeEnabled && len(conf.Hostnames) > 0 {
		canonical := conf.Hostnames[0]
		e.Pre(echo.MiddlewareFunc(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				req := c.Request()
				url := *req.URL
				if req.Host != canonical {
					url.Host = canonical
					url.Scheme = "https"
					slog.Info("redirect to canonical hostname", "original_hostname", req.Host)
					return c.Redirect(http.StatusPermanentRedirect, url.String())
				}
				return next(c)
			}
		}))
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	var identifierExtractor middleware.Extractor

	if serverConf.BehindLoadBalancer {
		identifierExtractor = func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		}
	} else {
		identifierExtractor = func(ctx echo.Context) (string, error) {
			id := ctx.Request().RemoteAddr
			return id, nil
		}
	}

	// configure rate limiting if enabled
	if serverConf.RateLimit > 0 {
		config := middleware.RateLimiterConfig{
			Skipper: middleware.DefaultSkipper,
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(
				middleware.RateLimiterMemoryStoreConfig{
					Rate:      rate.Limit(serverConf.RateLimit),
					Burst:     3 * serverConf.RateLimit,
					ExpiresIn: 3 * time.Minute,
				},
			),
			IdentifierExtractor: identifierExtractor,
			ErrorHandler: func(context echo.Context, err error) error {
				return context.String(http.StatusForbidden, "Forbidden")
			},
			DenyHandler: func(context echo.Context, identifier string, err error) error {
				return context.String(http.StatusTooManyRequests, "Too Many Requests")
			},
		}

		e.Use(middleware.RateLimiterWithConfig(config))
	}

	if serverConf.GzipLevel != 0 {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: serverConf.GzipLevel, MinLength: 512}))
	}

	if conf.TimeoutSeconds != 0 {
		e.Use(middleware.ContextTimeout(time.Duration(conf.TimeoutSeconds) * time.Second))
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogRemoteIP: true,
		LogLatency:  conf.LogLatency,
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
					slog.String("remote_ip", v.RemoteIP),
				)
			} else {
				logger.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
					slog.String("remote_ip", v.RemoteIP),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			}
			return nil
		},
	}))

	staticDir, err := fs.Sub(staticFs, "static")
	if err != nil {
		return nil, err
	}

	staticServerHashFs, err := NewHashFS(staticDir)
	if err != nil {
		return nil, err
	}

	e.Renderer = NewTemplateRenderer(conf.InstanceName, controller.verses.Registry(), staticServerHashFs)

	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", staticServerHashFs)))

	api := e.Group("/api")
	api.GET("/parse", controller.ApiParse)
	api.GET("/scriptures", controller.ApiListScriptures)
	api.POST("/scriptures", controller.ApiCreateScripture)
	api.GET("/scriptures/:id", controller.ApiGetScripture)
	api.PUT("/scriptures/:id", controller.ApiUpdateScripture)
	api.DELETE("/scriptures/:id", controller.ApiDeleteScripture)
	api.GET("/:version/passage", controller.ApiGetPassage)
	api.GET("/:version/:book/:chapter/:verse", controller.ApiGetVerse)

	e.GET("/", controller.GetBibleList)
	e.GET("/:version", controller.GetBible)
	e.GET("/:version/passage", controller.GetPassage)
	e.GET("/:version/search", controller.Search)
	e.GET("/:version/:book", controller.GetBook).Name = "book"
	e.GET("/:version/:book/:chapter", controller.GetChapter).Name = "chapter"
	e.GET("/:version/:book/:chapter/:verse", controller.GetVerse).Name = "verse"

	return e, nil
}

func StartServer(controller *BibleTextController, conf *config.BibleTextConfig, serverConf config.ServerRuntimeConfig) {
	e, err := NewServer(controller, conf, serverConf)
	if err != nil {
		slog.Error("failed to build server", "err", err)
		os.Exit(1)
	}

	host := serverConf.Addr
	port := serverConf.Port
	certDir := serverConf.CertDir
	acme := serverConf.AcmeEnabled

	addr := fmt.Sprintf("%s:%d", host, port)

	if certDir != "" {
		if acme {
			slog.Info("using TLS with ACME", "dir", certDir)
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(conf.Hostnames...)
			e.AutoTLSManager.Cache = autocert.DirCache(certDir)
			e.Logger.Fatal(e.StartAutoTLS(addr))
		} else {
			slog.Info("using TLS with certDir", "dir", certDir)
			e.Logger.Fatal(e.StartTLS(addr, path.Join(certDir, "fullchain.pem"), path.Join(certDir, "privkey.pem")))
		}
	} else {
		slog.Info("starting server", "addr", addr)
		e.Logger.Fatal(e.Start(addr))
	}
}
