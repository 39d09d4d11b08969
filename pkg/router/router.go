package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eventara/backend/config"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/pkg/authenticator"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/logger"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/gorilla/sessions"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc can replace the request context by returning a non-nil one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written. It observes the final
// context, including the handler error via xcontext.Error.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db            *gorm.DB
	cfg           config.Configs
	logger        logger.Logger
	tokenEngine   authenticator.TokenEngine[model.AccessToken]
	sessionStore  sessions.Store
	snowflakeNode *snowflake.Node

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	return &Router{
		mux:           http.NewServeMux(),
		db:            db,
		cfg:           cfg,
		logger:        logger,
		tokenEngine:   authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration),
		sessionStore:  sessions.NewCookieStore([]byte(cfg.Session.Secret)),
		snowflakeNode: node,
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) AddHandler(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, router.sessionStore)
		ctx = xcontext.WithSnowFlake(ctx, router.snowflakeNode)
		ctx = xcontext.WithStartTime(ctx, time.Now())

		if err := func() error {
			if req.Method != method {
				return errorx.New(errorx.BadRequest, "Not supported method %s", req.Method)
			}

			var request Request
			switch method {
			case http.MethodGet:
				if err := bindQuery(req.URL.Query(), &request); err != nil {
					xcontext.Logger(ctx).Debugf("Cannot bind the query: %v", err)
					return errorx.New(errorx.BadRequest, "Cannot bind the request")
				}
			default:
				err := json.NewDecoder(req.Body).Decode(&request)
				if err != nil && !errors.Is(err, io.EOF) {
					xcontext.Logger(ctx).Debugf("Cannot decode the body: %v", err)
					return errorx.New(errorx.BadRequest, "Cannot bind the request")
				}
			}

			for _, middleware := range router.befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					return err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				return err
			}

			ctx = xcontext.WithResponse(ctx, resp)

			for _, middleware := range router.afters {
				newCtx, err := middleware(ctx)
				if err != nil {
					return err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			return nil
		}(); err != nil {
			ctx = xcontext.WithError(ctx, err)
		}

		writeResponse(ctx)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

// bindQuery decodes URL query parameters into the request struct following
// its json tags. Only the first value of each parameter is considered.
func bindQuery(values url.Values, obj any) error {
	input := map[string]any{}
	for key, value := range values {
		if len(value) > 0 {
			input[key] = value[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           obj,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
