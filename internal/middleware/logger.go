package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/router"
	"github.com/eventara/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		logger := xcontext.Logger(ctx).
			WithPrefix(fmt.Sprintf("%s %s", req.Method, req.URL.Path))
		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				logger.Warnf("%d", errx.Code)
			} else {
				logger.Errorf("%d", -1)
			}
		} else {
			logger.Infof("%d", 0)
		}
	}
}
