package domain

import (
	"context"
	"regexp"
	"time"
	"unicode"

	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
)

func checkEventHandle(ctx context.Context, handle string) error {
	if len(handle) < 4 {
		return errorx.New(errorx.BadRequest, "Handle too short (at least 4 characters)")
	}

	if len(handle) > 32 {
		return errorx.New(errorx.BadRequest, "Handle too long (at most 32 characters)")
	}

	ok, err := regexp.MatchString("^[a-z0-9_]*$", handle)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot execute regex pattern: %v", err)
		return errorx.Unknown
	}

	if !ok {
		return errorx.New(errorx.BadRequest, "Handle contains invalid characters")
	}

	return nil
}

func generateEventHandle(title string) string {
	handle := []rune{}
	for _, c := range title {
		if isAsciiLetter(c) {
			handle = append(handle, unicode.ToLower(c))
		} else if c == ' ' {
			handle = append(handle, '_')
		}
	}

	return string(handle)
}

func isAsciiLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '_'
}

func checkEventTitle(title string) error {
	if len(title) < 4 {
		return errorx.New(errorx.BadRequest, "Title too short (at least 4 characters)")
	}

	if len(title) > 128 {
		return errorx.New(errorx.BadRequest, "Title too long (at most 128 characters)")
	}

	return nil
}

func parseRequestTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(model.DefaultTimeLayout, value)
	if err != nil {
		return time.Time{}, errorx.New(errorx.BadRequest, "Invalid %s", field)
	}

	return t, nil
}

func checkPaginationLimit(ctx context.Context, limit *int) error {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if *limit == 0 {
		*limit = apiCfg.DefaultLimit
	}

	if *limit < 0 {
		return errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if *limit > apiCfg.MaxLimit {
		return errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return nil
}
