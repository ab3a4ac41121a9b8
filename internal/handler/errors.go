package handler

import (
	"context"
	"errors"
	"net/http"

	"walletapi/internal/errorx"
	"walletapi/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrorHandler renders any error returned by a logic into the JSON error body.
// It is installed through httpx.SetErrorHandlerCtx.
func ErrorHandler(ctx context.Context, err error) (int, any) {
	kind := errorx.KindOf(err)
	body := types.ErrorResp{
		Error: err.Error(),
		Kind:  string(kind),
	}

	var ib *errorx.InsufficientBalanceError
	if errors.As(err, &ib) {
		body.CurrentBalance = ib.Current
		body.RequestedAmount = ib.Requested
	}

	code := errorx.HTTPStatus(kind)
	if code >= http.StatusInternalServerError {
		logx.WithContext(ctx).Errorf("request failed, kind: %s, err: %v", kind, err)
	}
	return code, body
}

func badRequest(err error) error {
	return errorx.Wrap(errorx.KindInvalidRequest, "Invalid request", err)
}
