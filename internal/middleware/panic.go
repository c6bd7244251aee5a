package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
)

// RecoverPanic is the catch-all error responder. Whatever a handler panics
// with is logged and the client only sees the generic 500 body.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, span := otel.Tracer.Start(r.Context(), "middleware RecoverPanic")
		defer span.End()

		logger := zerolog.Ctx(c).With().Str(log.KeyTag, "middleware RecoverPanic").Logger()
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}
			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("%v", recovered)
			}
			err = fmt.Errorf("recovered from panic with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Stack().Msg(err.Error())
			inHttp.WriteInternalError(c, w)
		}()

		next.ServeHTTP(w, r.WithContext(c))
	})
}
