package charts

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/de-tools/tourism-atlas/pkg/services/watch"
	"github.com/rs/zerolog"
)

type EventSource interface {
	Subscribe() (<-chan watch.Event, func())
}

// Events streams data change notifications as server-sent events until the
// client disconnects.
func Events(source EventSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := zerolog.Ctx(ctx)

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		events, cancel := source.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				data, err := sonic.Marshal(e)
				if err != nil {
					logger.Error().Err(err).Msg("failed to encode event")
					continue
				}
				fmt.Fprintf(w, "event: reload\ndata: %s\n\n", data)
				flusher.Flush()
			}
		}
	}
}
