package trace

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/lazy"
)

// NewLogger builds a JSON logger writing to w. An unknown level falls back
// to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// WithID tags logger with a fresh pipeline id so that taps of one pipeline
// can be correlated.
func WithID(logger zerolog.Logger) (zerolog.Logger, uuid.UUID) {
	id := uuid.New()
	return logger.With().Str(FieldPipelineID, id.String()).Logger(), id
}

// TapIter logs every element it passes through.
type TapIter[T any] struct {
	inner  *lazy.InspectIter[T]
	logger zerolog.Logger
	pulled int
	done   bool
}

// Tap wraps it so that every pulled element is logged at debug level under
// label, followed by one event once it is exhausted.
func Tap[T any](it lazy.Iter[T], logger zerolog.Logger, label string) *TapIter[T] {
	t := &TapIter[T]{logger: logger.With().Str(FieldStage, label).Logger()}
	t.inner = lazy.Inspect(it, t.log)
	return t
}

func (t *TapIter[T]) log(x T) {
	t.logger.Debug().Int(FieldIndex, t.pulled).Interface(FieldValue, x).Msg(msgPulled)
	t.pulled++
}

func (t *TapIter[T]) Next() rop.Option[T] {
	v := t.inner.Next()
	if v.IsNone() && !t.done {
		t.done = true
		t.logger.Debug().Int(FieldCount, t.pulled).Msg(msgExhausted)
	}
	return v
}

func (t *TapIter[T]) SizeHint() (int, rop.Option[int]) {
	return t.inner.SizeHint()
}

// Pulled reports how many elements went through the tap so far.
func (t *TapIter[T]) Pulled() int {
	return t.pulled
}
