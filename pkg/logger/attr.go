package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument position.
// All-nil input yields an empty Attr, which slog drops.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// CardID records a card record identifier under "card_id".
// Zero ids are treated as missing.
func CardID(id int) slog.Attr {
	if id == 0 {
		return slog.Attr{}
	}
	return slog.Int("card_id", id)
}

// CardNumber records a card number that has already been masked.
// Never pass a raw number here.
func CardNumber(masked string) slog.Attr {
	return slog.String("card_number", masked)
}

// Status records an HTTP status code under "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Method records an HTTP method under "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// URL records a request target under "url".
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records d in milliseconds under "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the route handler name under "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
