package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the name of the input field being checked.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records a validation kind such as "credit_card".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Valid records the outcome of a check.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Source records where input or messages came from, usually a file path.
func Source(src string) slog.Attr {
	return slog.String("source", src)
}

// CardType records a detected card type. Values implementing fmt.Stringer
// are logged by their string form.
func CardType(t any) slog.Attr {
	if s, ok := t.(interface{ String() string }); ok {
		return slog.String("card_type", s.String())
	}
	return slog.Any("card_type", t)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
