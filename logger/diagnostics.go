package logger

import (
	"fmt"

	mcuschema "github.com/reoring/mcuschema"
)

// Diagnostics adapts l to the logger record builders report to. Alternating
// key/value arguments become Fields; a trailing key without value is kept
// under "extra".
func Diagnostics(l Logger) mcuschema.Logger {
	if l == nil {
		l = NewSilentLogger()
	}
	return diagnostics{l: l}
}

type diagnostics struct{ l Logger }

func (d diagnostics) Debug(msg string, kv ...any) { d.l.Debug(msg, toFields(kv)...) }
func (d diagnostics) Warn(msg string, kv ...any)  { d.l.Warn(msg, toFields(kv)...) }

func toFields(kv []any) []Field {
	if len(kv) == 0 {
		return nil
	}
	out := make([]Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			out = append(out, F("extra", kv[i]))
			break
		}
		out = append(out, F(fmt.Sprint(kv[i]), kv[i+1]))
	}
	return out
}
