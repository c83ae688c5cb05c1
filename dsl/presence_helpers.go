package dsl

import (
	"context"

	mcuschema "github.com/reoring/mcuschema"
)

// frame carries the presence map of an enclosing BuildWithMeta call and the
// path of the value being built, so nested records record full paths.
type frame struct {
	pm   mcuschema.PresenceMap
	base string
}

type frameKey struct{}

func withFrame(ctx context.Context, f frame) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, frameKey{}, f)
}

func frameFrom(ctx context.Context) (frame, bool) {
	if ctx == nil {
		return frame{}, false
	}
	f, ok := ctx.Value(frameKey{}).(frame)
	return f, ok
}
