package middleware

import "context"

func Token(ctx context.Context) string {
	if v := ctx.Value(tokenKey); v != nil {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
