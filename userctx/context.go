package userctx

import "context"

// Context key type
type contextKey string

const actorIDKey contextKey = "actor_id"
const actorEmailKey contextKey = "actor_email"

// SetActorID adds the acting employee's ID to request context
func SetActorID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// GetActorID retrieves the acting employee's ID from request context.
// Returns 0 when no actor is set.
func GetActorID(ctx context.Context) int {
	if id, ok := ctx.Value(actorIDKey).(int); ok {
		return id
	}
	return 0
}

// SetActorEmail adds the acting employee's email to request context
func SetActorEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorEmailKey, email)
}

// GetActorEmail retrieves the acting employee's email from request context
func GetActorEmail(ctx context.Context) string {
	if email, ok := ctx.Value(actorEmailKey).(string); ok {
		return email
	}
	return "anonymous"
}
