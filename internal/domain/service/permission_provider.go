package service

import "context"

// PermissionProvider answers the two location capability queries.
// It never prompts the user.
type PermissionProvider interface {
	ForegroundLocationGranted(ctx context.Context) (bool, error)
	BackgroundLocationGranted(ctx context.Context) (bool, error)
}
