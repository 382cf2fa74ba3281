package ui

import "context"

// Interface : tout ce que l'application affiche passe par ici.
type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintWarning(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
