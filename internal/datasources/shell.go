package datasources

import "context"

// ShellLoader fetches the pre-built HTML shell the previews are rewritten
// into. It is called on every request, so a deploy that replaces the shell
// takes effect without a restart.
type ShellLoader interface {
	LoadShell(ctx context.Context) (string, error)
}
