package services

import (
	"github.com/getsentry/sentry-go"
)

// reportError forwards err to Sentry with the given tags.
// Without sentry.Init the current hub has no client and this is a no-op.
func reportError(err error, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}
