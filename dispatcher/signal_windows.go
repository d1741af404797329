//go:build windows

package dispatcher

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext wraps ctx with Interrupt cancellation (SPEC_FULL.md §6.6
// "OS signal handling"). Windows has no SIGTERM equivalent in package
// syscall, so this build only watches os.Interrupt.
func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}
