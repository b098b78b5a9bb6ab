package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is the wall-clock domain.CurrentTimeProvider. Times are UTC so
// tool timestamps compare equal across stores.
type CurrentTimeProvider struct{}

// Now returns the current UTC time.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the CurrentTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
