package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

// Recorder appends feed entries after successful primary writes. It is the
// single composition point for the "create an entity, then log an activity"
// pattern: callers invoke Record only once the primary write has succeeded,
// and a failed Record never rolls the primary write back. Record therefore
// returns nothing; failures are logged and swallowed.
type Recorder struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func NewRecorder(activities repository.ActivityRepository, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		activities: activities,
		logger:     logger,
	}
}

func (r *Recorder) Record(ctx context.Context, entry domain.Activity) {
	if r == nil || r.activities == nil {
		return
	}
	if _, err := r.activities.Create(ctx, &entry); err != nil {
		r.logger.Warn("failed to record activity",
			zap.String("activity_type", entry.ActivityType),
			zap.Int("user_id", entry.UserID),
			zap.Error(err))
	}
}
