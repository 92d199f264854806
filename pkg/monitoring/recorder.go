package monitoring

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Recorder interface {
	Record(ctx context.Context, r *Recommendation)
	History(ctx context.Context, platform, userID string, limit int) ([]Recommendation, error)
	Enabled() bool
}

type GormRecorder struct {
	conn *gorm.DB
}

func NewGormRecorder(conn *gorm.DB) *GormRecorder {
	return &GormRecorder{conn: conn}
}

// Record never fails the caller, a lost history entry is only logged.
func (gr *GormRecorder) Record(ctx context.Context, r *Recommendation) {
	log := logrus.WithContext(ctx)

	res := gr.conn.WithContext(ctx).Create(r)
	if res.Error != nil {
		log.Errorf("failed to save recommendation to db: %v", res.Error)
		return
	}

	log.Debugf("saved recommendation %d for user %q", r.ID, r.UserID)
}

func (gr *GormRecorder) History(ctx context.Context, platform, userID string, limit int) ([]Recommendation, error) {
	var items []Recommendation

	res := gr.conn.WithContext(ctx).
		Where("platform = ? AND user_id = ?", platform, userID).
		Order("id desc").
		Limit(limit).
		Find(&items)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "failed to load recommendations history of user %q", userID)
	}

	return items, nil
}

func (gr *GormRecorder) Enabled() bool {
	return true
}

type NoopRecorder struct{}

func (NoopRecorder) Record(ctx context.Context, r *Recommendation) {
	logrus.WithContext(ctx).Debugf("history is disabled, skipping recommendation for user %q", r.UserID)
}

func (NoopRecorder) History(context.Context, string, string, int) ([]Recommendation, error) {
	return nil, nil
}

func (NoopRecorder) Enabled() bool {
	return false
}
