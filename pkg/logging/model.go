package logging

import "context"

// TrackingIDModel is embedded into db models to link them with log records.
type TrackingIDModel struct {
	TrackingID string `gorm:"size:36;index"`
}

func (m *TrackingIDModel) SetTrackingID(ctx context.Context) {
	m.TrackingID = GetTrackingID(ctx)
}
