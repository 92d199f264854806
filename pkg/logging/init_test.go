package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFormatterAddsTrackingID(t *testing.T) {
	ctx := WithTrackingId(context.Background())
	trackingID := GetTrackingID(ctx)
	require.Len(t, trackingID, 36)

	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&trackingIDFormatter{})

	logger.WithContext(ctx).Info("served perfume")

	require.Contains(t, buf.String(), "trackingID="+trackingID)
	require.Contains(t, buf.String(), "served perfume")
}

func TestFormatterWithoutContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&trackingIDFormatter{})

	logger.Info("no context")

	require.NotContains(t, buf.String(), "trackingID")
}

func TestConfigLevel(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	require.False(t, cfg.Validate().HasErrors())
	require.Equal(t, logrus.DebugLevel, cfg.Level())

	cfg = &Config{LogLevel: "loud"}
	require.True(t, cfg.Validate().HasErrors())
	require.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestTrackingIDModel(t *testing.T) {
	m := &TrackingIDModel{}
	m.SetTrackingID(context.Background())
	require.Empty(t, m.TrackingID)

	ctx := WithTrackingId(context.Background())
	m.SetTrackingID(ctx)
	require.Equal(t, GetTrackingID(ctx), m.TrackingID)
}
