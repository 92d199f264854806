package monitoring

import (
	"context"
	"strings"

	"perfumeHelper/pkg/logging"
	"perfumeHelper/pkg/perfume"

	"gorm.io/gorm"
)

const perfumesSeparator = "; "

// Recommendation is one served (or rejected) perfume request.
type Recommendation struct {
	gorm.Model
	logging.TrackingIDModel `gorm:"embedded"`
	Platform                string `gorm:"size:64;index:idx_recommendations_user"`
	UserID                  string `gorm:"size:255;index:idx_recommendations_user"`
	Input                   string
	Gender                  string `gorm:"size:16"`
	Temperature             float64
	Rainy                   bool
	Weather                 string `gorm:"size:16"`
	Perfumes                string
	Error                   string
}

func NewRecommendation(ctx context.Context, platform, userID string, req perfume.Request) *Recommendation {
	r := &Recommendation{
		Platform:    platform,
		UserID:      userID,
		Input:       req.Gender,
		Temperature: req.Temperature,
		Rainy:       req.Rainy,
	}
	r.SetTrackingID(ctx)

	return r
}

func (r *Recommendation) SetSuggestion(s perfume.Suggestion) {
	r.Gender = string(s.Gender)
	r.Weather = string(s.Weather)
	r.Perfumes = strings.Join(s.Names(), perfumesSeparator)
}

func (r *Recommendation) SetError(err error) {
	if err == nil {
		return
	}

	r.Error = err.Error()
}

func (r *Recommendation) PerfumeNames() []string {
	if r.Perfumes == "" {
		return nil
	}

	return strings.Split(r.Perfumes, perfumesSeparator)
}
