package recommend

import (
	"context"

	"perfumeHelper/pkg/monitoring"
	"perfumeHelper/pkg/perfume"

	"github.com/sirupsen/logrus"
)

// Requester identifies who asked for a recommendation.
type Requester struct {
	Platform string
	UserID   string
}

type Service struct {
	recorder monitoring.Recorder
}

func NewService(recorder monitoring.Recorder) *Service {
	return &Service{recorder: recorder}
}

// Suggest looks up the perfumes and records the attempt, both successful and rejected.
func (s *Service) Suggest(ctx context.Context, who Requester, req perfume.Request) (perfume.Suggestion, error) {
	log := logrus.WithContext(ctx)

	rec := monitoring.NewRecommendation(ctx, who.Platform, who.UserID, req)

	suggestion, err := perfume.SuggestFor(req)
	if err != nil {
		log.Debugf("rejected recommendation request %+v of user %q: %v", req, who.UserID, err)
		rec.SetError(err)
		s.recorder.Record(ctx, rec)

		return perfume.Suggestion{}, err
	}

	log.Debugf("recommending %v for %s/%s to user %q", suggestion.Names(), suggestion.Gender, suggestion.Weather, who.UserID)

	rec.SetSuggestion(suggestion)
	s.recorder.Record(ctx, rec)

	return suggestion, nil
}

func (s *Service) History(ctx context.Context, who Requester, limit int) ([]monitoring.Recommendation, error) {
	return s.recorder.History(ctx, who.Platform, who.UserID, limit)
}

func (s *Service) HasHistory() bool {
	return s.recorder.Enabled()
}

// RequesterSuggester binds the service to a single requester.
type RequesterSuggester struct {
	Service   *Service
	Requester Requester
}

func (rs RequesterSuggester) Suggest(ctx context.Context, req perfume.Request) (perfume.Suggestion, error) {
	return rs.Service.Suggest(ctx, rs.Requester, req)
}
