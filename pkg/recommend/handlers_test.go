package recommend

import (
	"context"
	"testing"
	"time"

	"perfumeHelper/pkg/monitoring"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/perfume"
	"perfumeHelper/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	items      []monitoring.Recommendation
	historyErr error
}

func (r *memoryRecorder) Record(_ context.Context, rec *monitoring.Recommendation) {
	rec.ID = uint(len(r.items) + 1)
	r.items = append(r.items, *rec)
}

func (r *memoryRecorder) History(_ context.Context, platform, userID string, limit int) ([]monitoring.Recommendation, error) {
	if r.historyErr != nil {
		return nil, r.historyErr
	}

	res := []monitoring.Recommendation{}
	for i := len(r.items) - 1; i >= 0 && len(res) < limit; i-- {
		if r.items[i].Platform == platform && r.items[i].UserID == userID {
			res = append(res, r.items[i])
		}
	}

	return res, nil
}

func (r *memoryRecorder) Enabled() bool {
	return true
}

type fixture struct {
	recorder *memoryRecorder
	db       *storage.MemoryClient
	dialog   *DialogHandler
	cancel   *CancelHandler
	history  *HistoryHandler
}

func newFixture() *fixture {
	recorder := &memoryRecorder{}
	db := storage.NewMemoryClient()
	service := NewService(recorder)
	dialogs := NewDialogStorage(db, time.Minute)

	return &fixture{
		recorder: recorder,
		db:       db,
		dialog:   NewDialogHandler(service, dialogs),
		cancel:   NewCancelHandler(dialogs),
		history:  NewHistoryHandler(service, 5),
	}
}

func newReq(text string) *msg.Request {
	return &msg.Request{
		Platform: "telegram",
		ID:       "1",
		Sender:   &msg.Sender{ID: "alice"},
		Message:  text,
		Meta:     map[string]interface{}{},
	}
}

func (f *fixture) send(t *testing.T, h msg.Handler, text string) msg.ResponseMessage {
	t.Helper()

	req := newReq(text)

	ok, err := h.CanHandle(context.Background(), req)
	require.NoError(t, err)
	require.True(t, ok, "handler should accept %q", text)

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)

	return resp.Messages[0]
}

func TestOneShotRecommendation(t *testing.T) {
	f := newFixture()

	resp := f.send(t, f.dialog, "/perfume male 33")
	require.Equal(t, msg.Success, resp.Type)
	require.Contains(t, resp.Message, "Weather category: hot")
	require.Contains(t, resp.Message, "1. Dior Homme Cologne")
	require.Contains(t, resp.Message, "2. Acqua di Gio")

	resp = f.send(t, f.dialog, "/perfume F 22 yes")
	require.Contains(t, resp.Message, "Weather category: rainy")
	require.Contains(t, resp.Message, "Narciso Rodriguez For Her")

	require.Len(t, f.recorder.items, 2)
	require.Equal(t, "alice", f.recorder.items[0].UserID)
	require.Equal(t, "telegram", f.recorder.items[0].Platform)
	require.Equal(t, "hot", f.recorder.items[0].Weather)
	require.Equal(t, "female", f.recorder.items[1].Gender)
	require.True(t, f.recorder.items[1].Rainy)
}

func TestOneShotInputErrors(t *testing.T) {
	f := newFixture()

	resp := f.send(t, f.dialog, "/perfume unknown 20")
	require.Equal(t, msg.Error, resp.Type)
	require.Equal(t, "Input error: Gender must be male or female.", resp.Message)
	require.Len(t, f.recorder.items, 1)
	require.Equal(t, "Gender must be male or female.", f.recorder.items[0].Error)

	resp = f.send(t, f.dialog, "/perfume male warm")
	require.Equal(t, msg.Error, resp.Type)
	require.Equal(t, "Input error: could not convert string to float: 'warm'", resp.Message)

	resp = f.send(t, f.dialog, "/perfume male")
	require.Equal(t, msg.Error, resp.Type)
	require.Equal(t, usageMessage, resp.Message)
}

func TestStepByStepDialog(t *testing.T) {
	f := newFixture()

	ok, err := f.dialog.CanHandle(context.Background(), newReq("male"))
	require.NoError(t, err)
	require.False(t, ok, "no dialog is started yet")

	resp := f.send(t, f.dialog, "/perfume")
	require.Equal(t, genderQuestion, resp.Message)
	require.Equal(t, []msg.PredefinedResponse{{Text: "male"}, {Text: "female"}}, resp.Options.GetPredefinedResponses())

	resp = f.send(t, f.dialog, "other")
	require.Equal(t, msg.Error, resp.Type)
	require.Equal(t, "Input error: Gender must be male or female.", resp.Message)

	resp = f.send(t, f.dialog, " Woman ")
	require.Equal(t, temperatureQuestion, resp.Message)
	require.True(t, resp.Options.ShouldRemoveKeyboard())

	resp = f.send(t, f.dialog, "cold")
	require.Equal(t, msg.Error, resp.Type)

	resp = f.send(t, f.dialog, "5")
	require.Equal(t, rainyQuestion, resp.Message)

	ok, err = f.dialog.CanHandle(context.Background(), newReq("/help"))
	require.NoError(t, err)
	require.False(t, ok, "commands are not dialog answers")

	resp = f.send(t, f.dialog, "no")
	require.Equal(t, msg.Success, resp.Type)
	require.Contains(t, resp.Message, "Weather category: cold")
	require.Contains(t, resp.Message, "YSL Black Opium")

	ok, err = f.dialog.CanHandle(context.Background(), newReq("female"))
	require.NoError(t, err)
	require.False(t, ok, "dialog is finished")
}

func TestStepByStepDialogNonFiniteTemperature(t *testing.T) {
	testCases := []struct {
		answer  string
		weather string
	}{
		{answer: "nan", weather: "mild"},
		{answer: "inf", weather: "hot"},
		{answer: "-inf", weather: "cold"},
	}

	for _, tc := range testCases {
		t.Run(tc.answer, func(t *testing.T) {
			f := newFixture()

			f.send(t, f.dialog, "/perfume")
			f.send(t, f.dialog, "male")

			resp := f.send(t, f.dialog, tc.answer)
			require.Equal(t, rainyQuestion, resp.Message)

			resp = f.send(t, f.dialog, "no")
			require.Equal(t, msg.Success, resp.Type)
			require.Contains(t, resp.Message, "Weather category: "+tc.weather)
		})
	}
}

func TestCancelDialog(t *testing.T) {
	f := newFixture()

	resp := f.send(t, f.cancel, "/cancel")
	require.Equal(t, "Nothing to cancel", resp.Message)

	f.send(t, f.dialog, "/perfume")
	resp = f.send(t, f.cancel, "/cancel")
	require.Equal(t, "Cancelled", resp.Message)

	ok, err := f.dialog.CanHandle(context.Background(), newReq("male"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHistory(t *testing.T) {
	f := newFixture()

	resp := f.send(t, f.history, "/history")
	require.Equal(t, "You have no recommendations yet", resp.Message)

	f.send(t, f.dialog, "/perfume male 33")
	f.send(t, f.dialog, "/perfume nobody 33")
	f.send(t, f.dialog, "/perfume male 20")

	resp = f.send(t, f.history, "/history")
	require.Contains(t, resp.Message, "Your last recommendations:")
	require.Contains(t, resp.Message, "1. ")
	require.Contains(t, resp.Message, "mild: Bleu de Chanel, Prada Luna Rossa Carbon")
	require.Contains(t, resp.Message, "2. ")
	require.Contains(t, resp.Message, "hot: Dior Homme Cologne, Acqua di Gio")
	require.NotContains(t, resp.Message, "3. ")

	f.recorder.historyErr = errors.New("db down")
	_, err := f.history.Handle(context.Background(), newReq("/history"))
	require.Error(t, err)
}

func TestHistoryDisabled(t *testing.T) {
	h := NewHistoryHandler(NewService(monitoring.NoopRecorder{}), 5)

	resp, err := h.Handle(context.Background(), newReq("/history"))
	require.NoError(t, err)
	require.Equal(t, msg.Error, resp.Messages[0].Type)
	require.Empty(t, h.GetHelp(context.Background(), newReq("/help")).Text)
}

func TestRequesterSuggester(t *testing.T) {
	recorder := &memoryRecorder{}
	rs := RequesterSuggester{
		Service:   NewService(recorder),
		Requester: Requester{Platform: "cli", UserID: "local"},
	}

	s, err := rs.Suggest(context.Background(), perfume.Request{Gender: "m", Temperature: 12})
	require.NoError(t, err)
	require.Equal(t, perfume.Cold, s.Weather)
	require.Equal(t, "cli", recorder.items[0].Platform)
}

func TestServiceIsQuietAtInfoLevel(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	level := logrus.GetLevel()
	logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetLevel(level)

	service := NewService(&memoryRecorder{})
	who := Requester{Platform: "cli", UserID: "local"}

	_, err := service.Suggest(context.Background(), who, perfume.Request{Gender: "f", Temperature: 20})
	require.NoError(t, err)

	_, err = service.Suggest(context.Background(), who, perfume.Request{Gender: "other", Temperature: 20})
	require.ErrorIs(t, err, perfume.ErrInvalidInput)

	require.Empty(t, hook.AllEntries())
}

func TestConfigValidate(t *testing.T) {
	require.False(t, (&Config{DialogTTL: time.Minute, HistoryLimit: 5}).Validate().HasErrors())
	require.True(t, (&Config{}).Validate().HasErrors())
}

