package recommend

import (
	"context"
	"time"

	"perfumeHelper/pkg/storage"
)

const (
	dialogVersion = "v1"
	dialogDomain  = "perfume_dialog"
)

type DialogStep string

const (
	StepGender      DialogStep = "gender"
	StepTemperature DialogStep = "temperature"
	StepRainy       DialogStep = "rainy"
)

// DialogState is the progress of a step by step perfume conversation.
// Temperature holds the answer text as typed, since json cannot carry NaN or Inf.
type DialogState struct {
	Step        DialogStep `json:"step"`
	Gender      string     `json:"gender,omitempty"`
	Temperature string     `json:"temperature,omitempty"`
}

type DialogStorage struct {
	db  storage.Client
	ttl time.Duration
}

func NewDialogStorage(db storage.Client, ttl time.Duration) *DialogStorage {
	return &DialogStorage{db: db, ttl: ttl}
}

func (ds *DialogStorage) Load(ctx context.Context, who Requester) (*DialogState, error) {
	state := new(DialogState)

	found, err := ds.db.Load(ctx, ds.key(who), state)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return state, nil
}

func (ds *DialogStorage) Save(ctx context.Context, who Requester, state *DialogState) error {
	return ds.db.Save(ctx, ds.key(who), state, ds.ttl)
}

func (ds *DialogStorage) Delete(ctx context.Context, who Requester) error {
	return ds.db.Delete(ctx, ds.key(who))
}

func (ds *DialogStorage) key(who Requester) string {
	return storage.GenerateCacheKey(dialogVersion, who.Platform, dialogDomain, who.UserID)
}
