package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMultiCollectsErrors(t *testing.T) {
	m := NewMulti()
	require.False(t, m.HasErrors())
	require.NoError(t, m.ErrOrNil())
	require.Equal(t, "", m.Error())

	m.Add(nil)
	require.False(t, m.HasErrors())

	m.Err("REDIS_ADDR cannot be empty")
	m.Errf("%s cannot be empty", "TELEGRAM_ACCESS_TOKEN")

	require.True(t, m.HasErrors())
	require.Error(t, m.ErrOrNil())
	require.Equal(t, "REDIS_ADDR cannot be empty; TELEGRAM_ACCESS_TOKEN cannot be empty", m.Error())
	require.NotEmpty(t, m.StackTrace())
}

func TestMultiNilIsEmpty(t *testing.T) {
	var m *Multi
	require.False(t, m.HasErrors())
	require.NoError(t, m.ErrOrNil())
}

func TestHandleDoesNotPanicWithoutStop(t *testing.T) {
	require.NotPanics(t, func() {
		Handle(errors.New("some failure"), false)
		Handle(nil, true)
	})
	require.Panics(t, func() {
		Handle(errors.New("fatal failure"), true)
	})
}
