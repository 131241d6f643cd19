package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribersSeeAlertsInOrder(t *testing.T) {
	center := New(nil)
	var got []string
	unsubscribe := center.Subscribe(func(a Alert) {
		got = append(got, string(a.Level)+":"+a.Message)
	})

	center.Success("saved")
	center.Error("Access Denied")
	unsubscribe()
	center.Info("ignored")

	assert.Equal(t, []string{"success:saved", "error:Access Denied"}, got)

	last, ok := center.Last()
	require.True(t, ok)
	assert.Equal(t, LevelInfo, last.Level)
}

func TestHistoryIsBounded(t *testing.T) {
	center := New(nil)
	for i := 0; i < historyLimit+5; i++ {
		center.Info(fmt.Sprintf("alert %d", i))
	}
	history := center.History()
	require.Len(t, history, historyLimit)
	assert.Equal(t, "alert 5", history[0].Message)
}

func TestEmptyCenter(t *testing.T) {
	_, ok := New(nil).Last()
	assert.False(t, ok)
}
