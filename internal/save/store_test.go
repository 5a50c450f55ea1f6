package save

import (
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noahsharp-sketch/landonclicker-b86834cb-sub000/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "landonclicker.db"), log.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_StateRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0).UTC()

	s := game.NewState(now)
	s.Clicks = 1234
	s.LifetimeClicks = 98765
	s.TotalPrestiges = 3

	require.NoError(t, st.SaveState(ctx, s, now))

	loaded, err := st.LoadState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1234.0, loaded.Clicks)
	assert.Equal(t, 98765.0, loaded.LifetimeClicks)
	assert.Equal(t, int64(3), loaded.TotalPrestiges)
	assert.True(t, loaded.Stats.LastOnlineTime.Equal(now), "save stamps last online time")
}

func TestStore_SaveDoesNotMutateInput(t *testing.T) {
	st := newTestStore(t)
	now := time.Unix(1_700_000_000, 0).UTC()

	s := game.NewState(now.Add(-time.Hour))
	before := s.Stats.LastOnlineTime

	require.NoError(t, st.SaveState(context.Background(), s, now))
	assert.True(t, s.Stats.LastOnlineTime.Equal(before))
}

func TestStore_MissingStateIsNilNil(t *testing.T) {
	st := newTestStore(t)

	loaded, err := st.LoadState(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_CorruptStateFailsOpen(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.put(ctx, stateKey, []byte("{definitely not json"), time.Now()))

	loaded, err := st.LoadState(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LastWriteWins(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0).UTC()

	first := game.NewState(now)
	first.Clicks = 1
	require.NoError(t, st.SaveState(ctx, first, now))

	second := game.NewState(now)
	second.Clicks = 2
	require.NoError(t, st.SaveState(ctx, second, now.Add(time.Minute)))

	loaded, err := st.LoadState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 2.0, loaded.Clicks)
}

func TestStore_AudioDefaultsWhenAbsent(t *testing.T) {
	st := newTestStore(t)

	a, err := st.LoadAudio(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, DefaultAudioSettings(), a)
}

func TestStore_AudioRoundTripClampsVolume(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	in := AudioSettings{Volume: 1.7, SFXEnabled: false, MusicEnabled: true}
	require.NoError(t, st.SaveAudio(ctx, in, time.Now()))

	out, err := st.LoadAudio(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Volume)
	assert.False(t, out.SFXEnabled)
	assert.True(t, out.MusicEnabled)
}
