package save

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// AudioSettings is the independent presentation-layer blob stored under
// its own key. The engine never reads it; it only exists so cue volumes
// survive restarts.
type AudioSettings struct {
	Volume       float64 `json:"volume"`
	SFXEnabled   bool    `json:"sfx_enabled"`
	MusicEnabled bool    `json:"music_enabled"`
}

func DefaultAudioSettings() AudioSettings {
	return AudioSettings{Volume: 0.7, SFXEnabled: true, MusicEnabled: true}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (st *Store) SaveAudio(ctx context.Context, a AudioSettings, now time.Time) error {
	a.Volume = clampVolume(a.Volume)
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal audio settings: %w", err)
	}
	if err := st.put(ctx, audioKey, payload, now); err != nil {
		return fmt.Errorf("write audio settings: %w", err)
	}
	return nil
}

// LoadAudio returns the stored settings, or defaults when absent or
// unreadable.
func (st *Store) LoadAudio(ctx context.Context) (AudioSettings, error) {
	payload, ok, err := st.get(ctx, audioKey)
	if err != nil {
		return DefaultAudioSettings(), fmt.Errorf("read audio settings: %w", err)
	}
	if !ok {
		return DefaultAudioSettings(), nil
	}

	var a AudioSettings
	if err := json.Unmarshal(payload, &a); err != nil {
		return DefaultAudioSettings(), nil
	}
	a.Volume = clampVolume(a.Volume)
	return a, nil
}
