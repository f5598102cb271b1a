package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripdesk/internal/schedule"
	"tripdesk/pkg/utils"
)

type fakeSettingRepo struct {
	values map[string]string
}

func (f *fakeSettingRepo) GetAll(_ context.Context) (map[string]string, error) {
	return f.values, nil
}

func (f *fakeSettingRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeSettingRepo) Upsert(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

func TestScheduleConfigDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{}, zap.NewNop())

	cfg, err := svc.ScheduleConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, schedule.DefaultDayStartTime, cfg.DayStartTime)
	assert.Equal(t, schedule.DefaultTransitionBufferMin, cfg.TransitionBufferMin)
	assert.Equal(t, schedule.DefaultTimezone, cfg.Timezone)
	assert.NotEmpty(t, cfg.RoutingBaseURL)
}

func TestScheduleConfigStoredOverrides(t *testing.T) {
	repo := &fakeSettingRepo{values: map[string]string{
		SettingDayStartTime:     "08:30",
		SettingTransitionBuffer: "0",
		SettingLogicTimezone:    "Europe/Paris",
		SettingRoutingBaseURL:   "http://osrm.internal:5000",
	}}
	svc := NewSettingsService(repo, zap.NewNop())

	cfg, err := svc.ScheduleConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "08:30", cfg.DayStartTime)
	assert.Equal(t, 0, cfg.TransitionBufferMin, "zero buffer is a valid override")
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	assert.Equal(t, "http://osrm.internal:5000", cfg.RoutingBaseURL)
}

// Malformed stored values fall back to defaults instead of poisoning runs.
func TestScheduleConfigIgnoresMalformedValues(t *testing.T) {
	repo := &fakeSettingRepo{values: map[string]string{
		SettingDayStartTime:     "9 o'clock",
		SettingTransitionBuffer: "-5",
	}}
	svc := NewSettingsService(repo, zap.NewNop())

	cfg, err := svc.ScheduleConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, schedule.DefaultDayStartTime, cfg.DayStartTime)
	assert.Equal(t, schedule.DefaultTransitionBufferMin, cfg.TransitionBufferMin)
}

func TestUpdateSettingValidation(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{}, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value string
		err   error
	}{
		{"valid clock", SettingDayStartTime, "10:15", nil},
		{"malformed clock", SettingDayStartTime, "25:00", utils.ErrInvalidInput},
		{"valid buffer", SettingTransitionBuffer, "15", nil},
		{"negative buffer", SettingTransitionBuffer, "-1", utils.ErrInvalidInput},
		{"non-numeric buffer", SettingTransitionBuffer, "soon", utils.ErrInvalidInput},
		{"valid timezone", SettingLogicTimezone, "UTC", nil},
		{"bogus timezone", SettingLogicTimezone, "Mars/Olympus", utils.ErrInvalidInput},
		{"valid base url", SettingRoutingBaseURL, "http://localhost:5000", nil},
		{"empty base url", SettingRoutingBaseURL, "", utils.ErrInvalidInput},
		{"unknown key", "favorite_color", "blue", utils.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateSetting(ctx, tt.key, tt.value)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListSettingsReportsEffectiveValues(t *testing.T) {
	repo := &fakeSettingRepo{values: map[string]string{SettingDayStartTime: "07:00"}}
	svc := NewSettingsService(repo, zap.NewNop())

	settings, err := svc.ListSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 4)

	byKey := map[string]string{}
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}
	assert.Equal(t, "07:00", byKey[SettingDayStartTime])
	assert.Equal(t, "10", byKey[SettingTransitionBuffer])
	assert.Equal(t, schedule.DefaultTimezone, byKey[SettingLogicTimezone])
}
