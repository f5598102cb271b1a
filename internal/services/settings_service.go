package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/internal/routing"
	"tripdesk/internal/schedule"
	"tripdesk/pkg/utils"
)

const (
	SettingDayStartTime     = "day_start_time"
	SettingTransitionBuffer = "default_transition_buffer_min"
	SettingLogicTimezone    = "logic_timezone"
	SettingRoutingBaseURL   = "routing_base_url"
)

type SettingsServiceInterface interface {
	ListSettings(ctx context.Context) ([]response_models.Setting, error)
	UpdateSetting(ctx context.Context, key, value string) error
	ScheduleConfig(ctx context.Context) (schedule.Config, error)
}

type SettingsService struct {
	settingRepo repositories.SettingRepository
	logger      *zap.Logger
}

func NewSettingsService(settingRepo repositories.SettingRepository, logger *zap.Logger) SettingsServiceInterface {
	return &SettingsService{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (s *SettingsService) ListSettings(ctx context.Context) ([]response_models.Setting, error) {
	values, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("listing settings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	cfg := configFromValues(values, s.logger)
	effective := map[string]string{
		SettingDayStartTime:     cfg.DayStartTime,
		SettingTransitionBuffer: strconv.Itoa(cfg.TransitionBufferMin),
		SettingLogicTimezone:    cfg.Timezone,
		SettingRoutingBaseURL:   cfg.RoutingBaseURL,
	}

	out := make([]response_models.Setting, 0, len(effective))
	for _, key := range []string{SettingDayStartTime, SettingTransitionBuffer, SettingLogicTimezone, SettingRoutingBaseURL} {
		out = append(out, response_models.Setting{Key: key, Value: effective[key]})
	}
	return out, nil
}

func (s *SettingsService) UpdateSetting(ctx context.Context, key, value string) error {
	switch key {
	case SettingDayStartTime:
		if _, err := utils.ParseClock(value); err != nil {
			return utils.ErrInvalidInput
		}
	case SettingTransitionBuffer:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return utils.ErrInvalidInput
		}
	case SettingLogicTimezone:
		if _, err := time.LoadLocation(value); err != nil {
			return utils.ErrInvalidInput
		}
	case SettingRoutingBaseURL:
		if value == "" {
			return utils.ErrInvalidInput
		}
	default:
		return utils.ErrInvalidInput
	}

	if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
		s.logger.Error("updating setting", zap.String("key", key), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// ScheduleConfig assembles the effective scheduling config: stored settings
// with hard-coded defaults for anything unset or unparseable.
func (s *SettingsService) ScheduleConfig(ctx context.Context) (schedule.Config, error) {
	values, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("loading settings", zap.Error(err))
		return schedule.Config{}, utils.ErrDatabaseError
	}
	return configFromValues(values, s.logger), nil
}

func configFromValues(values map[string]string, logger *zap.Logger) schedule.Config {
	cfg := schedule.Config{
		DayStartTime:        schedule.DefaultDayStartTime,
		TransitionBufferMin: schedule.DefaultTransitionBufferMin,
		Timezone:            schedule.DefaultTimezone,
		RoutingBaseURL:      routing.DefaultBaseURL,
	}

	if v, ok := values[SettingDayStartTime]; ok && v != "" {
		if _, err := utils.ParseClock(v); err == nil {
			cfg.DayStartTime = v
		} else {
			logger.Warn("ignoring malformed day_start_time setting", zap.String("value", v))
		}
	}
	if v, ok := values[SettingTransitionBuffer]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TransitionBufferMin = n
		} else {
			logger.Warn("ignoring malformed transition buffer setting", zap.String("value", v))
		}
	}
	if v, ok := values[SettingLogicTimezone]; ok && v != "" {
		cfg.Timezone = v
	}
	if v, ok := values[SettingRoutingBaseURL]; ok && v != "" {
		cfg.RoutingBaseURL = v
	}

	return cfg
}
