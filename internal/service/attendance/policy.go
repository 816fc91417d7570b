package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/systemconfig"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

type configPolicyProvider struct {
	configs systemconfig.ConfigRepository
	clock   clock.Clock
}

// NewPolicyProvider reads the work hours from system configuration on every call.
func NewPolicyProvider(configs systemconfig.ConfigRepository, clk clock.Clock) attendance.PolicyProvider {
	return &configPolicyProvider{configs: configs, clock: clk}
}

// Get implements attendance.PolicyProvider.
func (p *configPolicyProvider) Get(ctx context.Context) (attendance.WorkdayPolicy, error) {
	values, err := p.configs.GetMany(ctx, systemconfig.KeyWorkStartTime, systemconfig.KeyWorkEndTime)
	if err != nil {
		return attendance.WorkdayPolicy{}, fmt.Errorf("failed to load work hours: %w", err)
	}

	start, err := timeOfDay(values, systemconfig.KeyWorkStartTime, attendance.DefaultWorkStart)
	if err != nil {
		return attendance.WorkdayPolicy{}, err
	}
	end, err := timeOfDay(values, systemconfig.KeyWorkEndTime, attendance.DefaultWorkEnd)
	if err != nil {
		return attendance.WorkdayPolicy{}, err
	}

	return attendance.WorkdayPolicy{
		Start:    start,
		End:      end,
		Location: p.clock.Location(),
	}, nil
}

func timeOfDay(values map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := values[key]
	if !ok || validator.IsEmpty(raw) {
		return fallback, nil
	}
	d, ok := validator.ParseTimeOfDay(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s=%q", attendance.ErrInvalidWorkPolicy, key, raw)
	}
	return d, nil
}
