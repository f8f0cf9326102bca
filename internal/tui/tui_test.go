package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mudaeroll/internal/domain"
)

func TestApplyValueClampsAtZero(t *testing.T) {
	plan := domain.RollPlan{RollCount: 5}

	plan, note := applyValue(plan, fieldRolls, -3)
	assert.Zero(t, plan.RollCount)
	assert.Equal(t, "Roll count set to 0", note)

	plan, note = applyValue(plan, fieldBoosts, 12)
	assert.Equal(t, 12, plan.BoostCount)
	assert.Equal(t, "Boost uses set to 12", note)
}

func TestApplyValueNoChangeNoNote(t *testing.T) {
	plan := domain.RollPlan{RollCount: 5}
	plan, note := applyValue(plan, fieldRolls, 5)
	assert.Equal(t, 5, plan.RollCount)
	assert.Empty(t, note)
}

func TestAdjustClampsAtZero(t *testing.T) {
	plan := domain.RollPlan{}
	plan, _ = adjust(plan, fieldBoosts, -1)
	assert.Zero(t, plan.BoostCount)

	plan, _ = adjust(plan, fieldBoosts, 1)
	plan, _ = adjust(plan, fieldBoosts, 1)
	assert.Equal(t, 2, plan.BoostCount)
}

func TestToggleSlash(t *testing.T) {
	plan := domain.RollPlan{}
	plan, note := toggleSlash(plan)
	assert.True(t, plan.UseSlashCommands)
	assert.Equal(t, "Rolling via slash commands.", note)

	plan, note = toggleSlash(plan)
	assert.False(t, plan.UseSlashCommands)
	assert.Equal(t, "Rolling via text commands.", note)
}

func TestPlanValue(t *testing.T) {
	plan := domain.RollPlan{RollCount: 3, BoostCount: 7}
	assert.Equal(t, 3, planValue(plan, fieldRolls))
	assert.Equal(t, 7, planValue(plan, fieldBoosts))
}
