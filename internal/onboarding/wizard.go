package onboarding

import (
	"context"

	"ContainerIQ/internal/model"
	"ContainerIQ/pkg/errors"
)

// State 向导状态机状态
type State string

const (
	StateStep       State = "step"       // 停在某个步骤上等待提交
	StateSubmitting State = "submitting" // 当前步骤提交中
	StateComplete   State = "complete"   // 已到达完成阈值
	StateFailed     State = "failed"     // 上一次提交失败，停留在原步骤
)

// SubmitFunc 步骤提交回调，负责落库和计数器推进
type SubmitFunc func(ctx context.Context, step string, payload interface{}) error

// Wizard 单个用户一次引导会话的状态机
// current 为 1 起的当前步骤，confirmed 为已确认步骤数
// 不变式：current <= min(confirmed+1, total)
// 失败不回退也不前进，已提交的 payload 全部保留，可无限重试
type Wizard struct {
	policy    Policy
	state     State
	current   int
	confirmed int
	payloads  map[string]interface{}
	lastErr   error
}

// New 创建停在第一步的向导
func New(role model.UserType) (*Wizard, error) {
	return Initialize(role, 0)
}

// Initialize 按已确认步骤数恢复向导，current 落在 min(confirmed+1, total)
// 相同输入恢复任意多次，位置和状态一致
func Initialize(role model.UserType, confirmed int) (*Wizard, error) {
	p, ok := PolicyFor(role)
	if !ok {
		return nil, errors.RoleUnsupported
	}

	if confirmed < 0 {
		confirmed = 0
	}
	if confirmed > p.StepCount() {
		confirmed = p.StepCount()
	}

	current := confirmed + 1
	if current > p.StepCount() {
		current = p.StepCount()
	}

	w := &Wizard{
		policy:    p,
		state:     StateStep,
		current:   current,
		confirmed: confirmed,
		payloads:  make(map[string]interface{}),
	}

	if confirmed >= p.Threshold {
		w.state = StateComplete
	}

	return w, nil
}

// Policy 返回向导使用的流程定义
func (w *Wizard) Policy() Policy {
	return w.policy
}

// State 返回当前状态
func (w *Wizard) State() State {
	return w.state
}

// LastError 返回上一次提交失败的原因，未失败时为 nil
func (w *Wizard) LastError() error {
	return w.lastErr
}

// Current 返回当前步骤序号（1 起）
func (w *Wizard) Current() int {
	return w.current
}

// Confirmed 返回已确认步骤数
func (w *Wizard) Confirmed() int {
	return w.confirmed
}

// CurrentStep 返回当前步骤名
func (w *Wizard) CurrentStep() string {
	return w.policy.StepAt(w.current - 1)
}

// Payload 返回某步骤最近一次提交的 payload，未提交过返回 nil
func (w *Wizard) Payload(step string) interface{} {
	return w.payloads[step]
}

// Complete 是否已到达完成阈值
func (w *Wizard) Complete() bool {
	return w.confirmed >= w.policy.Threshold
}

// Advance 按名字提交步骤
// 只接受当前步骤或已确认步骤；提交已确认步骤只更新 payload，不回退计数
// submit 失败时状态转为 failed，位置不动，payload 保留，可重试
// 成功确认当前步骤后前进，到达阈值转为 complete，current 不会越过 total
func (w *Wizard) Advance(ctx context.Context, stepName string, payload interface{}, submit SubmitFunc) error {
	if w.state == StateSubmitting {
		return errors.OnboardingStepInvalid
	}

	index := w.policy.IndexOf(stepName)
	if index == -1 {
		return errors.OnboardingStepInvalid
	}

	// 超前提交拒绝，步骤必须按序确认
	if index+1 > w.current {
		return errors.OnboardingStepInvalid
	}

	prev := w.state
	w.state = StateSubmitting

	if err := submit(ctx, stepName, payload); err != nil {
		w.state = StateFailed
		w.lastErr = err
		return err
	}

	w.payloads[stepName] = payload
	w.lastErr = nil

	// 重新提交已确认的步骤不推进计数
	if index+1 <= w.confirmed {
		w.state = prev
		if w.state == StateFailed {
			w.state = StateStep
		}
		return nil
	}

	w.confirmed = index + 1
	if w.current < w.policy.StepCount() {
		w.current++
	}

	if w.confirmed >= w.policy.Threshold {
		w.state = StateComplete
	} else {
		w.state = StateStep
	}

	return nil
}

// Retreat 回到上一步，下界是第一步，不触网也不动 confirmed
func (w *Wizard) Retreat() {
	if w.state == StateSubmitting {
		return
	}
	if w.current <= 1 {
		return
	}

	w.current--
	w.lastErr = nil
	if w.state == StateFailed {
		w.state = StateStep
	}
}
