package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
)

// familyIndices is the short-lived builder for the two queue roles. Nil
// means the role is still unresolved.
type familyIndices struct {
	graphics *int
	present  *int
}

func (f familyIndices) complete() bool {
	return f.graphics != nil && f.present != nil
}

// QueuePlan resolves which queue family submits graphics work and which one
// presents. The two scans are independent, so the indices may or may not
// coincide; SharingMode and UniqueFamilies derive everything downstream
// stages need from that fact.
type QueuePlan struct {
	GraphicsFamily int
	PresentFamily  int
}

// PlanQueues picks the lowest-index family with the graphics flag and the
// lowest-index family with present support. The selector guarantees both
// exist on the winning device; the error path is kept anyway so a plan is
// never built from an unchecked report.
func PlanQueues(report *DeviceCapabilityReport) (QueuePlan, error) {
	var indices familyIndices
	for familyIdx, family := range report.QueueFamilies {
		if indices.graphics == nil && family.Graphics {
			index := familyIdx
			indices.graphics = &index
		}
		if indices.present == nil && family.Present {
			index := familyIdx
			indices.present = &index
		}
		if indices.complete() {
			break
		}
	}

	if !indices.complete() {
		return QueuePlan{}, ErrIncompleteQueueFamilies
	}

	return QueuePlan{
		GraphicsFamily: *indices.graphics,
		PresentFamily:  *indices.present,
	}, nil
}

// UniqueFamilies returns the distinct family indices, for queue creation.
// Creating two queues on one family is never needed here.
func (p QueuePlan) UniqueFamilies() []int {
	families := []int{p.GraphicsFamily}
	if p.PresentFamily != p.GraphicsFamily {
		families = append(families, p.PresentFamily)
	}
	return families
}

// SharingMode returns exclusive ownership when one family fills both roles,
// and concurrent ownership across exactly the two families otherwise.
// Concurrent mode trades a little performance for not having to record
// ownership-transfer barriers.
func (p QueuePlan) SharingMode() (core1_0.SharingMode, []int) {
	if p.GraphicsFamily == p.PresentFamily {
		return core1_0.SharingModeExclusive, nil
	}
	return core1_0.SharingModeConcurrent, []int{p.GraphicsFamily, p.PresentFamily}
}
