package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowSelfAccess(t *testing.T) {
	actor := Actor{ProfileID: "emp-1", Role: RoleEmployee}

	own := Resource{Kind: ResourceAttendance, OwnerID: "emp-1"}
	assert.True(t, Allow(actor, own, ActionRead))
	assert.True(t, Allow(actor, own, ActionWrite))
}

func TestAllowEmployeeCannotTouchOthers(t *testing.T) {
	actor := Actor{ProfileID: "emp-1", Role: RoleEmployee}

	other := Resource{Kind: ResourceAttendance, OwnerID: "emp-2"}
	assert.False(t, Allow(actor, other, ActionRead))
	assert.False(t, Allow(actor, other, ActionWrite))
}

func TestAllowManagerReadsAll(t *testing.T) {
	manager := Actor{ProfileID: "mgr-1", Role: RoleManager}

	other := Resource{Kind: ResourceProfile, OwnerID: "emp-2"}
	assert.True(t, Allow(manager, other, ActionRead))

	companyWide := Resource{Kind: ResourceAttendance}
	assert.True(t, Allow(manager, companyWide, ActionRead))
}

func TestAllowManagerWritesOnlyOwnRows(t *testing.T) {
	manager := Actor{ProfileID: "mgr-1", Role: RoleManager}

	assert.False(t, Allow(manager, Resource{Kind: ResourceAttendance, OwnerID: "emp-2"}, ActionWrite))
	assert.True(t, Allow(manager, Resource{Kind: ResourceAttendance, OwnerID: "mgr-1"}, ActionWrite))
}

func TestAllowEmptyActorNeverMatchesEmptyOwner(t *testing.T) {
	anonymous := Actor{}

	assert.False(t, Allow(anonymous, Resource{Kind: ResourceProfile}, ActionRead))
	assert.False(t, Allow(anonymous, Resource{Kind: ResourceProfile, OwnerID: "emp-1"}, ActionRead))
}
