// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"slices"
)

// Permission is a resource:action identifier checked before an operation runs.
type Permission string

// Feature is a capability a subscription package can enable.
type Feature string

const (
	DashboardRead Permission = "dashboard:read"

	VenueRead   Permission = "venue:read"
	VenueCreate Permission = "venue:create"
	VenueUpdate Permission = "venue:update"
	VenueDelete Permission = "venue:delete"

	CustomerRead   Permission = "customer:read"
	CustomerCreate Permission = "customer:create"
	CustomerUpdate Permission = "customer:update"
	CustomerDelete Permission = "customer:delete"

	PaymentRead   Permission = "payment:read"
	PaymentCreate Permission = "payment:create"

	UserRead   Permission = "user:read"
	UserCreate Permission = "user:create"
	UserUpdate Permission = "user:update"
	UserDelete Permission = "user:delete"

	SettingsRead   Permission = "settings:read"
	SettingsUpdate Permission = "settings:update"

	BookingRead   Permission = "booking:read"
	BookingCreate Permission = "booking:create"
	BookingUpdate Permission = "booking:update"
	BookingCancel Permission = "booking:cancel"
	CalendarRead  Permission = "calendar:read"

	ProposalRead   Permission = "proposal:read"
	ProposalCreate Permission = "proposal:create"
	ProposalUpdate Permission = "proposal:update"
	ProposalSend   Permission = "proposal:send"

	FloorPlanRead Permission = "floorplan:read"
	FloorPlanEdit Permission = "floorplan:edit"

	EmailTemplateRead   Permission = "email:read"
	EmailTemplateUpdate Permission = "email:update"
	EmailSend           Permission = "email:send"

	InvoiceRead   Permission = "invoice:read"
	InvoiceCreate Permission = "invoice:create"
	PaymentRefund Permission = "payment:refund"

	AnalyticsRead     Permission = "analytics:read"
	AnalyticsInsights Permission = "analytics:insights"

	PortalRead      Permission = "portal:read"
	PortalConfigure Permission = "portal:configure"

	LocationRead   Permission = "location:read"
	LocationManage Permission = "location:manage"

	TenantRead   Permission = "tenant:read"
	TenantCreate Permission = "tenant:create"
	TenantUpdate Permission = "tenant:update"
	TenantDelete Permission = "tenant:delete"
	TenantAssume Permission = "tenant:assume"

	PackageRead   Permission = "package:read"
	PackageCreate Permission = "package:create"
	PackageUpdate Permission = "package:update"
	PackageDelete Permission = "package:delete"

	AuditRead Permission = "audit:read"
)

const (
	FeatureEventBooking      Feature = "eventBooking"
	FeatureProposalSystem    Feature = "proposalSystem"
	FeatureFloorPlanDesigner Feature = "floorPlanDesigner"
	FeatureEmailAutomation   Feature = "emailAutomation"
	FeaturePaymentProcessing Feature = "paymentProcessing"
	FeatureAIAnalytics       Feature = "aiAnalytics"
	FeatureCustomerPortal    Feature = "customerPortal"
	FeatureMultiVenue        Feature = "multiVenue"
)

// BaseAdminPermissions are held by every tenant admin whatever the package.
var BaseAdminPermissions = []Permission{
	DashboardRead,
	VenueRead, VenueCreate, VenueUpdate, VenueDelete,
	CustomerRead, CustomerCreate, CustomerUpdate, CustomerDelete,
	PaymentRead, PaymentCreate,
	UserRead, UserCreate, UserUpdate, UserDelete,
	SettingsRead, SettingsUpdate,
}

// SuperAdminPermissions is the platform operator set. It grants nothing inside
// a tenant, that only happens through tenant assumption.
var SuperAdminPermissions = []Permission{
	TenantRead, TenantCreate, TenantUpdate, TenantDelete, TenantAssume,
	PackageRead, PackageCreate, PackageUpdate, PackageDelete,
	AuditRead,
}

// FeaturePermissions maps each package feature to the permissions it unlocks.
// New features are added here and nowhere else.
var FeaturePermissions = map[Feature][]Permission{
	FeatureEventBooking:      {BookingRead, BookingCreate, BookingUpdate, BookingCancel, CalendarRead},
	FeatureProposalSystem:    {ProposalRead, ProposalCreate, ProposalUpdate, ProposalSend},
	FeatureFloorPlanDesigner: {FloorPlanRead, FloorPlanEdit},
	FeatureEmailAutomation:   {EmailTemplateRead, EmailTemplateUpdate, EmailSend},
	FeaturePaymentProcessing: {InvoiceRead, InvoiceCreate, PaymentRefund},
	FeatureAIAnalytics:       {AnalyticsRead, AnalyticsInsights},
	FeatureCustomerPortal:    {PortalRead, PortalConfigure},
	FeatureMultiVenue:        {LocationRead, LocationManage},
}

// ValidFeature reports whether f is present in the catalogue.
func ValidFeature(f string) bool {
	_, ok := FeaturePermissions[Feature(f)]
	return ok
}

// Known reports whether p is granted by any role or feature.
func Known(p Permission) bool {
	if slices.Contains(BaseAdminPermissions, p) || slices.Contains(SuperAdminPermissions, p) {
		return true
	}

	for _, perms := range FeaturePermissions {
		if slices.Contains(perms, p) {
			return true
		}
	}

	return false
}
