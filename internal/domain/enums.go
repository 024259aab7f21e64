package domain

// Category classifies activities and posts.
type Category string

const (
	CategoryRunning    Category = "Running"
	CategoryCycling    Category = "Cycling"
	CategoryYoga       Category = "Yoga"
	CategoryHiking     Category = "Hiking"
	CategoryFitness    Category = "Fitness"
	CategorySwimming   Category = "Swimming"
	CategoryBasketball Category = "Basketball"
	CategoryTennis     Category = "Tennis"
	CategorySoccer     Category = "Soccer"
	CategoryOther      Category = "Other"
)

// Categories lists every activity/post category in display order.
var Categories = []Category{
	CategoryRunning, CategoryCycling, CategoryYoga, CategoryHiking, CategoryFitness,
	CategorySwimming, CategoryBasketball, CategoryTennis, CategorySoccer, CategoryOther,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// CommunityCategory classifies communities. It shares the sport names with
// Category but ends with General instead of Other.
type CommunityCategory string

const (
	CommunityCategoryRunning    CommunityCategory = "Running"
	CommunityCategoryCycling    CommunityCategory = "Cycling"
	CommunityCategoryYoga       CommunityCategory = "Yoga"
	CommunityCategoryHiking     CommunityCategory = "Hiking"
	CommunityCategoryFitness    CommunityCategory = "Fitness"
	CommunityCategorySwimming   CommunityCategory = "Swimming"
	CommunityCategoryBasketball CommunityCategory = "Basketball"
	CommunityCategoryTennis     CommunityCategory = "Tennis"
	CommunityCategorySoccer     CommunityCategory = "Soccer"
	CommunityCategoryGeneral    CommunityCategory = "General"
)

// CommunityCategories lists every community category in display order.
var CommunityCategories = []CommunityCategory{
	CommunityCategoryRunning, CommunityCategoryCycling, CommunityCategoryYoga,
	CommunityCategoryHiking, CommunityCategoryFitness, CommunityCategorySwimming,
	CommunityCategoryBasketball, CommunityCategoryTennis, CommunityCategorySoccer,
	CommunityCategoryGeneral,
}

func (c CommunityCategory) String() string { return string(c) }

func (c CommunityCategory) IsValid() bool {
	for _, v := range CommunityCategories {
		if c == v {
			return true
		}
	}
	return false
}

// OtpPurpose is the reason a one-time code was issued.
type OtpPurpose string

const (
	OtpPurposeEmailVerification OtpPurpose = "email_verification"
	OtpPurposePasswordReset     OtpPurpose = "password_reset"
	OtpPurposeLogin             OtpPurpose = "login"
)

func (p OtpPurpose) String() string { return string(p) }

func (p OtpPurpose) IsValid() bool {
	switch p {
	case OtpPurposeEmailVerification, OtpPurposePasswordReset, OtpPurposeLogin:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeUser      EntityType = "USER"
	EntityTypeCommunity EntityType = "COMMUNITY"
	EntityTypePost      EntityType = "POST"
	EntityTypeActivity  EntityType = "ACTIVITY"
	EntityTypeRelation  EntityType = "RELATION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeCommunity, EntityTypePost, EntityTypeActivity, EntityTypeRelation:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate    AuditAction = "CREATE"
	AuditActionUpdate    AuditAction = "UPDATE"
	AuditActionDelete    AuditAction = "DELETE"
	AuditActionMigrate   AuditAction = "MIGRATE"
	AuditActionReconcile AuditAction = "RECONCILE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionMigrate, AuditActionReconcile:
		return true
	}
	return false
}
