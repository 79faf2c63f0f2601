package domain

// Role is the authorization level of an account.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleMaster Role = "master"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleMaster:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants administrative access.
// Master is a superset of admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleMaster
}

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusInactive:
		return true
	}
	return false
}

// CauseStatus is the lifecycle state of a cause.
type CauseStatus string

const (
	CauseStatusActive   CauseStatus = "active"
	CauseStatusInactive CauseStatus = "inactive"
	CauseStatusFinished CauseStatus = "finished"
)

func (s CauseStatus) String() string { return string(s) }

func (s CauseStatus) IsValid() bool {
	switch s {
	case CauseStatusActive, CauseStatusInactive, CauseStatusFinished:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeAccount EntityType = "account"
	EntityTypeCause   EntityType = "cause"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeAccount, EntityTypeCause:
		return true
	}
	return false
}

// AuditAction is the administrative change recorded in the audit trail.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionDelete     AuditAction = "delete"
	AuditActionDeactivate AuditAction = "deactivate"
	AuditActionRoleChange AuditAction = "role_change"
	AuditActionRecompute  AuditAction = "recompute"
)

func (a AuditAction) String() string { return string(a) }
