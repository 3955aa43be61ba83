package models

// ProjectStatus tracks where a project is in its lifecycle
type ProjectStatus string

const (
	ProjectStatusUnconfirmed ProjectStatus = "unconfirmed"
	ProjectStatusToDo        ProjectStatus = "to_do"
	ProjectStatusInProgress  ProjectStatus = "in_progress"
	ProjectStatusCompleted   ProjectStatus = "completed"
)

// AllocationType discriminates what an allocation is for
type AllocationType string

const (
	AllocationTypeProject AllocationType = "project"
	AllocationTypeSLA     AllocationType = "sla"
	AllocationTypeMisc    AllocationType = "misc"
)

// MarkerType classifies calendar markers
type MarkerType string

const (
	MarkerTypeCustom     MarkerType = "custom"
	MarkerTypeProjectEnd MarkerType = "project_end"
	MarkerTypeMilestone  MarkerType = "milestone"
)

// UserRole defines what an account may do
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
	UserRoleGuest  UserRole = "guest"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusUnconfirmed, ProjectStatusToDo, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the AllocationType is valid
func (t AllocationType) IsValid() bool {
	switch t {
	case AllocationTypeProject, AllocationTypeSLA, AllocationTypeMisc:
		return true
	}
	return false
}

// IsValid checks if the MarkerType is valid
func (t MarkerType) IsValid() bool {
	switch t {
	case MarkerTypeCustom, MarkerTypeProjectEnd, MarkerTypeMilestone:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember, UserRoleGuest:
		return true
	}
	return false
}
