package user

import (
	"time"

	"github.com/google/uuid"
)

// AccessProfile is the named permission profile assigned to a user.
type AccessProfile struct {
	Name   string
	System bool
}

// User is a back-office account profile.
type User struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	fullName      string
	email         string
	role          string
	accessProfile *AccessProfile
	createdAt     time.Time
	deletedAt     *time.Time
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	fullName string,
	email string,
	role string,
	accessProfile *AccessProfile,
	createdAt time.Time,
	deletedAt *time.Time,
) User {
	return User{
		id:            id,
		tenantID:      tenantID,
		fullName:      fullName,
		email:         email,
		role:          role,
		accessProfile: accessProfile,
		createdAt:     createdAt,
		deletedAt:     deletedAt,
	}
}

func (u User) ID() uuid.UUID                 { return u.id }
func (u User) TenantID() uuid.UUID           { return u.tenantID }
func (u User) FullName() string              { return u.fullName }
func (u User) Email() string                 { return u.email }
func (u User) Role() string                  { return u.role }
func (u User) AccessProfile() *AccessProfile { return u.accessProfile }
func (u User) CreatedAt() time.Time          { return u.createdAt }
func (u User) DeletedAt() *time.Time         { return u.deletedAt }
func (u User) Deleted() bool                 { return u.deletedAt != nil }
