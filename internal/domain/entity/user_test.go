package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_AssociatedUsers(t *testing.T) {
	child := uuid.New()
	parent := uuid.New()
	driver := uuid.New()
	admin := uuid.New()

	tests := []struct {
		name string
		user *User
		want []uuid.UUID
	}{
		{
			name: "nil user",
			user: nil,
			want: nil,
		},
		{
			name: "child only",
			user: &User{ID: child},
			want: []uuid.UUID{child},
		},
		{
			name: "all relations in order",
			user: &User{ID: child, ParentID: &parent, DriverID: &driver, AdminID: &admin},
			want: []uuid.UUID{child, parent, driver, admin},
		},
		{
			name: "duplicate links collapse",
			user: &User{ID: child, ParentID: &parent, DriverID: &parent, AdminID: &admin},
			want: []uuid.UUID{child, parent, admin},
		},
		{
			name: "nil uuid link skipped",
			user: &User{ID: child, ParentID: &uuid.Nil, AdminID: &admin},
			want: []uuid.UUID{child, admin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.AssociatedUsers())
		})
	}
}

func TestDevice_Monitorable(t *testing.T) {
	owner := uuid.New()
	guardian := uuid.New()

	assert.True(t, (&Device{UserID: &owner, ParentID: &guardian}).Monitorable())
	assert.False(t, (&Device{UserID: &owner}).Monitorable())
	assert.False(t, (&Device{ParentID: &guardian}).Monitorable())
	assert.False(t, (*Device)(nil).Monitorable())
}
