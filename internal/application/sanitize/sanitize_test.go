package sanitize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/sanitize"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

type hasherMock struct {
	mock.Mock
}

func (m *hasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *hasherMock) Verify(hash, plain string) bool {
	return m.Called(hash, plain).Bool(0)
}

func ptr[T any](v T) *T { return &v }

var (
	customer  = access.Caller{UserID: 7, Authenticated: true}
	staff     = access.Caller{UserID: 8, Authenticated: true, IsStaff: true}
	superuser = access.Caller{UserID: 9, Authenticated: true, IsSuperuser: true}
)

func privilegedPayload() dto.UserPayload {
	return dto.UserPayload{
		Email:       ptr("test@test.com"),
		Password:    ptr("12345"),
		IsStaff:     ptr(true),
		IsSuperuser: ptr(true),
		IsActive:    ptr(false),
	}
}

func TestProduct_CreateForcesCreatedBy(t *testing.T) {
	s := sanitize.New(nil)
	in := dto.ProductPayload{Name: ptr("item"), CreatedBy: ptr(int64(1000)), UpdatedBy: ptr(int64(1001))}

	out := s.ProductOnCreate(staff, in)

	require.NotNil(t, out.CreatedBy)
	assert.Equal(t, staff.UserID, *out.CreatedBy)
	assert.Nil(t, out.UpdatedBy)
	assert.Equal(t, int64(1000), *in.CreatedBy, "el payload de entrada no se modifica")
}

func TestProduct_UpdateForcesUpdatedBy(t *testing.T) {
	s := sanitize.New(nil)
	out := s.ProductOnUpdate(staff, dto.ProductPayload{CreatedBy: ptr(int64(1)), UpdatedBy: ptr(int64(2))})
	assert.Nil(t, out.CreatedBy)
	require.NotNil(t, out.UpdatedBy)
	assert.Equal(t, staff.UserID, *out.UpdatedBy)
}

func TestComplement_AuditFields(t *testing.T) {
	s := sanitize.New(nil)
	created := s.ComplementOnCreate(superuser, dto.ComplementPayload{CreatedBy: ptr(int64(1))})
	assert.Equal(t, superuser.UserID, *created.CreatedBy)
	assert.Nil(t, created.UpdatedBy)

	updated := s.ComplementOnUpdate(staff, dto.ComplementPayload{UpdatedBy: ptr(int64(1))})
	assert.Equal(t, staff.UserID, *updated.UpdatedBy)
	assert.Nil(t, updated.CreatedBy)
}

func TestOrder_CreateForcesUserAndStatus(t *testing.T) {
	s := sanitize.New(nil)
	for _, status := range []*string{nil, ptr("..."), ptr("Entregado"), ptr(entity.OrderStatusRequested)} {
		out := s.OrderOnCreate(customer, dto.OrderPayload{Status: status, User: ptr(int64(99))})
		assert.Equal(t, entity.OrderStatusRequested, *out.Status)
		assert.Equal(t, customer.UserID, *out.User)
	}
}

func TestUser_CreateByNonSuperuserForcesFlags(t *testing.T) {
	for _, caller := range []access.Caller{access.Anonymous(), customer, staff} {
		h := new(hasherMock)
		h.On("Hash", "12345").Return("hashed", nil).Once()
		s := sanitize.New(h)

		out, err := s.UserOnCreate(caller, privilegedPayload())
		require.NoError(t, err)

		assert.Equal(t, "hashed", *out.Password)
		assert.False(t, *out.IsStaff)
		assert.False(t, *out.IsSuperuser)
		assert.True(t, *out.IsActive)
		h.AssertExpectations(t)
	}
}

func TestUser_CreateBySuperuserKeepsFlags(t *testing.T) {
	h := new(hasherMock)
	h.On("Hash", "12345").Return("hashed", nil)
	s := sanitize.New(h)

	out, err := s.UserOnCreate(superuser, privilegedPayload())
	require.NoError(t, err)

	assert.Equal(t, "hashed", *out.Password)
	assert.True(t, *out.IsStaff)
	assert.True(t, *out.IsSuperuser)
	assert.False(t, *out.IsActive)
}

func TestUser_UpdateByNonSuperuserKeepsIsActive(t *testing.T) {
	h := new(hasherMock)
	h.On("Hash", "12345").Return("hashed", nil)
	s := sanitize.New(h)

	out, err := s.UserOnUpdate(customer, privilegedPayload())
	require.NoError(t, err)

	assert.Equal(t, "hashed", *out.Password)
	assert.False(t, *out.IsStaff)
	assert.False(t, *out.IsSuperuser)
	assert.False(t, *out.IsActive, "is_active no se impone al actualizar")
}

func TestUser_UpdateBySuperuserKeepsFlags(t *testing.T) {
	h := new(hasherMock)
	h.On("Hash", "12345").Return("hashed", nil)
	s := sanitize.New(h)

	out, err := s.UserOnUpdate(superuser, privilegedPayload())
	require.NoError(t, err)
	assert.True(t, *out.IsStaff)
	assert.True(t, *out.IsSuperuser)
}

func TestUser_UpdateWithoutPasswordDoesNotHash(t *testing.T) {
	h := new(hasherMock)
	s := sanitize.New(h)

	out, err := s.UserOnUpdate(superuser, dto.UserPayload{FirstName: ptr("Ana")})
	require.NoError(t, err)
	assert.Nil(t, out.Password)
	h.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUser_HashErrorPropagates(t *testing.T) {
	h := new(hasherMock)
	h.On("Hash", "12345").Return("", errors.New("boom"))
	s := sanitize.New(h)

	_, err := s.UserOnCreate(customer, privilegedPayload())
	assert.Error(t, err)
}
