package service_test

import (
	"context"
	"testing"

	"github.com/cipherhaven/cipherhaven/internal/auth"
	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/mocks"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type organizationFixture struct {
	orgRepo        *mocks.MockOrganizationRepositoryIface
	membershipRepo *mocks.MockMembershipRepositoryIface
	userRepo       *mocks.MockUserRepositoryIface
	svc            *service.OrganizationService
}

func newOrganizationFixture(ctrl *gomock.Controller) *organizationFixture {
	f := &organizationFixture{
		orgRepo:        mocks.NewMockOrganizationRepositoryIface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		userRepo:       mocks.NewMockUserRepositoryIface(ctrl),
	}
	f.svc = service.NewOrganizationService(
		f.orgRepo,
		f.membershipRepo,
		f.userRepo,
		auth.NewPasswordHasher(),
		service.NewOrgLocker(),
	)
	return f
}

func TestCreateOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates org with confirmed owner and default collection", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		userID := uuid.New()

		f.orgRepo.EXPECT().
			CreateWithFounder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization, founder *model.Membership, collection *model.Collection) error {
				assert.Equal(t, "Acme", org.Name)
				assert.Equal(t, "billing@acme.test", org.BillingEmail)
				assert.Equal(t, userID, founder.UserID)
				assert.Equal(t, model.RoleOwner, founder.Role)
				assert.Equal(t, model.StatusConfirmed, founder.Status)
				assert.True(t, founder.AccessAll)
				assert.Equal(t, "2.founder-key", founder.EncryptedKey)
				assert.Equal(t, "Default Collection", collection.Name)
				return nil
			})

		org, err := f.svc.Create(context.Background(), service.CreateOrganizationInput{
			UserID:         userID,
			Name:           "Acme",
			BillingEmail:   "billing@acme.test",
			CollectionName: "Default Collection",
			Key:            "2.founder-key",
			PlanType:       "enterprise",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, org.ID)
	})

	t.Run("missing fields are rejected before any write", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)

		_, err := f.svc.Create(context.Background(), service.CreateOrganizationInput{
			UserID: uuid.New(),
			Name:   "Acme",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed billing email is rejected", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)

		_, err := f.svc.Create(context.Background(), service.CreateOrganizationInput{
			UserID:         uuid.New(),
			Name:           "Acme",
			BillingEmail:   "not-an-email",
			CollectionName: "Default",
			Key:            "2.key",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("updates name and billing email", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		orgID := uuid.New()
		existing := &model.Organization{ID: orgID, Name: "Old", BillingEmail: "old@acme.test"}

		gomock.InOrder(
			f.orgRepo.EXPECT().
				FindByID(gomock.Any(), orgID).
				Return(existing, nil),
			f.orgRepo.EXPECT().
				Update(gomock.Any(), existing).
				Return(nil),
		)

		org, err := f.svc.Update(context.Background(), service.UpdateOrganizationInput{
			OrgID:        orgID,
			Name:         "New",
			BillingEmail: "new@acme.test",
		})
		require.NoError(t, err)
		assert.Equal(t, "New", org.Name)
		assert.Equal(t, "new@acme.test", org.BillingEmail)
	})

	t.Run("unknown organization", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		orgID := uuid.New()

		f.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(nil, domain.ErrOrganizationNotFound)

		_, err := f.svc.Update(context.Background(), service.UpdateOrganizationInput{
			OrgID:        orgID,
			Name:         "New",
			BillingEmail: "new@acme.test",
		})
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}

func TestDeleteOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	t.Run("wrong password is rejected before the delete", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		userID := uuid.New()

		f.userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&model.User{ID: userID, PasswordHash: hash}, nil)

		err := f.svc.Delete(context.Background(), service.DeleteOrganizationInput{
			OrgID:    uuid.New(),
			UserID:   userID,
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("valid password cascades the delete", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		orgID := uuid.New()
		userID := uuid.New()

		gomock.InOrder(
			f.userRepo.EXPECT().
				FindByID(gomock.Any(), userID).
				Return(&model.User{ID: userID, PasswordHash: hash}, nil),
			f.orgRepo.EXPECT().
				FindByID(gomock.Any(), orgID).
				Return(&model.Organization{ID: orgID}, nil),
			f.orgRepo.EXPECT().
				Delete(gomock.Any(), orgID).
				Return(nil),
		)

		err := f.svc.Delete(context.Background(), service.DeleteOrganizationInput{
			OrgID:    orgID,
			UserID:   userID,
			Password: "correct horse battery staple",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown organization is reported before the delete", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)
		orgID := uuid.New()
		userID := uuid.New()

		gomock.InOrder(
			f.userRepo.EXPECT().
				FindByID(gomock.Any(), userID).
				Return(&model.User{ID: userID, PasswordHash: hash}, nil),
			f.orgRepo.EXPECT().
				FindByID(gomock.Any(), orgID).
				Return(nil, domain.ErrOrganizationNotFound),
		)

		err := f.svc.Delete(context.Background(), service.DeleteOrganizationInput{
			OrgID:    orgID,
			UserID:   userID,
			Password: "correct horse battery staple",
		})
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})

	t.Run("empty password is invalid input", func(t *testing.T) {
		f := newOrganizationFixture(ctrl)

		err := f.svc.Delete(context.Background(), service.DeleteOrganizationInput{
			OrgID:  uuid.New(),
			UserID: uuid.New(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newOrganizationFixture(ctrl)
	orgID := uuid.New()
	memberships := []*model.Membership{
		{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleOwner, Status: model.StatusConfirmed},
		{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleUser, Status: model.StatusInvited},
	}

	gomock.InOrder(
		f.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil),
		f.membershipRepo.EXPECT().
			FindByOrg(gomock.Any(), orgID).
			Return(memberships, nil),
	)

	got, err := f.svc.ListMembers(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, memberships, got)
}
