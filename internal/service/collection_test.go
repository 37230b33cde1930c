package service_test

import (
	"context"
	"testing"

	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/mocks"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type collectionFixture struct {
	collectionRepo *mocks.MockCollectionRepositoryIface
	grantRepo      *mocks.MockGrantRepositoryIface
	membershipRepo *mocks.MockMembershipRepositoryIface
	orgRepo        *mocks.MockOrganizationRepositoryIface
	svc            *service.CollectionService
}

func newCollectionFixture(ctrl *gomock.Controller) *collectionFixture {
	f := &collectionFixture{
		collectionRepo: mocks.NewMockCollectionRepositoryIface(ctrl),
		grantRepo:      mocks.NewMockGrantRepositoryIface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		orgRepo:        mocks.NewMockOrganizationRepositoryIface(ctrl),
	}
	f.svc = service.NewCollectionService(f.collectionRepo, f.grantRepo, f.membershipRepo, f.orgRepo)
	return f
}

func TestEffective(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()
	all := []*model.Collection{
		{ID: uuid.New(), OrganizationID: orgID, Name: "Engineering"},
		{ID: uuid.New(), OrganizationID: orgID, Name: "Finance"},
	}

	t.Run("access_all sees every collection regardless of stored grants", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{OrganizationID: orgID, UserID: userID, AccessAll: true}

		f.collectionRepo.EXPECT().
			FindByOrg(gomock.Any(), orgID).
			Return(all, nil)

		got, err := f.svc.Effective(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("without access_all only granted collections are visible", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{OrganizationID: orgID, UserID: userID}

		f.collectionRepo.EXPECT().
			FindGrantedByUserAndOrg(gomock.Any(), userID, orgID).
			Return(all[:1], nil)

		got, err := f.svc.Effective(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, all[:1], got)
	})
}

func TestReplaceGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("no-op for access_all memberships", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         uuid.New(),
			AccessAll:      true,
		}

		f.membershipRepo.EXPECT().
			FindByID(gomock.Any(), m.ID).
			Return(m, nil)

		err := f.svc.ReplaceGrants(context.Background(), service.ReplaceGrantsInput{
			OrgID:        orgID,
			MembershipID: m.ID,
			Grants:       []service.GrantInput{{CollectionID: uuid.New()}},
		})
		assert.NoError(t, err)
	})

	t.Run("collection outside the organization", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}
		foreign := uuid.New()

		gomock.InOrder(
			f.membershipRepo.EXPECT().
				FindByID(gomock.Any(), m.ID).
				Return(m, nil),
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), foreign, orgID).
				Return(nil, domain.ErrCollectionNotFound),
		)

		err := f.svc.ReplaceGrants(context.Background(), service.ReplaceGrantsInput{
			OrgID:        orgID,
			MembershipID: m.ID,
			Grants:       []service.GrantInput{{CollectionID: foreign}},
		})
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("swaps the grant set atomically", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}
		collectionID := uuid.New()

		gomock.InOrder(
			f.membershipRepo.EXPECT().
				FindByID(gomock.Any(), m.ID).
				Return(m, nil),
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(&model.Collection{ID: collectionID, OrganizationID: orgID}, nil),
			f.grantRepo.EXPECT().
				Replace(gomock.Any(), orgID, m.UserID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ uuid.UUID, grants []*model.CollectionGrant) error {
					require.Len(t, grants, 1)
					assert.Equal(t, collectionID, grants[0].CollectionID)
					assert.Equal(t, m.UserID, grants[0].UserID)
					assert.True(t, grants[0].ReadOnly)
					return nil
				}),
		)

		err := f.svc.ReplaceGrants(context.Background(), service.ReplaceGrantsInput{
			OrgID:        orgID,
			MembershipID: m.ID,
			Grants:       []service.GrantInput{{CollectionID: collectionID, ReadOnly: true}},
		})
		assert.NoError(t, err)
	})

	t.Run("membership from another organization", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{ID: uuid.New(), OrganizationID: uuid.New(), UserID: uuid.New()}

		f.membershipRepo.EXPECT().
			FindByID(gomock.Any(), m.ID).
			Return(m, nil)

		err := f.svc.ReplaceGrants(context.Background(), service.ReplaceGrantsInput{
			OrgID:        orgID,
			MembershipID: m.ID,
		})
		assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
	})
}

func TestListCollectionUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	collectionID := uuid.New()
	collection := &model.Collection{ID: collectionID, OrganizationID: orgID}

	t.Run("includes grantees and access_all members", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		grantee := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}
		allAccess := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New(), AccessAll: true}
		unrelated := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.grantRepo.EXPECT().
				FindByCollection(gomock.Any(), collectionID).
				Return([]*model.CollectionGrant{
					{ID: uuid.New(), CollectionID: collectionID, UserID: grantee.UserID, ReadOnly: true},
				}, nil),
			f.membershipRepo.EXPECT().
				FindByOrg(gomock.Any(), orgID).
				Return([]*model.Membership{grantee, allAccess, unrelated}, nil),
		)

		members, err := f.svc.ListCollectionUsers(context.Background(), orgID, collectionID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, grantee.ID, members[0].Membership.ID)
		assert.True(t, members[0].ReadOnly)
		assert.Equal(t, allAccess.ID, members[1].Membership.ID)
		assert.False(t, members[1].ReadOnly)
	})

	t.Run("collection in another organization", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		f.collectionRepo.EXPECT().
			FindByIDAndOrg(gomock.Any(), collectionID, orgID).
			Return(nil, domain.ErrCollectionNotFound)

		_, err := f.svc.ListCollectionUsers(context.Background(), orgID, collectionID)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})
}

func TestGetVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()
	collectionID := uuid.New()
	collection := &model.Collection{ID: collectionID, OrganizationID: orgID}

	t.Run("non-member sees not found", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByUserAndOrg(gomock.Any(), userID, orgID).
				Return(nil, domain.ErrMembershipNotFound),
		)

		_, err := f.svc.GetVisible(context.Background(), orgID, collectionID, userID)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})

	t.Run("access_all member sees it without grants", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByUserAndOrg(gomock.Any(), userID, orgID).
				Return(&model.Membership{OrganizationID: orgID, UserID: userID, AccessAll: true}, nil),
		)

		got, err := f.svc.GetVisible(context.Background(), orgID, collectionID, userID)
		require.NoError(t, err)
		assert.Equal(t, collection, got)
	})

	t.Run("grantee sees it", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByUserAndOrg(gomock.Any(), userID, orgID).
				Return(&model.Membership{OrganizationID: orgID, UserID: userID}, nil),
			f.grantRepo.EXPECT().
				FindByCollectionAndUser(gomock.Any(), collectionID, userID).
				Return(&model.CollectionGrant{CollectionID: collectionID, UserID: userID}, nil),
		)

		got, err := f.svc.GetVisible(context.Background(), orgID, collectionID, userID)
		require.NoError(t, err)
		assert.Equal(t, collection, got)
	})

	t.Run("member without grant sees not found", func(t *testing.T) {
		f := newCollectionFixture(ctrl)

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByUserAndOrg(gomock.Any(), userID, orgID).
				Return(&model.Membership{OrganizationID: orgID, UserID: userID}, nil),
			f.grantRepo.EXPECT().
				FindByCollectionAndUser(gomock.Any(), collectionID, userID).
				Return(nil, domain.ErrGrantNotFound),
		)

		_, err := f.svc.GetVisible(context.Background(), orgID, collectionID, userID)
		assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	})
}

func TestRemoveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	collectionID := uuid.New()
	collection := &model.Collection{ID: collectionID, OrganizationID: orgID}

	t.Run("deletes the grant", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}
		grant := &model.CollectionGrant{ID: uuid.New(), CollectionID: collectionID, UserID: m.UserID}

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByID(gomock.Any(), m.ID).
				Return(m, nil),
			f.grantRepo.EXPECT().
				FindByCollectionAndUser(gomock.Any(), collectionID, m.UserID).
				Return(grant, nil),
			f.grantRepo.EXPECT().
				Delete(gomock.Any(), grant.ID).
				Return(nil),
		)

		err := f.svc.RemoveUser(context.Background(), orgID, collectionID, m.ID)
		assert.NoError(t, err)
	})

	t.Run("missing grant", func(t *testing.T) {
		f := newCollectionFixture(ctrl)
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: uuid.New()}

		gomock.InOrder(
			f.collectionRepo.EXPECT().
				FindByIDAndOrg(gomock.Any(), collectionID, orgID).
				Return(collection, nil),
			f.membershipRepo.EXPECT().
				FindByID(gomock.Any(), m.ID).
				Return(m, nil),
			f.grantRepo.EXPECT().
				FindByCollectionAndUser(gomock.Any(), collectionID, m.UserID).
				Return(nil, domain.ErrGrantNotFound),
		)

		err := f.svc.RemoveUser(context.Background(), orgID, collectionID, m.ID)
		assert.ErrorIs(t, err, domain.ErrGrantNotFound)
	})
}

func TestDeleteCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCollectionFixture(ctrl)
	orgID := uuid.New()
	collection := &model.Collection{ID: uuid.New(), OrganizationID: orgID}

	gomock.InOrder(
		f.collectionRepo.EXPECT().
			FindByIDAndOrg(gomock.Any(), collection.ID, orgID).
			Return(collection, nil),
		f.collectionRepo.EXPECT().
			DeleteWithGrants(gomock.Any(), collection).
			Return(nil),
	)

	err := f.svc.Delete(context.Background(), orgID, collection.ID)
	assert.NoError(t, err)
}
