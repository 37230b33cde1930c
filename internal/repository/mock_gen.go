// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./collection.go -destination=../mocks/mock_collection_repository.go -package=mocks CollectionRepositoryIface
//go:generate mockgen -source=./grant.go -destination=../mocks/mock_grant_repository.go -package=mocks GrantRepositoryIface
