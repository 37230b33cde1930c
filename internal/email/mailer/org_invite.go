// internal/email/mailer/org_invite.go
package mailer

import "github.com/cipherhaven/cipherhaven/internal/email"

// OrgInviteTemplateData contains data for the organization invite template
type OrgInviteTemplateData struct {
	Name             string
	OrganizationName string
}

// SendOrgInvite notifies a user that they have been invited to join an
// organization. The invitation carries no key material; the member only
// receives the organization key at confirmation.
func SendOrgInvite(s *email.Service, to, name, organizationName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "CipherHaven",
		Subject:      "You have been invited to join " + organizationName,
		TemplateName: "org_invite",
		TemplateData: OrgInviteTemplateData{
			Name:             name,
			OrganizationName: organizationName,
		},
	}

	return s.SendEmail(emailData)
}
