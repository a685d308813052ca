package service

import (
	"crypto/tls"
	"time"

	"helpdesk-admin-backend/internal/config"
	apperrors "helpdesk-admin-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// LDAPUser represents a subset of directory attributes returned by the
// personnel search
type LDAPUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mobile      string `json:"mobile"`
	SN          string `json:"sn"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
}

// LDAPService looks up people in the corporate directory, used when
// onboarding officials
type LDAPService struct {
	cfg *config.Config
}

// NewLDAPService creates a new LDAP service
func NewLDAPService(cfg *config.Config) *LDAPService {
	return &LDAPService{cfg: cfg}
}

// SearchUsersByName searches directory users by common name prefix
func (s *LDAPService) SearchUsersByName(name string) ([]LDAPUser, error) {
	if s.cfg.LDAPHost == "" {
		return nil, apperrors.ErrLDAPNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(name) + "*)"
	attrs := []string{"displayName", "mobile", "sn", "mail", "givenName"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]LDAPUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, LDAPUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			Mobile:      e.GetAttributeValue("mobile"),
			SN:          e.GetAttributeValue("sn"),
			Mail:        e.GetAttributeValue("mail"),
			GivenName:   e.GetAttributeValue("givenName"),
		})
	}

	return out, nil
}
