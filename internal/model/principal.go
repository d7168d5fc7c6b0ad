package model

// Principal is an identity returned by the identity provider. An anonymous
// principal may exist for bootstrap, but the dashboard treats it as "not
// logged in" for feature access.
type Principal struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// Named returns true if the principal is a signed-in, non-anonymous user.
func (p *Principal) Named() bool {
	return p != nil && p.UID != "" && !p.IsAnonymous
}
