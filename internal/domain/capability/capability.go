package capability

// Capabilities consumed by the route table. The host platform assigns them;
// this service only checks them against the caller's token claims.
const (
	ListEmployee   = "erp_list_employee"
	CreateEmployee = "erp_create_employee"
	EditEmployee   = "erp_edit_employee"
	DeleteEmployee = "erp_delete_employee"
	HRManager      = "erp_hr_manager"
)

// FromClaims extracts the capability list from the "caps" claim.
func FromClaims(claims map[string]any) []string {
	raw, ok := claims["caps"].([]any)
	if !ok {
		return nil
	}
	caps := make([]string, 0, len(raw))
	for _, c := range raw {
		if s, ok := c.(string); ok {
			caps = append(caps, s)
		}
	}
	return caps
}

// Has reports whether caps contains c.
func Has(caps []string, c string) bool {
	for _, have := range caps {
		if have == c {
			return true
		}
	}
	return false
}
