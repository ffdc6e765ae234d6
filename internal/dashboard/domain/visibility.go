package domain

// Visibility rules are pure and total: every role maps to a deterministic
// subset of a collection, and an empty input always yields an empty output.
// Cards, proxies, expenses and the workspace are uniformly visible and have
// no filter here.

// AccountVisible reports whether a single account is visible to user.
func AccountVisible(a Account, user User) bool {
	switch user.Role {
	case RoleAdmin, RoleLeader:
		return true
	case RoleFarmer:
		return a.FarmerID == user.ID
	default:
		return false
	}
}

// VisibleAccounts returns the subset of accounts the user may see. Admins and
// leaders see everything, farmers see only accounts they own, every other
// role sees nothing.
func VisibleAccounts(accounts []Account, user User) []Account {
	if user.Role == RoleAdmin || user.Role == RoleLeader {
		return accounts
	}
	out := []Account{}
	for _, a := range accounts {
		if AccountVisible(a, user) {
			out = append(out, a)
		}
	}
	return out
}

// CampaignVisible reports whether a single campaign is visible to user.
func CampaignVisible(c Campaign, user User) bool {
	switch user.Role {
	case RoleAdmin, RoleLeader:
		return true
	case RoleLauncher:
		return c.LauncherID == user.ID
	default:
		return false
	}
}

// VisibleCampaigns returns the subset of campaigns the user may see. Launchers
// see only campaigns they own.
func VisibleCampaigns(campaigns []Campaign, user User) []Campaign {
	if user.Role == RoleAdmin || user.Role == RoleLeader {
		return campaigns
	}
	out := []Campaign{}
	for _, c := range campaigns {
		if CampaignVisible(c, user) {
			out = append(out, c)
		}
	}
	return out
}
