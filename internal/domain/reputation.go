package domain

// NextRole derives the role a user's like/dislike counters entitle them
// to. It must be re-evaluated, and any change persisted, inside the same
// transaction that mutated the counters.
//
// Rules, in precedence order:
//  1. Heavily disliked accounts are restricted: five or more dislikes
//     with a non-positive net score.
//  2. A VIP that no longer meets the bar (fewer than 8 likes, or 3+
//     dislikes) drops back to standard.
//
// There is no automatic promotion; VIP is granted by an admin, and a
// restricted account stays restricted until an admin intervenes.
func NextRole(role Role, likes, dislikes int32) Role {
	if role != RoleRestricted && dislikes >= 5 && likes-dislikes <= 0 {
		return RoleRestricted
	}
	if role == RoleVIP && (likes < 8 || dislikes >= 3) {
		return RoleStandard
	}
	return role
}
