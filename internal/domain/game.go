package domain

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusInTrade   ItemStatus = "IN_TRADE"
	ItemStatusSold      ItemStatus = "SOLD"
)

// BoardGame is a master catalog row shared by every copy in circulation.
type BoardGame struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	MinPlayers  int32  `json:"min_players"`
	MaxPlayers  int32  `json:"max_players"`
	AvgPlaytime int32  `json:"avg_playtime_minutes"`
	Difficulty  string `json:"difficulty"`
}

// CollectionItem is one user's physical copy of a game. Its status is
// the cross-entity invariant anchor for trades: IN_TRADE exactly while
// an uncompleted listing references it.
type CollectionItem struct {
	ID            int32      `json:"id"`
	OwnerID       int32      `json:"owner_id"`
	GameID        int32      `json:"game_id"`
	ConditionRank string     `json:"condition_rank"`
	Status        ItemStatus `json:"status"`
	Game          *BoardGame `json:"game,omitempty"` // Populated when listing a collection
}
