package quest

import (
	"github.com/greenvalley/rpg-core/internal/entities"
)

// GenerateDailyInput contains the player whose quest set may need refreshing
type GenerateDailyInput struct {
	Player *entities.Player
}

// GenerateDailyOutput reports whether a new quest set was rolled
type GenerateDailyOutput struct {
	Player    *entities.Player
	Refreshed bool
}

// ClaimInput identifies a quest in the player's active set by index
type ClaimInput struct {
	Player     *entities.Player
	QuestIndex int
}

// ClaimOutput contains the updated player and a reward summary
type ClaimOutput struct {
	Player  *entities.Player
	Message string
}
