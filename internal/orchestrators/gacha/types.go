package gacha

import (
	"github.com/greenvalley/rpg-core/internal/catalog"
	"github.com/greenvalley/rpg-core/internal/entities"
)

// PullInput identifies a banner and the number of pulls
type PullInput struct {
	Player   *entities.Player
	BannerID string
	Amount   int
}

// PullOutput lists the granted items in pull order
type PullOutput struct {
	Player  *entities.Player
	Items   []*catalog.ItemDefinition
	Message string
}
