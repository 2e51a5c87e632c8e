package game

import (
	"context"

	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/orchestrators/combat"
	"github.com/greenvalley/rpg-core/internal/orchestrators/explore"
	"github.com/greenvalley/rpg-core/internal/orchestrators/gacha"
	"github.com/greenvalley/rpg-core/internal/orchestrators/inventory"
	"github.com/greenvalley/rpg-core/internal/orchestrators/quest"
)

func (s *service) Attack(ctx context.Context, input *ActionInput) (*combat.AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *combat.AttackOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.combat.Attack(ctx, &combat.AttackInput{Player: p})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Heal(ctx context.Context, input *ActionInput) (*combat.HealOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *combat.HealOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.combat.Heal(ctx, &combat.HealInput{Player: p})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Flee(ctx context.Context, input *ActionInput) (*combat.FleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *combat.FleeOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.combat.Flee(ctx, &combat.FleeInput{Player: p})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Explore(ctx context.Context, input *ExploreInput) (*explore.ExploreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *explore.ExploreOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.explore.Explore(ctx, &explore.ExploreInput{Player: p, Action: input.Action})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) ResolveEventChoice(ctx context.Context, input *ResolveEventChoiceInput) (*explore.ResolveEventChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *explore.ResolveEventChoiceOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.explore.ResolveEventChoice(ctx, &explore.ResolveEventChoiceInput{
			Player:   p,
			ChoiceID: input.ChoiceID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Gather(ctx context.Context, input *GatherInput) (*explore.GatherOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *explore.GatherOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.explore.Gather(ctx, &explore.GatherInput{Player: p, Type: input.Type})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) SetZone(ctx context.Context, input *SetZoneInput) (*explore.SetZoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *explore.SetZoneOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.explore.SetZone(ctx, &explore.SetZoneInput{Player: p, ZoneIndex: input.ZoneIndex})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) GachaPull(ctx context.Context, input *GachaPullInput) (*gacha.PullOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *gacha.PullOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.gacha.Pull(ctx, &gacha.PullInput{
			Player:   p,
			BannerID: input.BannerID,
			Amount:   input.Amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Equip(ctx context.Context, input *InventoryIndexInput) (*inventory.EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.EquipOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.Equip(ctx, &inventory.EquipInput{Player: p, InventoryIndex: input.Index})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Unequip(ctx context.Context, input *UnequipInput) (*inventory.UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.UnequipOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.Unequip(ctx, &inventory.UnequipInput{Player: p, Slot: input.Slot})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) UseItem(ctx context.Context, input *InventoryIndexInput) (*inventory.UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.UseItemOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.UseItem(ctx, &inventory.UseItemInput{Player: p, InventoryIndex: input.Index})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) StackInventory(ctx context.Context, input *ActionInput) (*inventory.StackInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.StackInventoryOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.StackInventory(ctx, &inventory.StackInventoryInput{Player: p})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) SplitItem(ctx context.Context, input *InventoryIndexInput) (*inventory.SplitItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.SplitItemOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.SplitItem(ctx, &inventory.SplitItemInput{Player: p, InventoryIndex: input.Index})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) RepairItem(ctx context.Context, input *RepairItemInput) (*inventory.RepairItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.RepairItemOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.RepairItem(ctx, &inventory.RepairItemInput{
			Player:         p,
			Location:       input.Location,
			Slot:           input.Slot,
			InventoryIndex: input.Index,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Buy(ctx context.Context, input *BuyInput) (*inventory.BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.BuyOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.Buy(ctx, &inventory.BuyInput{Player: p, ItemID: input.ItemID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) Sell(ctx context.Context, input *InventoryIndexInput) (*inventory.SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *inventory.SellOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.inventory.Sell(ctx, &inventory.SellInput{Player: p, InventoryIndex: input.Index})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (s *service) ClaimQuest(ctx context.Context, input *ClaimQuestInput) (*quest.ClaimOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var output *quest.ClaimOutput
	err := s.withPlayer(ctx, input.PlayerID, func(p *entities.Player) error {
		var err error
		output, err = s.quest.Claim(ctx, &quest.ClaimInput{Player: p, QuestIndex: input.QuestIndex})
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
